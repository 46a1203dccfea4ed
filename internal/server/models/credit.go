package models

import "time"

// Credit statuses.
const (
	CreditStatusPending  = "pending"
	CreditStatusRedeemed = "redeemed"
)

// Credit is an IOU-style favor owed by one user to the other. OwedTo is
// derived at creation as the counterparty of OwedBy; the two are always
// distinct.
type Credit struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OwedBy      string     `json:"owedBy"`
	OwedTo      string     `json:"owedTo"`
	Status      string     `json:"status"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	RedeemedAt  *time.Time `json:"redeemedAt"`
}

// ValidCreditStatus reports whether s is one of the allowed statuses.
func ValidCreditStatus(s string) bool {
	return s == CreditStatusPending || s == CreditStatusRedeemed
}
