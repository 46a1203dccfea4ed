package web

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// decodeStrict unmarshals a request body rejecting unknown fields. Used for
// partial updates so a typoed or out-of-shape field fails loudly instead of
// being merged blindly into the document.
func decodeStrict(c *gin.Context, v any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
