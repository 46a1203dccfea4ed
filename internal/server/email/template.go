package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/rashii/rashii/internal/server/models"
)

// ReminderSubject builds the subject line for a reminder email.
func ReminderSubject(reminder *models.Reminder) string {
	return fmt.Sprintf("⏰ Reminder: %s", reminder.Title)
}

// ReminderHTML builds the HTML body for a reminder email: the title, the
// reminder's local datetime, and the recurrence label when it is not
// "none". User-provided text is escaped before interpolation.
func ReminderHTML(reminder *models.Reminder) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">`)
	b.WriteString(`<div style="background: linear-gradient(135deg, #f472b6 0%, #c084fc 100%); padding: 30px; border-radius: 15px; text-align: center;">`)
	b.WriteString(`<h1 style="color: white; margin: 0; font-size: 28px;">⏰ Reminder from Rashii 💕</h1>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div style="background: #fdf2f8; padding: 30px; border-radius: 15px; margin-top: 20px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #ec4899; margin-top: 0;">%s</h2>`, html.EscapeString(reminder.Title))
	fmt.Fprintf(&b, `<p style="color: #52525b; font-size: 16px; line-height: 1.6;">This is your reminder set for <strong>%s</strong></p>`,
		reminder.Datetime.Local().Format("Jan 2, 2006 3:04 PM"))
	if reminder.Recurrence != models.RecurrenceNone {
		fmt.Fprintf(&b, `<p style="color: #a855f7; font-weight: 600;">🔄 Recurring: %s</p>`, html.EscapeString(reminder.Recurrence))
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div style="text-align: center; margin-top: 30px; padding: 20px; color: #a1a1aa;">`)
	b.WriteString(`<p style="margin: 0;">Made with 💕 by Rashii</p>`)
	b.WriteString(`<p style="margin: 5px 0 0 0; font-size: 14px;">For Shiv &amp; Vaishnavi</p>`)
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)

	return b.String()
}
