package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rashii/rashii/internal/server/models"
)

func TestReminderSubject(t *testing.T) {
	r := &models.Reminder{Title: "Buy flowers"}
	assert.Equal(t, "⏰ Reminder: Buy flowers", ReminderSubject(r))
}

func TestReminderHTML_EmbedsTitleAndDatetime(t *testing.T) {
	when := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	r := &models.Reminder{Title: "Buy flowers", Datetime: when, Recurrence: models.RecurrenceNone}

	body := ReminderHTML(r)

	assert.Contains(t, body, "Buy flowers")
	assert.Contains(t, body, when.Local().Format("Jan 2, 2006 3:04 PM"))
	assert.NotContains(t, body, "Recurring")
}

func TestReminderHTML_RecurrenceLabel(t *testing.T) {
	r := &models.Reminder{Title: "water plants", Datetime: time.Now(), Recurrence: models.RecurrenceWeekly}

	body := ReminderHTML(r)

	assert.Contains(t, body, "Recurring: weekly")
}

func TestReminderHTML_EscapesUserText(t *testing.T) {
	r := &models.Reminder{Title: `<script>alert("x")</script>`, Datetime: time.Now(), Recurrence: models.RecurrenceNone}

	body := ReminderHTML(r)

	assert.False(t, strings.Contains(body, "<script>"), "title must be escaped")
	assert.Contains(t, body, "&lt;script&gt;")
}
