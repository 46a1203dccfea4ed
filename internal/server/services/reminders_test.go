package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashii/rashii/internal/common"
	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/reminders"
)

func TestReminderCreate_Defaults(t *testing.T) {
	repo := &fakeRemindersRepo{}
	s := NewReminderService(repo)

	r, err := s.Create(context.Background(), "shiv", "date night", time.Now().Add(time.Hour), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.RecurrenceNone, r.Recurrence)
	assert.True(t, r.EmailNotify)
	assert.False(t, r.Completed)
	assert.Nil(t, r.EmailSentAt)
}

func TestReminderCreate_RequiredFields(t *testing.T) {
	s := NewReminderService(&fakeRemindersRepo{})

	_, err := s.Create(context.Background(), "shiv", "", time.Now(), nil, nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Create(context.Background(), "shiv", "no time", time.Time{}, nil, nil)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestReminderCreate_RejectsInvalidRecurrence(t *testing.T) {
	s := NewReminderService(&fakeRemindersRepo{})

	bad := "fortnightly"
	_, err := s.Create(context.Background(), "shiv", "x", time.Now(), &bad, nil)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestReminderUpdate_RejectsInvalidRecurrence(t *testing.T) {
	s := NewReminderService(&fakeRemindersRepo{})

	bad := "hourly"
	err := s.Update(context.Background(), "r-1", reminders.Update{Recurrence: &bad})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestReminderUpdate_EmptyRejected(t *testing.T) {
	s := NewReminderService(&fakeRemindersRepo{})

	err := s.Update(context.Background(), "r-1", reminders.Update{})
	assert.ErrorIs(t, err, common.ErrorValidation)
}
