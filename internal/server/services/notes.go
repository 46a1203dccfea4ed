package services

import (
	"context"
	"fmt"

	"github.com/rashii/rashii/internal/common"
	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/notes"
)

type NoteService struct {
	repo notes.Repository
}

func NewNoteService(repo notes.Repository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) List(ctx context.Context) ([]*models.Note, error) {
	return s.repo.List(ctx)
}

// NoteCreate carries the optional fields of a note creation; content is the
// only required field.
type NoteCreate struct {
	Title      *string
	Content    string
	Tags       []string
	Type       *string
	TargetDate *string
}

// Create stores a new note, defaulting title to "Untitled" and type to
// "note" when omitted.
func (s *NoteService) Create(ctx context.Context, createdBy string, req NoteCreate) (*models.Note, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrorValidation)
	}

	title := models.DefaultNoteTitle
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}

	typ := models.NoteTypeNote
	if req.Type != nil {
		typ = *req.Type
	}
	if !models.ValidNoteType(typ) {
		return nil, fmt.Errorf("%w: invalid type %q", common.ErrorValidation, typ)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	note := &models.Note{
		Title:      title,
		Content:    req.Content,
		Tags:       tags,
		Type:       typ,
		TargetDate: req.TargetDate,
		Completed:  false,
		CreatedBy:  createdBy,
	}

	return s.repo.Create(ctx, note)
}

// Update applies a partial update; updatedAt is refreshed by the repository
// on every call.
func (s *NoteService) Update(ctx context.Context, id string, upd notes.Update) error {
	if upd.Type != nil && !models.ValidNoteType(*upd.Type) {
		return fmt.Errorf("%w: invalid type %q", common.ErrorValidation, *upd.Type)
	}

	return s.repo.Update(ctx, id, upd)
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
