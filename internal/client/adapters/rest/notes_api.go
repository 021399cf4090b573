package rest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v3"

	"goodnotes/internal/client/app/dto"
	"goodnotes/internal/client/domain/entities"
	"goodnotes/internal/client/domain/errs"
	"goodnotes/internal/client/ports/api"
)

const (
	notesPath = "/notes"

	ErrMsgConvertNote = "convert note"
)

var _ api.NotesAPI = (*NotesClient)(nil)

// NotesClient реализует api.NotesAPI поверх REST бэкенда.
type NotesClient struct {
	c *Client
}

// NewNotesClient создает клиент заметок.
func NewNotesClient(c *Client) *NotesClient {
	return &NotesClient{c: c}
}

func notePath(id string) string {
	return notesPath + "/" + url.PathEscape(id)
}

// CreateNote создает заметку (POST /notes).
func (n *NotesClient) CreateNote(ctx context.Context, draft entities.NoteDraft) (entities.Note, error) {
	if err := draft.Validate(); err != nil {
		return entities.Note{}, errs.Validation(fiber.MethodPost+" "+notesPath, err)
	}
	var out dto.Note
	err := n.c.do(ctx, call{
		method: fiber.MethodPost,
		path:   notesPath,
		body:   dto.BuildCreateNoteRequest(draft),
		out:    &out,
	})
	if err != nil {
		return entities.Note{}, err
	}
	return toNote(fiber.MethodPost+" "+notesPath, out)
}

// GetNote возвращает заметку по id (GET /notes/{id}).
func (n *NotesClient) GetNote(ctx context.Context, id string) (entities.Note, error) {
	path := notePath(id)
	var out dto.Note
	if err := n.c.do(ctx, call{method: fiber.MethodGet, path: path, out: &out}); err != nil {
		return entities.Note{}, err
	}
	return toNote(fiber.MethodGet+" "+path, out)
}

// ListNotes возвращает заметки, новые первыми (GET /notes[?date=YYYY-MM-DD]).
func (n *NotesClient) ListNotes(ctx context.Context, date *time.Time) ([]entities.Note, error) {
	var query map[string]string
	if date != nil {
		query = map[string]string{"date": dto.FormatDate(*date)}
	}
	return n.list(ctx, notesPath, query)
}

// TodaysNotes возвращает заметки за сегодня (GET /notes/today).
func (n *NotesClient) TodaysNotes(ctx context.Context) ([]entities.Note, error) {
	return n.list(ctx, notesPath+"/today", nil)
}

// YesterdaysNotes возвращает заметки за вчера (GET /notes/yesterday).
func (n *NotesClient) YesterdaysNotes(ctx context.Context) ([]entities.Note, error) {
	return n.list(ctx, notesPath+"/yesterday", nil)
}

// UpdateNote отправляет только заданные поля патча (PUT /notes/{id}).
func (n *NotesClient) UpdateNote(ctx context.Context, id string, patch entities.NotePatch) (entities.Note, error) {
	path := notePath(id)
	if err := patch.Validate(); err != nil {
		return entities.Note{}, errs.Validation(fiber.MethodPut+" "+path, err)
	}
	var out dto.Note
	err := n.c.do(ctx, call{
		method: fiber.MethodPut,
		path:   path,
		body:   dto.BuildUpdateNoteRequest(patch),
		out:    &out,
	})
	if err != nil {
		return entities.Note{}, err
	}
	return toNote(fiber.MethodPut+" "+path, out)
}

// DeleteNote удаляет заметку вместе с ее задачами (DELETE /notes/{id}).
func (n *NotesClient) DeleteNote(ctx context.Context, id string) error {
	var out dto.MessageResponse
	return n.c.do(ctx, call{method: fiber.MethodDelete, path: notePath(id), out: &out})
}

func (n *NotesClient) list(ctx context.Context, path string, query map[string]string) ([]entities.Note, error) {
	var out []dto.Note
	if err := n.c.do(ctx, call{method: fiber.MethodGet, path: path, query: query, out: &out}); err != nil {
		return nil, err
	}
	notes, err := dto.ToDomainNotes(out)
	if err != nil {
		return nil, errs.Transport(fiber.MethodGet+" "+path, fmt.Errorf("%s: %w", ErrMsgConvertNote, err))
	}
	return notes, nil
}

func toNote(op string, in dto.Note) (entities.Note, error) {
	note, err := dto.ToDomainNote(in)
	if err != nil {
		return entities.Note{}, errs.Transport(op, fmt.Errorf("%s: %w", ErrMsgConvertNote, err))
	}
	return note, nil
}
