// Package api определяет интерфейсы доступа к бэкенду заметок и задач.
package api

import (
	"context"
	"time"

	"goodnotes/internal/client/domain/entities"
)

// NotesAPI определяет операции над заметками на стороне бэкенда.
type NotesAPI interface {
	CreateNote(ctx context.Context, draft entities.NoteDraft) (entities.Note, error)

	GetNote(ctx context.Context, id string) (entities.Note, error)

	// ListNotes возвращает все заметки или только за день date, если он задан.
	ListNotes(ctx context.Context, date *time.Time) ([]entities.Note, error)

	TodaysNotes(ctx context.Context) ([]entities.Note, error)

	YesterdaysNotes(ctx context.Context) ([]entities.Note, error)

	UpdateNote(ctx context.Context, id string, patch entities.NotePatch) (entities.Note, error)

	DeleteNote(ctx context.Context, id string) error
}
