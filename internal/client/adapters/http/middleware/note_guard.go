package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goodnotes/internal/client/domain/entities"
	"goodnotes/pkg/logger"
)

// Константы для логирования и ответов.
const (
	LogNoteGuard = "note guard"

	ErrorNoteIDRequired = "Note ID is required"
	ErrorNoteNotFound   = "Note not found"

	// LocalsNote - ключ Locals, под которым guard сохраняет заметку.
	LocalsNote = "note"

	// ParamNoteID - имя параметра пути с id заметки.
	ParamNoteID = "id"
)

// NoteResolver загружает заметку по id. Реализуется stores.NotesStore.
type NoteResolver interface {
	Get(ctx context.Context, id string) (entities.Note, error)
}

// NewNoteGuard создает промежуточное ПО, которое загружает заметку до
// обработчика страницы. Без id или при ошибке загрузки отвечает 404.
func NewNoteGuard(resolver NoteResolver) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "note_guard"))

		id := ctx.Params(ParamNoteID)
		if id == "" {
			log.Debug(requestCtx, ErrorNoteIDRequired)
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": ErrorNoteIDRequired,
			})
		}

		note, err := resolver.Get(requestCtx, id)
		if err != nil {
			log.Warn(requestCtx, LogNoteGuard, zap.String("note_id", id), zap.Error(err))
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": ErrorNoteNotFound,
			})
		}

		ctx.Locals(LocalsNote, note)
		return ctx.Next()
	}
}

// NoteFromLocals возвращает заметку, загруженную guard.
func NoteFromLocals(ctx fiber.Ctx) (entities.Note, bool) {
	note, ok := ctx.Locals(LocalsNote).(entities.Note)
	return note, ok
}
