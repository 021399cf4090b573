// Package views содержит HTTP обработчики страниц просмотра заметок и задач.
package views

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goodnotes/internal/client/adapters/http/middleware"
	"goodnotes/internal/client/app/dto"
	"goodnotes/internal/client/domain/entities"
	"goodnotes/internal/client/domain/errs"
	"goodnotes/pkg/logger"
)

// Константы для логирования и ответов.
const (
	LogHandlerListNotes       = "views handler: list notes"
	LogHandlerGetNote         = "views handler: get note"
	LogHandlerListActionItems = "views handler: list action items"
	LogHandlerToggle          = "views handler: toggle action item"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// NotesStore - операции хранилища заметок, нужные обработчикам.
type NotesStore interface {
	Search(ctx context.Context, query string) ([]entities.Note, error)
	FetchByDate(ctx context.Context, date time.Time) ([]entities.Note, error)
	FetchToday(ctx context.Context) ([]entities.Note, error)
	FetchYesterday(ctx context.Context) ([]entities.Note, error)
	Get(ctx context.Context, id string) (entities.Note, error)
}

// ActionItemsStore - операции хранилища задач, нужные обработчикам.
type ActionItemsStore interface {
	Fetch(ctx context.Context, filter entities.ActionItemFilter) ([]entities.ActionItem, error)
	ToggleCompletion(ctx context.Context, id string) (entities.ActionItem, error)
}

// Handler отдает содержимое хранилищ в формате API.
type Handler struct {
	notes NotesStore
	items ActionItemsStore
}

// NewHandler создает обработчик страниц.
func NewHandler(notes NotesStore, items ActionItemsStore) *Handler {
	return &Handler{notes: notes, items: items}
}

// ListNotes обрабатывает GET /notes. Параметр date принимает YYYY-MM-DD,
// today или yesterday; q передается в поиск.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerListNotes)

	var (
		notes []entities.Note
		err   error
	)
	switch date := ctx.Query("date"); date {
	case "":
		notes, err = h.notes.Search(requestCtx, ctx.Query("q"))
	case "today":
		notes, err = h.notes.FetchToday(requestCtx)
	case "yesterday":
		notes, err = h.notes.FetchYesterday(requestCtx)
	default:
		day, parseErr := time.ParseInLocation(dto.DateLayout, date, time.Local)
		if parseErr != nil {
			return badRequest(ctx, "date must be YYYY-MM-DD, today or yesterday")
		}
		notes, err = h.notes.FetchByDate(requestCtx, day)
	}
	if err != nil {
		return fail(ctx, log, err)
	}

	out := make([]dto.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, dto.FromDomainNote(n))
	}
	return ctx.Status(fiber.StatusOK).JSON(out)
}

// GetNote обрабатывает GET /notes/:id. Заметку загружает guard.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerGetNote)

	note, ok := middleware.NoteFromLocals(ctx)
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": middleware.ErrorNoteNotFound,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(dto.FromDomainNote(note))
}

// ListActionItems обрабатывает GET /action-items?note_id=&incomplete_only=&limit=.
func (h *Handler) ListActionItems(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerListActionItems)

	filter := entities.ActionItemFilter{NoteID: ctx.Query("note_id")}
	if raw := ctx.Query("incomplete_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(ctx, "incomplete_only must be a boolean")
		}
		filter.IncompleteOnly = v
	}
	if raw := ctx.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return badRequest(ctx, "limit must be a non-negative integer")
		}
		filter.Limit = v
	}

	items, err := h.items.Fetch(requestCtx, filter)
	if err != nil {
		return fail(ctx, log, err)
	}

	out := make([]dto.ActionItem, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FromDomainActionItem(item))
	}
	return ctx.Status(fiber.StatusOK).JSON(out)
}

// ToggleActionItem обрабатывает POST /action-items/:id/toggle.
// Задача должна быть загружена в хранилище предыдущим запросом списка.
func (h *Handler) ToggleActionItem(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("action_item_id", ctx.Params("id")))
	log.Debug(requestCtx, LogHandlerToggle)

	item, err := h.items.ToggleCompletion(requestCtx, ctx.Params("id"))
	if err != nil {
		return fail(ctx, log, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(dto.FromDomainActionItem(item))
}

// Health обрабатывает GET /healthz.
func (h *Handler) Health(ctx fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func badRequest(ctx fiber.Ctx, msg string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": ErrorInvalidRequest + ": " + msg,
	})
}

func fail(ctx fiber.Ctx, log *logger.Logger, err error) error {
	log.Error(ctx.Context(), ErrorFailedToServeRequest, zap.Error(err))
	return ctx.Status(statusFor(err)).JSON(fiber.Map{
		"error": errs.Message(err, ErrorFailedToServeRequest),
	})
}

// statusFor переводит вид ошибки в HTTP статус ответа.
func statusFor(err error) int {
	switch {
	case errs.IsNotFound(err):
		return fiber.StatusNotFound
	case errs.KindOf(err) == errs.KindValidation:
		return fiber.StatusBadRequest
	case errs.KindOf(err) == errs.KindNotImplemented:
		return fiber.StatusNotImplemented
	case errs.KindOf(err) == errs.KindTransport:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
