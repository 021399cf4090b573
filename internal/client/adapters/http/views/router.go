package views

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"goodnotes/internal/client/adapters/http/middleware"
)

// SetupRouter настраивает маршрутизацию хоста страниц.
func SetupRouter(app *fiber.App, notes NotesStore, items ActionItemsStore, gatherer prometheus.Gatherer) {
	handler := NewHandler(notes, items)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/healthz", handler.Health)
	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	notesRoutes := app.Group("/notes")
	notesRoutes.Get("/", handler.ListNotes)
	notesRoutes.Get("/:"+middleware.ParamNoteID, handler.GetNote, middleware.NewNoteGuard(notes))

	itemsRoutes := app.Group("/action-items")
	itemsRoutes.Get("/", handler.ListActionItems)
	itemsRoutes.Post("/:id/toggle", handler.ToggleActionItem)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(ctx fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
