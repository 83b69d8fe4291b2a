package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.ShowCalendar)
	app.Get("/calendar", handler.ShowCalendar)
	app.Get("/calendar.ics", handler.ExportICS)
	app.Get("/calendar/jump", handler.JumpCalendar)
	app.Get("/calendar/day/:date", handler.CalendarDayPanel)
	app.Post("/calendar/day/:date", handler.NotesWriteAllowed, handler.SaveCalendarDay)

	app.Get("/unlock", handler.ShowUnlock)
	app.Post("/unlock", handler.Unlock)
	app.Post("/lock", handler.Lock)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/calendar", handler.GetCalendar)
	api.Get("/festivals", handler.GetFestivals)

	notes := api.Group("/notes")
	notes.Get("/:date", handler.GetNote)
	notes.Put("/:date", handler.NotesWriteAllowed, handler.PutNote)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
