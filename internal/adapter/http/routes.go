package http

import "github.com/gofiber/fiber/v2"

// Register mounts every route on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Health)
	app.Get("/health", h.Health)

	app.Get("/projects/", h.ListProjects)
	app.Post("/projects/", h.CreateProject)
	app.Get("/projects/:id", h.GetProject)
	app.Put("/projects/:id", h.UpdateProject)
	app.Delete("/projects/:id", h.DeleteProject)

	app.Post("/projects/:id/team", h.AddTeamMember)
	app.Put("/team/:id", h.UpdateTeamMember)
	app.Delete("/team/:id", h.DeleteTeamMember)

	app.Post("/projects/:id/attachments/", h.UploadAttachment)
	app.Delete("/attachments/:id", h.DeleteAttachment)

	app.Get("/employees/", h.ListEmployees)
	app.Post("/employees/", h.CreateEmployee)
	app.Post("/employees/upload-cv", h.UploadCV)
	app.Get("/employees/:id", h.GetEmployee)
	app.Put("/employees/:id", h.UpdateEmployee)
	app.Delete("/employees/:id", h.DeleteEmployee)
	app.Post("/employees/:id/generate-bio", h.GenerateBio)

	app.Get("/types/", h.ListTypes)
	app.Post("/types/", h.CreateType)
	app.Get("/tags/", h.ListTags)

	app.Post("/api/upload", h.ParseProjectUpload)
	app.Post("/api/upload-image", h.UploadImage)

	app.Get("/projects/:id/reference.pdf", h.ExportReferencePDF)
	app.Get("/employees/:id/cv.pdf", h.ExportCVPDF)
	app.Post("/projects/:id/preview", h.StartPreview)
	app.Get("/preview/:token", h.GetPreview)
	app.Delete("/preview/:token", h.DropPreview)

	app.Static("/static", h.staticDir)
}
