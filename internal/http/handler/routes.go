package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docmanager/internal/service"
	"docmanager/internal/storage"
)

// Deps are the collaborators the routes are wired to. DB is nil when the
// catalog comes from the built-in seed.
type Deps struct {
	DB        *sql.DB
	Workspace service.Workspace
	Objects   storage.Storage
	Uploads   Uploader
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	ws := d.Workspace

	docs := app.Group("/documents")
	docs.Get("/", ListDocuments(ws))
	docs.Get("/all", ListAllDocuments(ws))
	docs.Post("/", CreateDocument(ws))
	docs.Get("/:id", GetDocument(ws))
	docs.Patch("/:id", UpdateDocument(ws))
	docs.Delete("/:id", DeleteDocument(ws))
	docs.Get("/:id/permissions", GetPermissions(ws))
	docs.Get("/:id/download", DownloadDocument(ws, d.Objects))

	folders := app.Group("/folders")
	folders.Get("/", ListFolders(ws))
	folders.Post("/", CreateFolder(ws))
	folders.Patch("/:id", UpdateFolder(ws))
	folders.Delete("/:id", DeleteFolder(ws))

	view := app.Group("/view")
	view.Get("/", GetView(ws))
	view.Put("/search", SetSearch(ws))
	view.Put("/folder", SetFolder(ws))
	view.Put("/sort", SetSort(ws))
	view.Put("/mode", SetMode(ws))
	view.Put("/filters", ApplyFilters(ws))

	app.Get("/session/user", GetCurrentUser(ws))
	app.Put("/session/user", SetCurrentUser(ws))
	app.Get("/users", ListUsers(ws))
	app.Get("/roles", ListRoles())

	app.Get("/analytics", GetAnalytics(ws))

	if d.Uploads != nil {
		app.Post("/uploads", UploadFiles(d.Uploads))
		app.Get("/uploads", ListUploads(d.Uploads))
		app.Get("/uploads/:id", GetUpload(d.Uploads))
	}
	if d.Objects != nil {
		app.Get(storage.FilesPrefix+"*", ServeFile(d.Objects))
	}
}
