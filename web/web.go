// Package web embeds the client application: the add-document form and the
// paginated listing page. Filtering and pagination run in the browser; the
// backend only serves the full list.
package web

import (
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed static
var assets embed.FS

// Register mounts the embedded client at /. API routes must be registered
// first so they take precedence.
func Register(app *fiber.App) {
	app.Use("/", filesystem.New(filesystem.Config{
		Root:       http.FS(assets),
		PathPrefix: "static",
		Index:      "index.html",
	}))
}
