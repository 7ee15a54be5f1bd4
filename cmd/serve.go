package main

import (
	"html/template"
	"io/fs"
	"net/http"

	"secretsanta/internal/handlers"
	"secretsanta/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the access code lookup pages",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 1. The lookup reads the full records file on every request.
	records := store.NewJSONStore(cfg.DBFile, cfg.PublicFile)

	// 2. Load HTML templates from the embedded filesystem.
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return err
	}

	// 3. Initialize the HTTP Handler
	httpHandler := handlers.NewHTTPHandler(records, templates)

	// 4. Set up the Gin router
	r := gin.Default()

	// 5. Serve static files from the embedded filesystem.
	assetsSubFS, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return err
	}
	r.StaticFS("/assets", http.FS(assetsSubFS))

	// 6. Register routes
	httpHandler.RegisterRoutes(r)

	// 7. Run the server
	addr := "0.0.0.0:" + cfg.Port
	logger.Infof("Server starting on http://%s", addr)
	return r.Run(addr)
}
