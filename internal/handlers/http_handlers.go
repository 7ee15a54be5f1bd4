package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"secretsanta/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

// InvalidCodeMessage is shown on the index page when a code has no match.
const InvalidCodeMessage = "Código inválido, inténtalo nuevamente"

// RecordFinder looks up a full record by access code.
type RecordFinder interface {
	FindByCode(code string) (*models.AccessRecord, bool)
}

// HTTPHandler holds the dependencies for the HTTP handlers.
type HTTPHandler struct {
	records   RecordFinder
	templates *template.Template
}

// NewHTTPHandler creates a new HTTPHandler.
func NewHTTPHandler(records RecordFinder, templates *template.Template) *HTTPHandler {
	return &HTTPHandler{
		records:   records,
		templates: templates,
	}
}

// renderPage is a helper to perform a two-step template rendering.
// It first executes the content template into a buffer, then executes the main
// layout template, passing the rendered content as a variable.
func (h *HTTPHandler) renderPage(c *gin.Context, pageData gin.H, contentTmpl string) {
	buf := new(bytes.Buffer)
	err := h.templates.ExecuteTemplate(buf, contentTmpl, pageData)
	if err != nil {
		logger.Errorf("Error executing content template %s: %v", contentTmpl, err)
		c.String(http.StatusInternalServerError, "Template rendering error")
		return
	}

	pageData["PageContent"] = template.HTML(buf.String())

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	err = h.templates.ExecuteTemplate(c.Writer, "layout.html", pageData)
	if err != nil {
		logger.Errorf("Error executing layout template: %v", err)
	}
}

// RegisterRoutes registers all the application routes.
func (h *HTTPHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.ShowIndex)
	router.POST("/resultado", h.ShowResult)
	router.Any("/api/buscar", h.SearchAPI)
}

// ShowIndex handles the request for the code entry page.
func (h *HTTPHandler) ShowIndex(c *gin.Context) {
	h.renderPage(c, gin.H{"title": "Amigo Secreto"}, "index.html")
}

// ShowResult looks up the submitted code and shows the secret friend, or
// goes back to the index page with an error and the code prefilled.
func (h *HTTPHandler) ShowResult(c *gin.Context) {
	code := c.PostForm("codigo")

	rec, ok := h.records.FindByCode(code)
	if !ok {
		logger.Infof("Lookup miss for code %q", code)
		h.renderPage(c, gin.H{
			"title":  "Amigo Secreto",
			"Error":  InvalidCodeMessage,
			"Codigo": code,
		}, "index.html")
		return
	}

	h.renderPage(c, gin.H{
		"title":  "Tu amigo secreto",
		"Nombre": rec.ParticipantName,
		"Amigo":  rec.SecretFriendName,
	}, "resultado.html")
}

type searchRequest struct {
	Codigo string `json:"codigo" form:"codigo"`
}

// SearchAPI is the JSON variant of the lookup. Only POST is accepted.
func (h *HTTPHandler) SearchAPI(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var req searchRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Infof("Could not bind search request: %v", err)
	}
	if strings.TrimSpace(req.Codigo) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}

	rec, ok := h.records.FindByCode(req.Codigo)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}
