package api

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
)

// Paths served by DocsHandler.
const (
	DocsPath    = "/docs"
	OpenAPIPath = "/openapi.json"
)

//go:embed assets/*
var assets embed.FS

var pageTemplates = template.Must(template.ParseFS(assets, "assets/*.html"))

// DocsHandler serves the welcome page, the Swagger UI page and the OpenAPI document.
// Pages are rendered once at construction.
type DocsHandler struct {
	welcome     []byte
	docs        []byte
	openAPIDoc  []byte
	docsEnabled bool
	logger      *slog.Logger
}

type pageData struct {
	Title       string
	DocsEnabled bool
	DocsPath    string
	SpecPath    string
}

// NewDocsHandler renders the pages for the given API title. When docsEnabled
// is false the welcome page omits the documentation link.
func NewDocsHandler(title string, docsEnabled bool, logger *slog.Logger) (*DocsHandler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data := pageData{
		Title:       title,
		DocsEnabled: docsEnabled,
		DocsPath:    DocsPath,
		SpecPath:    OpenAPIPath,
	}

	welcome, err := render("welcome.html", data)
	if err != nil {
		return nil, err
	}
	docs, err := render("docs.html", data)
	if err != nil {
		return nil, err
	}
	doc, err := openAPIDocument(title)
	if err != nil {
		return nil, err
	}

	return &DocsHandler{
		welcome:     welcome,
		docs:        docs,
		openAPIDoc:  doc,
		docsEnabled: docsEnabled,
		logger:      logger.With(slog.String("component", "docs_handler")),
	}, nil
}

// Enabled reports whether the docs and OpenAPI routes should be mounted.
func (h *DocsHandler) Enabled() bool {
	return h.docsEnabled
}

// Welcome handles GET / requests.
func (h *DocsHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithHTML(w, r, http.StatusOK, h.welcome)
}

// Docs handles GET /docs requests.
func (h *DocsHandler) Docs(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithHTML(w, r, http.StatusOK, h.docs)
}

// OpenAPI handles GET /openapi.json requests.
func (h *DocsHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.openAPIDoc); err != nil {
		h.logger.Error("failed to write OpenAPI document", "error", err)
	}
}

func render(name string, data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// openAPIDocument returns the embedded OpenAPI document with info.title set to title.
func openAPIDocument(title string) ([]byte, error) {
	raw, err := assets.ReadFile("assets/openapi.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI document: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	if info, ok := doc["info"].(map[string]interface{}); ok {
		info["title"] = title
	}

	return json.Marshal(doc)
}
