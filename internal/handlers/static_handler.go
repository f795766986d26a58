package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const indexFile = "index.html"

// StaticHandler serves the single-page frontend.
// Paths without a matching file fall back to index.html so client-side routes load the app.
type StaticHandler struct {
	BaseHandler
	root string
}

// NewStaticHandler creates a new static handler serving files below root
func NewStaticHandler(root string, logger *zap.Logger) *StaticHandler {
	return &StaticHandler{
		BaseHandler: BaseHandler{Logger: logger},
		root:        root,
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Unknown API routes must not be answered with the app shell
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		h.RespondError(w, http.StatusNotFound, "Not found")
		return
	}

	// Clean against "/" so the path can never climb above root
	name := filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		h.serveFile(w, r, name)
		return
	}

	h.serveFile(w, r, filepath.Join(h.root, indexFile))
}

func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	f, err := os.Open(name)
	if err != nil {
		if !os.IsNotExist(err) {
			h.Logger.Error("failed to open static file", zap.Error(err), zap.String("file", name))
		}
		h.RespondError(w, http.StatusNotFound, "Not found")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		h.RespondError(w, http.StatusNotFound, "Not found")
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
