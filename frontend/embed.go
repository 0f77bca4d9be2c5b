package frontend

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

//go:embed templates static
var Content embed.FS

const StaticPrefix = "/static/"

// Handler serves the embedded panel assets under StaticPrefix.
func Handler() http.HandlerFunc {
	const staticPath = "static"
	assets, _ := fs.Sub(Content, staticPath)
	fileServer := http.StripPrefix(StaticPrefix, http.FileServer(http.FS(assets)))
	return func(w http.ResponseWriter, r *http.Request) {
		// Prevent from directory traversal attack
		path, err := filepath.Abs("/" + strings.TrimPrefix(r.URL.Path, StaticPrefix))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		f, err := Content.Open(filepath.Join(staticPath, path))
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		info, err := f.Stat()
		_ = f.Close()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if info.IsDir() {
			http.NotFound(w, r)
			return
		}

		fileServer.ServeHTTP(w, r)
	}
}
