package dashboard

import (
	"embed"
	"io/fs"
	"net/http"

	log "github.com/sirupsen/logrus"
)

//go:embed static
var staticFiles embed.FS

// Handler serves the embedded dashboard page and its assets.
func Handler() http.Handler {
	staticRoot, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// embed path is fixed at compile time, this cannot really happen
		log.Errorf("dashboard: sub static fs: %s", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(staticRoot))
}
