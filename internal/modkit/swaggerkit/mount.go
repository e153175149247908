// Package swaggerkit serves the embedded OpenAPI document and the Swagger UI
package swaggerkit

import (
	"net/http"

	"coursedex/internal/platform/config"
	phttp "coursedex/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const docsPath = "/api/docs"

// Mount serves the UI under /api/docs/ and the document at /api/docs/doc.json;
// nothing is mounted unless enabled
func Mount(r phttp.Router, cfg config.Conf, enabled bool) {
	if !enabled {
		return
	}
	ui := httpSwagger.Handler(
		httpSwagger.URL(docsPath+"/doc.json"),
		httpSwagger.InstanceName("coursedex"),
	)
	r.Route(docsPath, func(d phttp.Router) {
		d.Get("/", func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Path == docsPath {
				http.Redirect(w, req, docsPath+"/", http.StatusPermanentRedirect)
				return
			}
			ui.ServeHTTP(w, req)
		})
		d.Get("/doc.json", serveDocJSON(cfg))
		d.Handle("/*", ui)
	})
}
