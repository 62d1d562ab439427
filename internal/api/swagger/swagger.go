package swagger

import (
	_ "embed"
	"log/slog"
	"net/http"
)

//go:embed openapi.json
var openAPISpec []byte

// ServeSwagger регистрирует GET /swagger.json с OpenAPI описанием REST API
func ServeSwagger(mux *http.ServeMux) {
	mux.HandleFunc("GET /swagger.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(openAPISpec)
	})

	slog.Info("OpenAPI document available at /swagger.json")
}
