package rest

import (
	"net/http"

	apiv1 "playground-service/pkg/api/v1"
)

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.logger.InfoContext(r.Context(), "received request for hello endpoint", "name", name)

	if name == "" {
		name = "Unnamed"
	}

	writeJSON(w, http.StatusOK, apiv1.Greeting{Message: "Hello, World from " + name + "!"})
}
