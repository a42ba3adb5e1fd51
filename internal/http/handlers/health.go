package handlers

import (
	"net/http"
)

type healthResponse struct {
	Status      string `json:"status"`
	KeySelected bool   `json:"key_selected"`
}

// Health reports liveness. It never calls the remote media service.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if a.Keys != nil {
		resp.KeySelected = a.Keys.HasKey(r.Context())
	}
	a.json(w, http.StatusOK, resp)
}
