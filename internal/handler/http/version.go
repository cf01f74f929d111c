package http

import (
	"net/http"

	"github.com/MKhiriev/go-lock-keeper/internal/utils"
)

// getServerVersion answers with the bare version string so it can be used
// from shell scripts without a JSON parser.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
