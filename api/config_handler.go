package api

import (
	"net/http"

	"github.com/seenimoa/newsnugget/internal/config"
)

// ConfigResponse is the JSON envelope returned by GET /api/v1/config.
type ConfigResponse struct {
	Config     *config.Config    `json:"config"`
	ConfigFile string            `json:"config_file"` // empty when running on defaults
	Overrides  []config.Override `json:"overrides"`   // keys set through NEWSNUGGET_* variables
}

// handleGetConfig returns the running configuration and where it came from.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	overrides := config.EnvOverrides()
	if overrides == nil {
		overrides = []config.Override{}
	}
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: ConfigResponse{
			Config:     s.cfg,
			ConfigFile: s.cfg.File(),
			Overrides:  overrides,
		},
	})
}
