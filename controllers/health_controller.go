package controllers

import (
	"net/http"

	"github.com/blogem/logtrail/services"
)

// HealthController reports service liveness
type HealthController struct {
	services *services.Services
}

// NewHealthController creates a new health controller
func NewHealthController(services *services.Services) *HealthController {
	return &HealthController{
		services: services,
	}
}

type healthResponse struct {
	Status      string   `json:"status"`
	Service     string   `json:"service"`
	Hosts       []string `json:"hosts"`
	TeamMembers int      `json:"team_members"`
}

// Index handles GET /health. The team member count doubles as a database check.
func (c *HealthController) Index(w http.ResponseWriter, r *http.Request) {
	count, err := c.services.Team.GetMemberCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := healthResponse{
		Status:      "healthy",
		Service:     "logtrail",
		Hosts:       []string{},
		TeamMembers: count,
	}
	for _, ht := range c.services.Hosts.HostTypes() {
		resp.Hosts = append(resp.Hosts, ht.Name)
	}

	writeJSON(w, http.StatusOK, resp)
}
