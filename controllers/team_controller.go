package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/logtrail/models"
	"github.com/blogem/logtrail/services"
)

// TeamController handles team management requests
type TeamController struct {
	services *services.Services
}

// NewTeamController creates a new team controller
func NewTeamController(services *services.Services) *TeamController {
	return &TeamController{
		services: services,
	}
}

// teamMemberResponse is a team member together with its log trail
type teamMemberResponse struct {
	*models.TeamMember
	Trail []*models.LogEntry `json:"logs"`
}

func newTeamMemberResponse(member *models.TeamMember) teamMemberResponse {
	return teamMemberResponse{TeamMember: member, Trail: member.Logs().Entries()}
}

// parseTeamMemberForm reads the team member fields from a submitted form
func parseTeamMemberForm(r *http.Request) (*models.TeamMemberForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	// Get the last value for 'active' (checkbox will override hidden field if checked)
	activeValues := r.Form["active"]
	isActive := len(activeValues) > 0 && activeValues[len(activeValues)-1] == "on"

	return &models.TeamMemberForm{
		Name:        r.FormValue("name"),
		SlackHandle: r.FormValue("slack_handle"),
		Active:      isActive,
	}, nil
}

// Index handles GET /team
func (c *TeamController) Index(w http.ResponseWriter, r *http.Request) {
	var (
		members []models.TeamMember
		err     error
	)
	if r.URL.Query().Get("active") == "true" {
		members, err = c.services.Team.GetActiveMembers(r.Context())
	} else {
		members, err = c.services.Team.GetAllMembers(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if members == nil {
		members = []models.TeamMember{}
	}
	writeJSON(w, http.StatusOK, members)
}

// Create handles POST /team
func (c *TeamController) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseTeamMemberForm(r)
	if err != nil {
		writeBadRequest(w, "Failed to parse form: "+err.Error())
		return
	}

	if errors := form.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "validation failed", Details: errors})
		return
	}

	member, err := c.services.Team.CreateMember(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newTeamMemberResponse(member))
}

// Show handles GET /team/{id}
func (c *TeamController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid team member ID")
		return
	}

	member, err := c.services.Team.GetMemberByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newTeamMemberResponse(member))
}

// Update handles POST /team/{id}
func (c *TeamController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid team member ID")
		return
	}

	form, err := parseTeamMemberForm(r)
	if err != nil {
		writeBadRequest(w, "Failed to parse form: "+err.Error())
		return
	}

	if errors := form.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "validation failed", Details: errors})
		return
	}

	member, err := c.services.Team.UpdateMember(r.Context(), id, form)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newTeamMemberResponse(member))
}

// Delete handles POST /team/{id}/delete
func (c *TeamController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid team member ID")
		return
	}

	if err := c.services.Team.DeleteMember(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Activate handles POST /team/{id}/activate
func (c *TeamController) Activate(w http.ResponseWriter, r *http.Request) {
	c.setActive(w, r, c.services.Team.ActivateMember)
}

// Deactivate handles POST /team/{id}/deactivate
func (c *TeamController) Deactivate(w http.ResponseWriter, r *http.Request) {
	c.setActive(w, r, c.services.Team.DeactivateMember)
}

func (c *TeamController) setActive(w http.ResponseWriter, r *http.Request, change func(context.Context, int) error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid team member ID")
		return
	}

	if err := change(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	member, err := c.services.Team.GetMemberByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newTeamMemberResponse(member))
}
