package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/logtrail/logged"
	"github.com/blogem/logtrail/models"
	"github.com/blogem/logtrail/services"
)

// LogController serves the log trails of every registered host type
type LogController struct {
	services *services.Services
}

// NewLogController creates a new log controller
func NewLogController(services *services.Services) *LogController {
	return &LogController{
		services: services,
	}
}

// hostFromRequest resolves the {host} and {id} URL parameters. It writes the
// error response itself and reports false when they do not resolve.
func (c *LogController) hostFromRequest(w http.ResponseWriter, r *http.Request) (logged.HostType, int64, bool) {
	ht, err := c.services.Hosts.Lookup(chi.URLParam(r, "host"))
	if err != nil {
		writeError(w, err)
		return logged.HostType{}, 0, false
	}

	hostID, ok := urlParamInt64(r, "id")
	if !ok {
		writeBadRequest(w, "Invalid "+ht.Name+" ID")
		return logged.HostType{}, 0, false
	}

	return ht, hostID, true
}

// List handles GET /logs/{host}/{id}
func (c *LogController) List(w http.ResponseWriter, r *http.Request) {
	ht, hostID, ok := c.hostFromRequest(w, r)
	if !ok {
		return
	}

	entries, err := c.services.Logs.GetLogs(r.Context(), ht, hostID)
	if err != nil {
		writeError(w, err)
		return
	}

	if entries == nil {
		entries = []models.LogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Create handles POST /logs/{host}/{id}
func (c *LogController) Create(w http.ResponseWriter, r *http.Request) {
	ht, hostID, ok := c.hostFromRequest(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		writeBadRequest(w, "Failed to parse form: "+err.Error())
		return
	}

	category, err := formValueInt(r, "category")
	if err != nil {
		writeBadRequest(w, "Category must be a number")
		return
	}

	form := &models.LogEntryForm{
		Subject:  r.FormValue("subject"),
		Text:     r.FormValue("text"),
		Category: category,
	}

	if errors := form.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "validation failed", Details: errors})
		return
	}

	entry, err := c.services.Logs.AddManualEntry(r.Context(), ht, hostID, form)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// Show handles GET /log/{logID}
func (c *LogController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt64(r, "logID")
	if !ok {
		writeBadRequest(w, "Invalid log entry ID")
		return
	}

	entry, err := c.services.Logs.GetLog(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}
