package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/logtrail/config"
	"github.com/blogem/logtrail/controllers"
	"github.com/blogem/logtrail/database"
	"github.com/blogem/logtrail/metrics"
	"github.com/blogem/logtrail/models"
)

type testClient struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
}

func newTestClient(t *testing.T) *testClient {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitializeDatabase(dbPath))
	t.Cleanup(func() { database.CloseDB() })

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics()
	require.NoError(t, m.Register(reg))

	srvs, err := setupServices(context.Background(), database.GetDB(), []string{"order"}, m)
	require.NoError(t, err)

	r, err := setupRouter(controllers.NewControllers(srvs), &config.Config{SessionLifetime: 3600}, reg)
	require.NoError(t, err)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testClient{t: t, server: server, client: &http.Client{Jar: jar}}
}

func (c *testClient) get(path string, out interface{}) int {
	resp, err := c.client.Get(c.server.URL + path)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (c *testClient) post(path string, form url.Values, out interface{}) int {
	resp, err := c.client.PostForm(c.server.URL+path, form)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (c *testClient) login() {
	status := c.post("/login", url.Values{"email": {"admin@example.com"}, "nickname": {"admin"}}, nil)
	require.Equal(c.t, http.StatusOK, status)
}

type memberResponse struct {
	ID   int               `json:"id"`
	Name string            `json:"name"`
	Logs []models.LogEntry `json:"logs"`
}

func TestHealth(t *testing.T) {
	c := newTestClient(t)

	var body struct {
		Status      string   `json:"status"`
		Hosts       []string `json:"hosts"`
		TeamMembers int      `json:"team_members"`
	}
	assert.Equal(t, http.StatusOK, c.get("/health", &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, []string{"order", "teammember"}, body.Hosts)
	assert.Zero(t, body.TeamMembers)
}

func TestMutationsRequireLogin(t *testing.T) {
	c := newTestClient(t)

	var errResp models.ErrorResponse
	status := c.post("/team", url.Values{"name": {"John Doe"}}, &errResp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "authentication required", errResp.Error)

	status = c.post("/logs/order/1", url.Values{"subject": {"Called"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestTeamMemberLogTrail(t *testing.T) {
	c := newTestClient(t)
	c.login()

	// Create
	var created memberResponse
	status := c.post("/team", url.Values{
		"name":         {"John Doe"},
		"slack_handle": {"@john"},
		"active":       {"off", "on"},
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotZero(t, created.ID)
	require.Len(t, created.Logs, 1)
	assert.Equal(t, "Create", created.Logs[0].Subject)
	assert.Equal(t, "admin <admin@example.com>", created.Logs[0].Author)

	// Update writes the changed fields only
	var updated memberResponse
	status = c.post(fmt.Sprintf("/team/%d", created.ID), url.Values{
		"name":         {"John Smith"},
		"slack_handle": {"@john"},
		"active":       {"off", "on"},
	}, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "John Smith", updated.Name)

	// The stored trail keeps append order
	var entries []models.LogEntry
	require.Equal(t, http.StatusOK, c.get(fmt.Sprintf("/logs/teammember/%d", created.ID), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Create", entries[0].Subject)
	assert.Equal(t, "Update", entries[1].Subject)
	assert.JSONEq(t, `{"name":{"old":"John Doe","new":"John Smith"}}`, entries[1].Text)

	// Show loads the member together with its trail
	var shown memberResponse
	require.Equal(t, http.StatusOK, c.get(fmt.Sprintf("/team/%d", created.ID), &shown))
	assert.Len(t, shown.Logs, 2)

	// Deactivate appends its own entry; a second deactivate is rejected
	var deactivated memberResponse
	require.Equal(t, http.StatusOK, c.post(fmt.Sprintf("/team/%d/deactivate", created.ID), nil, &deactivated))
	require.Len(t, deactivated.Logs, 3)
	assert.Equal(t, "Deactivate", deactivated.Logs[2].Subject)
	var errResp models.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, c.post(fmt.Sprintf("/team/%d/deactivate", created.ID), nil, &errResp))

	// Delete removes the trail as well
	require.Equal(t, http.StatusNoContent, c.post(fmt.Sprintf("/team/%d/delete", created.ID), nil, nil))
	require.Equal(t, http.StatusOK, c.get(fmt.Sprintf("/logs/teammember/%d", created.ID), &entries))
	assert.Empty(t, entries)

	assert.Equal(t, http.StatusNotFound, c.get(fmt.Sprintf("/log/%d", created.Logs[0].ID), &errResp))
}

func TestManualLogEntries(t *testing.T) {
	c := newTestClient(t)
	c.login()

	var entry models.LogEntry
	status := c.post("/logs/order/5", url.Values{
		"subject":  {"Called customer"},
		"text":     {"No answer"},
		"category": {"2"},
	}, &entry)
	require.Equal(t, http.StatusCreated, status)
	require.NotZero(t, entry.ID)
	require.NotNil(t, entry.Category)
	assert.Equal(t, 2, *entry.Category)

	var fetched models.LogEntry
	require.Equal(t, http.StatusOK, c.get(fmt.Sprintf("/log/%d", entry.ID), &fetched))
	assert.Equal(t, "Called customer", fetched.Subject)
	assert.Equal(t, "admin <admin@example.com>", fetched.Author)

	var errResp models.ErrorResponse
	status = c.post("/logs/order/5", url.Values{"text": {"no subject"}}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, errResp.Details, "Subject is required")

	status = c.post("/logs/order/5", url.Values{"subject": {"x"}, "category": {"two"}}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)

	resp, err := c.client.Get(c.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `logtrail_log_entries_total{host_type="order",status="success"} 1`)
}

func TestManualLogEntry_MissingTeamMember(t *testing.T) {
	c := newTestClient(t)
	c.login()

	var errResp models.ErrorResponse
	status := c.post("/logs/teammember/999", url.Values{"subject": {"ghost"}}, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, errResp.Error, "host not found")

	var entries []models.LogEntry
	require.Equal(t, http.StatusOK, c.get("/logs/teammember/999", &entries))
	assert.Empty(t, entries)
}

func TestUnknownHostType(t *testing.T) {
	c := newTestClient(t)
	c.login()

	var errResp models.ErrorResponse
	assert.Equal(t, http.StatusNotFound, c.get("/logs/invoice/1", &errResp))
	assert.Contains(t, errResp.Error, "unknown host type")

	assert.Equal(t, http.StatusNotFound, c.post("/logs/invoice/1", url.Values{"subject": {"x"}}, &errResp))
	assert.Equal(t, http.StatusBadRequest, c.get("/logs/order/abc", &errResp))
}

func TestSetupServices_InvalidHostName(t *testing.T) {
	_, err := setupServices(context.Background(), nil, []string{"bad-name"}, nil)
	assert.ErrorContains(t, err, "invalid host name")
}
