package controllers

import (
	"net/http"
	"strings"

	"gitea.com/go-chi/session"

	"github.com/blogem/logtrail/middleware"
	"github.com/blogem/logtrail/userctx"
)

// SessionController signs users in and out. The identity is taken as
// submitted; an identity provider in front of the service vouches for it.
type SessionController struct{}

// NewSessionController creates a new session controller
func NewSessionController() *SessionController {
	return &SessionController{}
}

// Login handles POST /login
func (c *SessionController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeBadRequest(w, "Failed to parse form: "+err.Error())
		return
	}

	user := userctx.User{
		ID:       strings.TrimSpace(r.FormValue("user_id")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Nickname: strings.TrimSpace(r.FormValue("nickname")),
	}
	if user.ID == "" {
		user.ID = user.Email
	}
	if user.ID == "" {
		writeBadRequest(w, "user_id or email is required")
		return
	}

	sess := session.GetSession(r)
	for key, value := range map[string]string{
		middleware.SessionUserID:       user.ID,
		middleware.SessionUserEmail:    user.Email,
		middleware.SessionUserNickname: user.Nickname,
	} {
		if err := sess.Set(key, value); err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"author": user.String()})
}

// Logout handles POST /logout
func (c *SessionController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	for _, key := range []string{middleware.SessionUserID, middleware.SessionUserEmail, middleware.SessionUserNickname} {
		if err := sess.Delete(key); err != nil {
			writeError(w, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
