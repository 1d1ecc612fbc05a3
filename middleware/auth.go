package middleware

import (
	"encoding/json"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/logtrail/models"
	"github.com/blogem/logtrail/userctx"
)

// Session keys identifying the signed in user
const (
	SessionUserID       = "user_id"
	SessionUserEmail    = "user_email"
	SessionUserNickname = "user_nickname"
)

// RequireAuth ensures the user is authenticated and attaches the user to the
// request context. Unauthenticated requests get a 401 JSON response.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := SessionUser(session.GetSession(r))
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "authentication required"})
			return
		}

		next.ServeHTTP(w, r.WithContext(userctx.SetUser(r.Context(), user)))
	})
}

// SessionUser reads the signed in user from the session
func SessionUser(sess session.Store) (userctx.User, bool) {
	if sess == nil {
		return userctx.User{}, false
	}

	userID, _ := sess.Get(SessionUserID).(string)
	if userID == "" {
		return userctx.User{}, false
	}

	email, _ := sess.Get(SessionUserEmail).(string)
	nickname, _ := sess.Get(SessionUserNickname).(string)

	return userctx.User{ID: userID, Email: email, Nickname: nickname}, true
}
