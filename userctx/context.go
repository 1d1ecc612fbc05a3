package userctx

import "context"

// Context key type
type contextKey string

const userKey contextKey = "user"

// Anonymous is the identity used when no user is attached to the context
const Anonymous = "anonymous"

// User is the acting user of a request
type User struct {
	ID       string
	Email    string
	Nickname string
}

// String returns the textual form stored as the author of log entries
func (u User) String() string {
	switch {
	case u.Nickname != "" && u.Email != "":
		return u.Nickname + " <" + u.Email + ">"
	case u.Nickname != "":
		return u.Nickname
	case u.Email != "":
		return u.Email
	case u.ID != "":
		return u.ID
	}
	return Anonymous
}

// OwnerID returns the ID of the user, used as owner of the log entries they create
func (u User) OwnerID() string {
	return u.ID
}

// SetUser adds the acting user to request context
func SetUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser retrieves the acting user from request context
func GetUser(ctx context.Context) User {
	user, ok := ctx.Value(userKey).(User)
	if !ok {
		return User{}
	}
	return user
}

// GetUserEmail retrieves user email from request context
func GetUserEmail(ctx context.Context) string {
	email := GetUser(ctx).Email
	if email == "" {
		return Anonymous
	}
	return email
}

// GetUserID retrieves user ID from request context
func GetUserID(ctx context.Context) string {
	return GetUser(ctx).ID
}
