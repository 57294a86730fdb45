// Package session keeps the logged-in administrator in the signed cookie session.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/folio-panel/folio/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	CookieName = "folio"

	loginUser  = "LOGIN_USER"
	contextKey = "login_user"
)

// LoginUser is the identity kept in the session. It never carries the
// password hash.
type LoginUser struct {
	Id       int
	Username string
}

func init() {
	gob.Register(LoginUser{})
}

// SetLoginUser stores user in the session for maxAge seconds.
func SetLoginUser(c *gin.Context, user *model.User, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.Set(loginUser, LoginUser{Id: user.Id, Username: user.Username})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *LoginUser {
	if v, ok := c.Get(contextKey); ok {
		if user, ok := v.(*LoginUser); ok {
			return user
		}
	}
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(LoginUser); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

// Bind places the session identity on the request context for handlers
// further down the chain.
func Bind(c *gin.Context, user *LoginUser) {
	c.Set(contextKey, user)
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.Save()
}
