// Package controller provides the HTTP handlers of the folio site: the public
// portfolio page, administrator login and the authenticated admin API.
package controller

import (
	"net/http"
	"strings"

	"github.com/folio-panel/folio/web/entity"
	"github.com/folio-panel/folio/web/locale"
	"github.com/folio-panel/folio/web/session"

	"github.com/gin-gonic/gin"
)

const (
	loginPath     = "/admin/login"
	dashboardPath = "/admin/dashboard"
	apiPrefix     = "/admin/api/"
)

// BaseController provides common functionality for all controllers, including authentication checks.
type BaseController struct{}

// checkLogin rejects requests without a logged-in administrator. API and XHR
// callers get a 401 JSON body, browsers are sent to the login page.
func (a *BaseController) checkLogin(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user == nil {
		if isAjax(c) || strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Fail(locale.I18n(c, "pages.login.loginRequired")))
			return
		}
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}
	session.Bind(c, user)
	c.Next()
}
