package controller

import (
	"errors"
	"net/http"

	"github.com/folio-panel/folio/logger"
	"github.com/folio-panel/folio/util/common"
	"github.com/folio-panel/folio/web/service"
	"github.com/folio-panel/folio/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController serves the public portfolio page and the login flow.
type IndexController struct {
	BaseController

	contentService *service.ContentService
	userService    *service.UserService
	limiter        *service.LoginLimiter
	sessionMaxAge  int // minutes
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(
	g *gin.RouterGroup,
	contentService *service.ContentService,
	userService *service.UserService,
	limiter *service.LoginLimiter,
	sessionMaxAge int,
) *IndexController {
	a := &IndexController{
		contentService: contentService,
		userService:    userService,
		limiter:        limiter,
		sessionMaxAge:  sessionMaxAge,
	}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)

	g.GET(loginPath, a.loginPage)
	g.POST(loginPath, a.login)
	g.GET("/admin/logout", a.logout)
}

// index renders the public portfolio from the current store contents.
func (a *IndexController) index(c *gin.Context) {
	home, err := a.contentService.GetHome()
	if err != nil {
		logger.Error("load home content failed:", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	html(c, "index.html", "pages.index.title", gin.H{"home": home})
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, dashboardPath)
		return
	}
	html(c, "login.html", "pages.login.title", nil)
}

// login checks the submitted credentials and opens a session on success.
// Repeated failures from one address are throttled.
func (a *IndexController) login(c *gin.Context) {
	ip := c.ClientIP()
	if a.limiter.Blocked(ip) {
		logger.Warningf("login from %s throttled", ip)
		a.loginFailed(c, http.StatusTooManyRequests, "pages.login.tooManyAttempts", "")
		return
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		a.loginFailed(c, http.StatusBadRequest, "pages.login.invalidCredentials", "")
		return
	}

	user, err := a.userService.CheckUser(form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, common.ErrInvalidCredentials) {
			logger.Error("check user failed:", err)
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}
		a.limiter.Fail(ip)
		logger.Warningf("wrong username: %q, IP: %q", form.Username, ip)
		a.loginFailed(c, http.StatusUnauthorized, "pages.login.invalidCredentials", form.Username)
		return
	}

	a.limiter.Reset(ip)
	if err := session.SetLoginUser(c, user, a.sessionMaxAge*60); err != nil {
		logger.Warning("Unable to save session:", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	logger.Infof("%s logged in successfully, Ip Address: %s", user.Username, ip)
	c.Redirect(http.StatusFound, dashboardPath)
}

func (a *IndexController) loginFailed(c *gin.Context, status int, msgKey string, username string) {
	htmlStatus(c, status, "login.html", "pages.login.title", gin.H{
		"error":    msgKey,
		"username": username,
	})
}

// logout clears the session and returns to the public page.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to save session after clearing:", err)
	}
	c.Redirect(http.StatusFound, "/")
}
