package controller

import (
	"net/http"

	"github.com/folio-panel/folio/database/model"
	"github.com/folio-panel/folio/logger"
	"github.com/folio-panel/folio/web/service"
	"github.com/folio-panel/folio/web/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController serves the dashboard and mounts the admin API. Every route
// below /admin/dashboard and /admin/api requires a logged-in administrator.
type AdminController struct {
	BaseController

	contentService *service.ContentService

	profileController      *ProfileController
	experienceController   *EntityController[model.Experience, *model.Experience]
	educationController    *EntityController[model.Education, *model.Education]
	projectController      *EntityController[model.Project, *model.Project]
	technologyController   *EntityController[model.Technology, *model.Technology]
	achievementsController *EntityController[model.Achievement, *model.Achievement]
}

func NewAdminController(g *gin.RouterGroup, db *gorm.DB, uploads *service.UploadService) *AdminController {
	a := &AdminController{
		contentService: service.NewContentService(db),
	}
	a.initRouter(g, db, uploads)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup, db *gorm.DB, uploads *service.UploadService) {
	g = g.Group("/admin")
	g.Use(a.checkLogin)

	g.GET("/dashboard", a.dashboard)

	api := g.Group("/api")
	a.profileController = NewProfileController(api.Group("/profile"), service.NewProfileService(db, uploads))
	a.experienceController = NewEntityController(api.Group("/experience"),
		service.NewEntityService[model.Experience, *model.Experience](db))
	a.educationController = NewEntityController(api.Group("/education"),
		service.NewEntityService[model.Education, *model.Education](db))
	a.projectController = NewEntityController(api.Group("/projects"),
		service.NewEntityService[model.Project, *model.Project](db))
	a.technologyController = NewEntityController(api.Group("/technologies"),
		service.NewEntityService[model.Technology, *model.Technology](db))
	a.achievementsController = NewEntityController(api.Group("/achievements"),
		service.NewEntityService[model.Achievement, *model.Achievement](db))
}

func (a *AdminController) dashboard(c *gin.Context) {
	home, err := a.contentService.GetHome()
	if err != nil {
		logger.Error("load dashboard content failed:", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	html(c, "dashboard.html", "pages.dashboard.title", gin.H{
		"home": home,
		"user": session.GetLoginUser(c),
	})
}
