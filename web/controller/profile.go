package controller

import (
	"mime/multipart"
	"net/http"

	"github.com/folio-panel/folio/web/service"

	"github.com/gin-gonic/gin"
)

// ProfileController reads and writes the singleton profile, including the
// picture and resume uploads.
type ProfileController struct {
	profileService *service.ProfileService
}

func NewProfileController(g *gin.RouterGroup, s *service.ProfileService) *ProfileController {
	a := &ProfileController{profileService: s}
	a.initRouter(g)
	return a
}

func (a *ProfileController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.get)
	g.POST("", a.save)
}

// get returns the profile, or {} before one exists.
func (a *ProfileController) get(c *gin.Context) {
	profile, err := a.profileService.Get()
	if err != nil {
		jsonError(c, err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (a *ProfileController) save(c *gin.Context) {
	form, err := parseForm(c)
	if err != nil {
		jsonError(c, err)
		return
	}
	if err := a.profileService.Save(form, uploadedFiles(c)); err != nil {
		jsonError(c, err)
		return
	}
	jsonOk(c)
}

// uploadedFiles picks the first non-empty file of every upload slot.
func uploadedFiles(c *gin.Context) map[string]*multipart.FileHeader {
	files := make(map[string]*multipart.FileHeader)
	mf := c.Request.MultipartForm
	if mf == nil {
		return files
	}
	for _, slot := range []string{service.SlotProfilePicture, service.SlotResume} {
		if fhs := mf.File[slot]; len(fhs) > 0 && fhs[0].Filename != "" {
			files[slot] = fhs[0]
		}
	}
	return files
}
