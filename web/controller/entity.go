package controller

import (
	"net/http"

	"github.com/folio-panel/folio/database/model"
	"github.com/folio-panel/folio/web/service"

	"github.com/gin-gonic/gin"
)

// EntityController exposes one collection at its group path:
// GET lists, POST creates (no id) or updates (with id), DELETE ?id= removes.
type EntityController[T any, PT model.EntityPtr[T]] struct {
	service *service.EntityService[T, PT]
}

func NewEntityController[T any, PT model.EntityPtr[T]](g *gin.RouterGroup, s *service.EntityService[T, PT]) *EntityController[T, PT] {
	a := &EntityController[T, PT]{service: s}
	a.initRouter(g)
	return a
}

func (a *EntityController[T, PT]) initRouter(g *gin.RouterGroup) {
	g.GET("", a.list)
	g.POST("", a.save)
	g.DELETE("", a.delete)
}

func (a *EntityController[T, PT]) list(c *gin.Context) {
	items, err := a.service.List()
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *EntityController[T, PT]) save(c *gin.Context) {
	form, err := parseForm(c)
	if err != nil {
		jsonError(c, err)
		return
	}
	if err := a.service.Save(form["id"], form); err != nil {
		jsonError(c, err)
		return
	}
	jsonOk(c)
}

func (a *EntityController[T, PT]) delete(c *gin.Context) {
	if err := a.service.Delete(c.Query("id")); err != nil {
		jsonError(c, err)
		return
	}
	jsonOk(c)
}
