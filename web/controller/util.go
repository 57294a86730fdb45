package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/folio-panel/folio/config"
	"github.com/folio-panel/folio/database/model"
	"github.com/folio-panel/folio/logger"
	"github.com/folio-panel/folio/util/common"
	"github.com/folio-panel/folio/web/entity"
	"github.com/folio-panel/folio/web/locale"

	"github.com/gin-gonic/gin"
)

// multipartMemory is how much of a multipart body is held in memory before
// file parts spill to temporary files.
const multipartMemory = 8 << 20

// errBodyTooLarge is returned by parseForm when the body hit the size ceiling.
var errBodyTooLarge = errors.New("request body too large")

// parseForm reads a urlencoded or multipart body into a model.Form.
func parseForm(c *gin.Context) (model.Form, error) {
	req := c.Request
	var err error
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		err = req.ParseMultipartForm(multipartMemory)
	} else {
		err = req.ParseForm()
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, errBodyTooLarge
		}
		return nil, common.NewValidationError("form", err.Error())
	}
	return model.FormFromValues(req.PostForm), nil
}

// jsonOk writes {"success":true}.
func jsonOk(c *gin.Context) {
	c.JSON(http.StatusOK, entity.Ok())
}

// jsonError maps err onto the admin API status codes.
func jsonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, entity.Fail(err.Error()))
	case common.IsValidation(err):
		c.JSON(http.StatusBadRequest, entity.Fail(err.Error()))
	case errors.Is(err, errBodyTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, entity.Fail(err.Error()))
	default:
		logger.Warningf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, entity.Fail("internal server error"))
	}
}

// html renders an HTML template with the provided data and title.
func html(c *gin.Context, name string, title string, data gin.H) {
	htmlStatus(c, http.StatusOK, name, title, data)
}

func htmlStatus(c *gin.Context, status int, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = locale.I18n(c, title)
	data["T"] = func(key string, params ...string) string {
		return locale.I18n(c, key, params...)
	}
	data["request_uri"] = c.Request.RequestURI
	c.HTML(status, name, getContext(data))
}

// getContext adds version and other context data to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
		"name":    config.GetName(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}

// isAjax checks if the request is an AJAX request.
func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
