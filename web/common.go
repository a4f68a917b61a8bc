package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"postboard/auth"
	"postboard/utils"
)

// render merges the logged-in user (if any) into the context so templates
// can show the right navigation.
func render(c *gin.Context, status int, name string, context gin.H) {
	user := auth.LoadSession(c).User()
	if user.ID != 0 {
		context["CurrentUser"] = &user
	}
	c.HTML(status, name, context)
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.tmpl", gin.H{})
}

func serverError(c *gin.Context, err error) {
	logrus.WithFields(logrus.Fields{
		"request_id": c.GetString(utils.RequestIDKey),
		"path":       c.Request.URL.Path,
	}).WithError(err).Error("store failure")
	render(c, http.StatusInternalServerError, "error.tmpl", gin.H{})
}

// failRequest maps a store error to 404 or 500. Only a missing record is a
// 404; everything else is fatal for the request.
func failRequest(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c)
		return
	}
	serverError(c, err)
}

func postPath(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10) + "/"
}
