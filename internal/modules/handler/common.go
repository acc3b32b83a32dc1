package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"github.com/openobs/telescope-queue/internal/modules/serializer"
	"github.com/openobs/telescope-queue/internal/modules/service"
)

// currentUser pulls the authenticated user the middleware stored.
func currentUser(c *gin.Context) *model.User {
	u, ok := c.MustGet("user").(*model.User)
	if !ok {
		return nil
	}
	return u
}

// respondErr maps typed service failures onto HTTP statuses. Untyped errors
// are treated as storage failures.
func respondErr(c *gin.Context, err error) {
	switch service.KindOf(err) {
	case service.KindAuthorization:
		c.JSON(http.StatusForbidden, serializer.Err(http.StatusForbidden, err.Error(), nil))
	case service.KindValidation:
		c.JSON(http.StatusBadRequest, serializer.Err(http.StatusBadRequest, err.Error(), nil))
	case service.KindNotFound:
		c.JSON(http.StatusNotFound, serializer.Err(http.StatusNotFound, err.Error(), nil))
	case service.KindQuotaExceeded:
		c.JSON(http.StatusUnprocessableEntity, serializer.Err(http.StatusUnprocessableEntity, err.Error(), nil))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}
