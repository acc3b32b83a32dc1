package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openobs/telescope-queue/internal/modules/serializer"
	"github.com/openobs/telescope-queue/internal/modules/service"
)

type TelescopeHandler struct {
	svc service.TelescopeService
}

func NewTelescopeHandler(s service.TelescopeService) *TelescopeHandler {
	return &TelescopeHandler{svc: s}
}

// GetStatus godoc
//
//	@Summary		Telescope status
//	@Description	Live state document published by the telescope status daemon
//	@Tags			telescope
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.TelescopeStatus}
//	@Failure		404	{object}	serializer.Response
//	@Router			/telescope/status [get]
func (h *TelescopeHandler) GetStatus(c *gin.Context) {
	st, err := h.svc.Status(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: st})
}
