package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/serializer"
	"github.com/openobs/telescope-queue/internal/modules/service"
)

type SessionHandler struct {
	svc service.SessionService
}

func NewSessionHandler(s service.SessionService) *SessionHandler {
	return &SessionHandler{svc: s}
}

type CreateSessionReq struct {
	ProgramID string `json:"program_id" binding:"required" format:"uuid"`
	Start     string `json:"start" binding:"required" example:"2026-03-01T20:00:00Z"`
	End       string `json:"end" binding:"required" example:"2026-03-02T02:00:00Z"`
}

// GetSessions godoc
//
//	@Summary		List sessions
//	@Description	All reserved time windows, ordered by start time
//	@Tags			session
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Session}
//	@Router			/session [get]
func (h *SessionHandler) GetSessions(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// CreateSession godoc
//
//	@Summary		Create session
//	@Description	Reserve a time window under a program
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateSessionReq	true	"CreateSession payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Session}
//	@Router			/session [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	req := CreateSessionReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	programID, err := uuid.Parse(req.ProgramID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid program_id", err))
		return
	}

	sess, err := h.svc.Insert(c.Request.Context(), currentUser(c), programID, req.Start, req.End)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: sess})
}

// DeleteSession godoc
//
//	@Summary		Delete session
//	@Description	Release an owned time window
//	@Tags			session
//	@Produce		json
//	@Param			id	path	string	true	"Session ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/session/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid session id", err))
		return
	}

	if err := h.svc.Remove(c.Request.Context(), currentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
