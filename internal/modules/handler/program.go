package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/serializer"
	"github.com/openobs/telescope-queue/internal/modules/service"
)

type ProgramHandler struct {
	svc service.ProgramService
}

func NewProgramHandler(s service.ProgramService) *ProgramHandler {
	return &ProgramHandler{svc: s}
}

type CreateProgramReq struct {
	Name     string `json:"name" binding:"required" example:"NGC 7331 survey"`
	Executor string `json:"executor" binding:"required" example:"general"`
}

type SetProgramCompletedReq struct {
	Completed *bool `json:"completed" binding:"required" example:"true"`
}

type ShareProgramReq struct {
	Email string `json:"email" binding:"required,email" example:"observer@example.org"`
}

// GetPrograms godoc
//
//	@Summary		List visible programs
//	@Description	Programs the caller owns, public programs, and programs shared with the caller
//	@Tags			program
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Program}
//	@Router			/program [get]
func (h *ProgramHandler) GetPrograms(c *gin.Context) {
	items, err := h.svc.ListVisible(c.Request.Context(), currentUser(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// CreateProgram godoc
//
//	@Summary		Create program
//	@Description	Create an observing program owned by the caller
//	@Tags			program
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProgramReq	true	"CreateProgram payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Program}
//	@Router			/program [post]
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	req := CreateProgramReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Insert(c.Request.Context(), currentUser(c), req.Name, req.Executor)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

// DeleteProgram godoc
//
//	@Summary		Delete program
//	@Description	Delete an owned program and all of its sessions and observations
//	@Tags			program
//	@Produce		json
//	@Param			id	path	string	true	"Program ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/program/{id} [delete]
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid program id", err))
		return
	}

	if err := h.svc.Remove(c.Request.Context(), currentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}

// SetProgramCompleted godoc
//
//	@Summary		Set program completion
//	@Tags			program
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Program ID"	format(uuid)
//	@Param			payload	body	handler.SetProgramCompletedReq	true	"Completion flag"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/program/{id}/completed [put]
func (h *ProgramHandler) SetProgramCompleted(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid program id", err))
		return
	}
	req := SetProgramCompletedReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.SetCompleted(c.Request.Context(), currentUser(c), id, *req.Completed); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "updated"})
}

// ShareProgram godoc
//
//	@Summary		Share program
//	@Description	Grant read access to the user holding the given email
//	@Tags			program
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Program ID"	format(uuid)
//	@Param			payload	body	handler.ShareProgramReq	true	"Share payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=string}
//	@Router			/program/{id}/share [post]
func (h *ProgramHandler) ShareProgram(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid program id", err))
		return
	}
	req := ShareProgramReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	msg, err := h.svc.ShareWith(c.Request.Context(), currentUser(c), id, req.Email)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: msg})
}
