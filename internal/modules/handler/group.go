package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/serializer"
	"github.com/openobs/telescope-queue/internal/modules/service"
)

type GroupHandler struct {
	svc service.GroupService
}

func NewGroupHandler(s service.GroupService) *GroupHandler {
	return &GroupHandler{svc: s}
}

type CreateGroupReq struct {
	Name                string  `json:"name" binding:"required" example:"students"`
	Priority            int     `json:"priority" binding:"required" example:"1"`
	DefaultPriority     int     `json:"default_priority" example:"1"`
	DefaultMaxQueueTime float64 `json:"default_max_queue_time" example:"14400"`
}

type CreateAffiliationReq struct {
	Name string `json:"name" binding:"required" example:"University Observatory"`
}

// GetGroups godoc
//
//	@Summary	List groups
//	@Tags		group
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Group}
//	@Router		/group [get]
func (h *GroupHandler) GetGroups(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// CreateGroup godoc
//
//	@Summary		Create group
//	@Description	Create a template of priority and quota defaults for new users
//	@Tags			group
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateGroupReq	true	"CreateGroup payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Group}
//	@Router			/group [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	req := CreateGroupReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	g, err := h.svc.Insert(c.Request.Context(), currentUser(c), service.InsertGroupInput{
		Name:                req.Name,
		Priority:            req.Priority,
		DefaultPriority:     req.DefaultPriority,
		DefaultMaxQueueTime: req.DefaultMaxQueueTime,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: g})
}

// DeleteGroup godoc
//
//	@Summary		Delete group
//	@Description	Remove a group template; existing users keep their copied values
//	@Tags			group
//	@Produce		json
//	@Param			id	path	string	true	"Group ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/group/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid group id", err))
		return
	}

	if err := h.svc.Remove(c.Request.Context(), currentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}

// GetAffiliations godoc
//
//	@Summary	List affiliations
//	@Tags		group
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Affiliation}
//	@Router		/affiliation [get]
func (h *GroupHandler) GetAffiliations(c *gin.Context) {
	items, err := h.svc.ListAffiliations(c.Request.Context(), currentUser(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// CreateAffiliation godoc
//
//	@Summary	Create affiliation
//	@Tags		group
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.CreateAffiliationReq	true	"CreateAffiliation payload"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.Response{data=model.Affiliation}
//	@Router		/affiliation [post]
func (h *GroupHandler) CreateAffiliation(c *gin.Context) {
	req := CreateAffiliationReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	a, err := h.svc.InsertAffiliation(c.Request.Context(), currentUser(c), req.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: a})
}
