package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/serializer"
	"github.com/openobs/telescope-queue/internal/modules/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

type CreateUserReq struct {
	Email   string                 `json:"email" binding:"required,email" example:"observer@example.org"`
	Group   string                 `json:"group" example:"students"`
	Profile map[string]interface{} `json:"profile"`
}

type SetRoleReq struct {
	Role string `json:"role" binding:"required" example:"admin"`
}

// GetUsers godoc
//
//	@Summary		List users
//	@Description	All accounts for admins, the caller's own account otherwise
//	@Tags			user
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.User}
//	@Router			/user [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// CreateUser godoc
//
//	@Summary		Create user
//	@Description	Enroll an account, copying priority and quota defaults from the named group
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateUserReq	true	"CreateUser payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.User}
//	@Router			/user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	req := CreateUserReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	u, err := h.svc.CreateUser(c.Request.Context(), currentUser(c), service.CreateUserInput{
		Email:   req.Email,
		Group:   req.Group,
		Profile: req.Profile,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	// The token is json:"-" on the model; surface it once at creation.
	c.JSON(http.StatusCreated, serializer.Response{Data: gin.H{
		"user":      u,
		"api_token": u.APIToken,
	}})
}

// DeleteUser godoc
//
//	@Summary		Remove user
//	@Description	Delete an account and everything it owns
//	@Tags			user
//	@Produce		json
//	@Param			id	path	string	true	"User ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/user/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid user id", err))
		return
	}

	if err := h.svc.RemoveUser(c.Request.Context(), currentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}

// SetRole godoc
//
//	@Summary		Set user role
//	@Description	Assign the user's single role, replacing the previous one
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"User ID"	format(uuid)
//	@Param			payload	body	handler.SetRoleReq	true	"Role payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/user/{id}/role [put]
func (h *UserHandler) SetRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid user id", err))
		return
	}
	req := SetRoleReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.SetRole(c.Request.Context(), currentUser(c), id, req.Role); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "updated"})
}
