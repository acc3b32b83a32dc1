package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/serializer"
	"github.com/openobs/telescope-queue/internal/modules/service"
)

type ObservationHandler struct {
	svc service.ObservationService
}

func NewObservationHandler(s service.ObservationService) *ObservationHandler {
	return &ObservationHandler{svc: s}
}

type CreateObservationReq struct {
	ProgramID     string                 `json:"program_id" binding:"required" format:"uuid"`
	Target        string                 `json:"target" binding:"required" example:"M31"`
	ExposureTime  float64                `json:"exposure_time" binding:"required" example:"300"`
	ExposureCount int                    `json:"exposure_count" binding:"required" example:"4"`
	Binning       int                    `json:"binning" binding:"required" example:"1"`
	Filters       []string               `json:"filters" binding:"required" example:"ha,oiii"`
	Options       map[string]interface{} `json:"options"`
}

type SetObservationCompletedReq struct {
	Completed *bool `json:"completed" binding:"required" example:"true"`
}

type AvailableTimeResp struct {
	AvailableTime float64 `json:"available_time" example:"1200"`
}

// GetObservations godoc
//
//	@Summary		List observations
//	@Description	All observations for admins, the caller's own otherwise
//	@Tags			observation
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Observation}
//	@Router			/observation [get]
func (h *ObservationHandler) GetObservations(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// CreateObservation godoc
//
//	@Summary		Create observation
//	@Description	Queue an imaging request; its derived total time is charged against the caller's quota
//	@Tags			observation
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateObservationReq	true	"CreateObservation payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Observation}
//	@Failure		422	{object}	serializer.Response
//	@Router			/observation [post]
func (h *ObservationHandler) CreateObservation(c *gin.Context) {
	req := CreateObservationReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	programID, err := uuid.Parse(req.ProgramID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid program_id", err))
		return
	}

	o, err := h.svc.Insert(c.Request.Context(), currentUser(c), service.InsertObservationInput{
		ProgramID:     programID,
		Target:        req.Target,
		ExposureTime:  req.ExposureTime,
		ExposureCount: req.ExposureCount,
		Binning:       req.Binning,
		Filters:       req.Filters,
		Options:       req.Options,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: o})
}

// DeleteObservation godoc
//
//	@Summary		Delete observation
//	@Description	Remove an observation; a non-owner request is a no-op
//	@Tags			observation
//	@Produce		json
//	@Param			id	path	string	true	"Observation ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/observation/{id} [delete]
func (h *ObservationHandler) DeleteObservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid observation id", err))
		return
	}

	if err := h.svc.Remove(c.Request.Context(), currentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}

// SetObservationCompleted godoc
//
//	@Summary		Set observation completion
//	@Description	Flip the completion flag; completed observations stop counting against quota
//	@Tags			observation
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string								true	"Observation ID"	format(uuid)
//	@Param			payload	body	handler.SetObservationCompletedReq	true	"Completion flag"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/observation/{id}/completed [put]
func (h *ObservationHandler) SetObservationCompleted(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid observation id", err))
		return
	}
	req := SetObservationCompletedReq{}
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

// GetAvailableTime godoc
//
//	@Summary		Remaining queue time
//	@Description	Caller's quota minus the total time of their incomplete observations
//	@Tags			observation
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=handler.AvailableTimeResp}
//	@Router			/observation/available-time [get]
func (h *ObservationHandler) GetAvailableTime(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	available, err := h.svc.AvailableTime(c.Request.Context(), u.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: AvailableTimeResp{AvailableTime: available}})
}
