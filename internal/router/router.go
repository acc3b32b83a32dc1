package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/openobs/telescope-queue/docs"
	"github.com/openobs/telescope-queue/internal/config"
	"github.com/openobs/telescope-queue/internal/middleware"
	"github.com/openobs/telescope-queue/internal/modules/handler"
	"github.com/openobs/telescope-queue/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config             *config.Config
	DB                 *gorm.DB
	Log                *zap.Logger
	ProgramHandler     *handler.ProgramHandler
	ObservationHandler *handler.ObservationHandler
	SessionHandler     *handler.SessionHandler
	UserHandler        *handler.UserHandler
	GroupHandler       *handler.GroupHandler
	TelescopeHandler   *handler.TelescopeHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		// Add trace ID to response header
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.UserAuth(d.DB))

		program := v1.Group("/program")
		{
			program.GET("", d.ProgramHandler.GetPrograms)
			program.POST("", d.ProgramHandler.CreateProgram)
			program.DELETE("/:id", d.ProgramHandler.DeleteProgram)

			program.PUT("/:id/completed", d.ProgramHandler.SetProgramCompleted)
			program.POST("/:id/share", d.ProgramHandler.ShareProgram)
		}

		observation := v1.Group("/observation")
		{
			observation.GET("", d.ObservationHandler.GetObservations)
			observation.POST("", d.ObservationHandler.CreateObservation)

			observation.GET("/available-time", d.ObservationHandler.GetAvailableTime)

			observation.DELETE("/:id", d.ObservationHandler.DeleteObservation)
			observation.PUT("/:id/completed", d.ObservationHandler.SetObservationCompleted)
		}

		session := v1.Group("/session")
		{
			session.GET("", d.SessionHandler.GetSessions)
			session.POST("", d.SessionHandler.CreateSession)
			session.DELETE("/:id", d.SessionHandler.DeleteSession)
		}

		user := v1.Group("/user")
		{
			user.GET("", d.UserHandler.GetUsers)
			user.POST("", d.UserHandler.CreateUser)
			user.DELETE("/:id", d.UserHandler.DeleteUser)

			user.PUT("/:id/role", d.UserHandler.SetRole)
		}

		group := v1.Group("/group")
		{
			group.GET("", d.GroupHandler.GetGroups)
			group.POST("", d.GroupHandler.CreateGroup)
			group.DELETE("/:id", d.GroupHandler.DeleteGroup)
		}

		affiliation := v1.Group("/affiliation")
		{
			affiliation.GET("", d.GroupHandler.GetAffiliations)
			affiliation.POST("", d.GroupHandler.CreateAffiliation)
		}

		telescope := v1.Group("/telescope")
		{
			telescope.GET("/status", d.TelescopeHandler.GetStatus)
		}
	}
	return r
}
