package bootstrap

import (
	"github.com/openobs/telescope-queue/internal/config"
	"github.com/openobs/telescope-queue/internal/infra/cache"
	"github.com/openobs/telescope-queue/internal/infra/db"
	"github.com/openobs/telescope-queue/internal/infra/logger"
	"github.com/openobs/telescope-queue/internal/infra/queue"
	"github.com/openobs/telescope-queue/internal/modules/handler"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"github.com/openobs/telescope-queue/internal/modules/repo"
	"github.com/openobs/telescope-queue/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.User{},
				&model.Group{},
				&model.Affiliation{},
				&model.Program{},
				&model.Observation{},
				&model.Session{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// RabbitMQ
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.Exchange,
			do.MustInvoke[*zap.Logger](i),
		)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProgramRepo, error) {
		return repo.NewProgramRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ObservationRepo, error) {
		return repo.NewObservationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SessionRepo, error) {
		return repo.NewSessionRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.GroupRepo, error) {
		return repo.NewGroupRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AffiliationRepo, error) {
		return repo.NewAffiliationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProgramService, error) {
		return service.NewProgramService(
			do.MustInvoke[repo.ProgramRepo](i),
			do.MustInvoke[repo.ObservationRepo](i),
			do.MustInvoke[repo.SessionRepo](i),
			do.MustInvoke[repo.UserRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ObservationService, error) {
		return service.NewObservationService(
			do.MustInvoke[repo.ObservationRepo](i),
			do.MustInvoke[repo.ProgramRepo](i),
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SessionService, error) {
		return service.NewSessionService(
			do.MustInvoke[repo.SessionRepo](i),
			do.MustInvoke[repo.ProgramRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.GroupRepo](i),
			do.MustInvoke[repo.ProgramRepo](i),
			do.MustInvoke[repo.ObservationRepo](i),
			do.MustInvoke[repo.SessionRepo](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.GroupService, error) {
		return service.NewGroupService(
			do.MustInvoke[repo.GroupRepo](i),
			do.MustInvoke[repo.AffiliationRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TelescopeService, error) {
		return service.NewTelescopeService(
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProgramHandler, error) {
		return handler.NewProgramHandler(do.MustInvoke[service.ProgramService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ObservationHandler, error) {
		return handler.NewObservationHandler(do.MustInvoke[service.ObservationService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SessionHandler, error) {
		return handler.NewSessionHandler(do.MustInvoke[service.SessionService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.GroupHandler, error) {
		return handler.NewGroupHandler(do.MustInvoke[service.GroupService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TelescopeHandler, error) {
		return handler.NewTelescopeHandler(do.MustInvoke[service.TelescopeService](i)), nil
	})

	return inj
}
