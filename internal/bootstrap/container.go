package bootstrap

import (
	"log"

	"notes-manager/internal/config"
	"notes-manager/internal/controller"
	"notes-manager/internal/pkg/logger"
	"notes-manager/internal/repository/memory"
	"notes-manager/internal/repository/unitofwork"
	"notes-manager/internal/service"
	"notes-manager/pkg/database"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	NoteController   controller.INoteController
	HealthController controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Persistence. DB_CONNECTION_STRING=memory runs against the
	// in-memory store, handy for local hacking without postgres.
	var uowFactory unitofwork.RepositoryFactory
	var dbManager *database.Manager
	if cfg.Database.Connection == "memory" {
		log.Println("[INFO] Using in-memory note store")
		uowFactory = memory.NewRepositoryFactory()
	} else {
		dbManager = database.NewManager(cfg.Database.Connection)
		uowFactory = unitofwork.NewLazyRepositoryFactory(dbManager)
	}

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ActivityTopic, sysLogger)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)

	// 5. Controllers
	noteController := controller.NewNoteController(noteService)
	healthController := controller.NewHealthController(dbManager, cfg.App.Environment)

	return &Container{
		NoteController:   noteController,
		HealthController: healthController,
		ConsumerService:  consumerService,
		Logger:           sysLogger,
	}
}
