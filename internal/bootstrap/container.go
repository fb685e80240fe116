package bootstrap

import (
	"github.com/meeralouise/my-reading-world/internal/config"
	"github.com/meeralouise/my-reading-world/internal/controller"
	"github.com/meeralouise/my-reading-world/internal/pkg/logger"
	"github.com/meeralouise/my-reading-world/internal/repository/memory"
	"github.com/meeralouise/my-reading-world/internal/repository/unitofwork"
	"github.com/meeralouise/my-reading-world/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WorldController   controller.IWorldController
	StickerController controller.IStickerController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.App.BoardEventsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.BoardEventsTopic, uowFactory, sysLogger)

	// 3. Session state
	unlockRepo := memory.NewUnlockRepository()

	// 4. Services
	worldService := service.NewWorldService(uowFactory)
	stickerService := service.NewStickerService(uowFactory, publisherService)
	accessService := service.NewAccessService(uowFactory, unlockRepo)

	// 5. Controllers
	worldController := controller.NewWorldController(worldService, accessService)
	stickerController := controller.NewStickerController(stickerService)

	return &Container{
		WorldController:   worldController,
		StickerController: stickerController,
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
