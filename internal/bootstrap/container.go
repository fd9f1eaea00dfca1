package bootstrap

import (
	"log"

	"github.com/LuisRodriguez27/notex/internal/config"
	"github.com/LuisRodriguez27/notex/internal/controller"
	"github.com/LuisRodriguez27/notex/internal/pkg/logger"
	"github.com/LuisRodriguez27/notex/internal/repository/implementation"
	"github.com/LuisRodriguez27/notex/internal/repository/memory"
	"github.com/LuisRodriguez27/notex/internal/repository/unitofwork"
	"github.com/LuisRodriguez27/notex/internal/service"
	"github.com/LuisRodriguez27/notex/pkg/events"
	"github.com/LuisRodriguez27/notex/pkg/filestore"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NotebookController   controller.INotebookController
	NoteController       controller.INoteController
	AttachmentController controller.IAttachmentController
	SettingController    controller.ISettingController

	// Core facades exposed for shutdown and background consumers
	Logger logger.ILogger
	Bus    *events.Bus
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	files, err := filestore.New(cfg.Data.AttachmentsDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize attachment storage: %v", err)
	}

	// 2. Telemetry bus
	bus := events.NewBus()

	// 3. Services
	sweeper := service.NewAttachmentSweeper(files, service.NewResourceExtractor(), bus, sysLogger)

	notebookService := service.NewNotebookService(uowFactory, bus, sysLogger)
	noteService := service.NewNoteService(uowFactory, sweeper, bus, sysLogger)
	attachmentService := service.NewAttachmentService(uowFactory, files, sysLogger)

	// Settings go through the in-memory cache; the shell reads them on
	// every window event.
	settingRepo := memory.NewCachedSettingRepository(implementation.NewSettingRepository(db))
	settingService := service.NewSettingService(settingRepo, sysLogger)

	// 4. Controllers
	return &Container{
		NotebookController:   controller.NewNotebookController(notebookService),
		NoteController:       controller.NewNoteController(noteService),
		AttachmentController: controller.NewAttachmentController(attachmentService),
		SettingController:    controller.NewSettingController(settingService),

		Logger: sysLogger,
		Bus:    bus,
	}
}
