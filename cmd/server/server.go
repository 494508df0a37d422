package server

import (
	"context"
	"fmt"
	"log/slog"

	"capstone-panel-system/config"
	"capstone-panel-system/internal/global/database"
	"capstone-panel-system/internal/global/httpclient"
	"capstone-panel-system/internal/global/logger"
	"capstone-panel-system/internal/global/middleware"
	"capstone-panel-system/internal/global/notify"
	internalOtel "capstone-panel-system/internal/global/otel"
	internalSentry "capstone-panel-system/internal/global/sentry"
	"capstone-panel-system/internal/global/storage"
	"capstone-panel-system/internal/module"
	"capstone-panel-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()

	tools.PanicOnErr(internalSentry.Init())
	log = logger.New("Server")

	database.Init()
	database.InitRedis()

	storage.Init()
	httpclient.Init()
	notify.Init()

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(internalSentry.Middleware())
	r.Use(middleware.SentryEnrichIP())
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}

	err := r.Run(config.Get().Host + ":" + config.Get().Port)

	if shutdownErr := internalOtel.Shutdown(context.Background()); shutdownErr != nil {
		log.Error("Failed to shutdown TracerProvider", "error", shutdownErr)
	}
	tools.PanicOnErr(err)
}
