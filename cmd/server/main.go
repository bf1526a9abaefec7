package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/tareas/api/handler"
	"github.com/fastygo/tareas/internal/config"
	"github.com/fastygo/tareas/internal/infrastructure/accesslog"
	"github.com/fastygo/tareas/internal/infrastructure/monitor"
	"github.com/fastygo/tareas/internal/middleware"
	"github.com/fastygo/tareas/internal/router"
	"github.com/fastygo/tareas/internal/services"
	"github.com/fastygo/tareas/internal/services/lifecycle"
	"github.com/fastygo/tareas/pkg/httpcontext"
	"github.com/fastygo/tareas/pkg/logger"
	"github.com/fastygo/tareas/repository/memory"
	taskUC "github.com/fastygo/tareas/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		OutputPath: cfg.Logger.Output,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	var repoOpts []memory.Option
	if cfg.Store.SeedSamples {
		repoOpts = append(repoOpts, memory.WithSeed(taskUC.SampleTasks(time.Now().UTC())...))
	}
	taskRepo := memory.NewTaskRepository(repoOpts...)

	var sinks accesslog.Multi
	var journal monitor.Journal

	if cfg.AccessLog.Enabled {
		fileSink, err := accesslog.OpenFile(cfg.AccessLog.Path)
		if err != nil {
			zapLogger.Fatal("failed to open access log", zap.Error(err))
		}
		manager.Register("access_log", func(ctx context.Context) error {
			return fileSink.Close()
		})
		sinks = append(sinks, fileSink)
	}

	if cfg.AccessLog.JournalPath != "" {
		journalStore, err := accesslog.OpenJournal(cfg.AccessLog.JournalPath, "")
		if err != nil {
			zapLogger.Fatal("failed to open access journal", zap.Error(err))
		}
		manager.Register("access_journal", func(ctx context.Context) error {
			return journalStore.Close()
		})
		sinks = append(sinks, journalStore)
		journal = journalStore

		retention := services.NewRetention(journalStore, zapLogger, services.RetentionConfig{
			Interval:  cfg.AccessLog.CleanupInterval,
			Retention: cfg.AccessLog.Retention,
		})
		retention.Start()
		manager.Register("access_journal_retention", func(ctx context.Context) error {
			retention.Stop(ctx)
			return nil
		})
	}

	mon := monitor.New(taskRepo, journal, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	taskUseCase := taskUC.New(taskRepo, zapLogger)
	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		System: apiHandler.NewSystemHandler(cfg.AppName, cfg.Version, ctxAdapter, zapLogger, cfg.IsDevelopment()),
		Task:   apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger, cfg.IsDevelopment()),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	var accessLog func(fasthttp.RequestHandler) fasthttp.RequestHandler
	if len(sinks) > 0 {
		accessLog = middleware.AccessLog(sinks, zapLogger)
	}
	r := router.New(handlers)

	server := &fasthttp.Server{
		Handler:            router.Wrap(r.Handler, accessLog),
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		MaxRequestBodySize: cfg.HTTP.MaxBodySize,
		Name:               cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("environment", cfg.Environment))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
