package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/datalog/internal/config"
	"github.com/mamadbah2/datalog/internal/repository/sqldb"
	"github.com/mamadbah2/datalog/internal/server/handlers"
	"github.com/mamadbah2/datalog/internal/server/router"
	"github.com/mamadbah2/datalog/internal/service/records"
	"github.com/mamadbah2/datalog/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	db, err := sqldb.Open(context.Background(), cfg.Database.URL)
	if err != nil {
		baseLogger.Fatal("failed to open record store", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			baseLogger.Error("failed to close record store", zap.Error(err))
		}
	}()

	if err := db.Provision(context.Background()); err != nil {
		baseLogger.Fatal("failed to provision record store", zap.Error(err))
	}

	svcLogger := logger.Named(baseLogger, "svc.records")
	larvaeSvc := records.NewService(records.LarvaeFeedingKind(), sqldb.NewLarvaeFeedingLogStore(db), svcLogger)
	prepupaeSvc := records.NewService(records.ContainerPrepupaeKind(), sqldb.NewContainerLogPrepupaeStore(db), svcLogger)
	neonatesSvc := records.NewService(records.ContainerNeonatesKind(), sqldb.NewContainerLogNeonatesStore(db), svcLogger)
	microwaveSvc := records.NewMicrowaveService(sqldb.NewMicrowaveLogStore(db), svcLogger)

	handlerLogger := logger.Named(baseLogger, "handlers.logs")
	engine := router.New(router.Handlers{
		Larvae:    handlers.NewLogHandler(larvaeSvc, handlerLogger),
		Prepupae:  handlers.NewLogHandler(prepupaeSvc, handlerLogger),
		Neonates:  handlers.NewLogHandler(neonatesSvc, handlerLogger),
		Microwave: handlers.NewMicrowaveHandler(microwaveSvc, handlerLogger),
	}, cfg.CORS, logger.Named(baseLogger, "router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
