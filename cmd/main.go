package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintracker/internal/config"
	"fintracker/internal/handlers"
	"fintracker/internal/logger"
	"fintracker/internal/repository"
	"fintracker/internal/repository/db"
	"fintracker/internal/server"
	"fintracker/internal/service"

	_ "fintracker/docs"

	"go.mongodb.org/mongo-driver/mongo"
)

const shutdownTimeout = 10 * time.Second

// @title        Finance Tracker API
// @version      1.0
// @description  Personal income/expense tracking API with bearer-token auth.
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	// open Mongo
	client, database, err := openDB(cfg)
	if err != nil {
		log.Fatalw("failed to init mongodb", "err", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if derr := client.Disconnect(ctx); derr != nil {
			log.Errorw("failed to close mongodb connection", "err", derr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, service.AuthConfig{
		SigningKey: cfg.TokenSigningKey,
		TokenTTL:   cfg.TokenTTL,
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	go func() {
		if err := srv.Run(cfg.Port, apiHandler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("server started", "port", cfg.Port)

	waitForShutdown(srv, log)
}

// openDB connects to MongoDB, verifies the connection and ensures indexes.
func openDB(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx := context.Background()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}

	database := client.Database(cfg.MongoDatabase)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}
	return client, database, nil
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
