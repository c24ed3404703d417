package main

import (
	"context"
	"log"

	"paperspace-be/internal/bootstrap"
	"paperspace-be/internal/config"
	"paperspace-be/internal/server"
	"paperspace-be/internal/tracer"
	"paperspace-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Warning: failed to shut down tracer: %v", err)
		}
	}()

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)

	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Fatalf("Failed to start embed consumer: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
