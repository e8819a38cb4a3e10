package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"web3dir/config"
	"web3dir/database"
	"web3dir/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context with timeout for initial connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database.URL, database.Options{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	r := router.New(router.Deps{
		Store:          db,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	log.Printf("Server starting on %s", cfg.Addr())
	if err := serve(r, cfg.Addr()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// serve blocks until the engine stops. A failed bind is returned at once.
func serve(r *gin.Engine, addr string) error {
	if err := r.Run(addr); err != nil {
		return fmt.Errorf("failed to serve on %s: %w", addr, err)
	}
	return nil
}
