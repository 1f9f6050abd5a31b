package main

import (
	"context"
	"log"

	"github.com/philly/arch-blog/postpage/internal/server"
)

func main() {
	ctx := context.Background()

	app, cleanup, err := server.InitializeSeeder(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize seeder: %v", err)
	}
	defer cleanup()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
