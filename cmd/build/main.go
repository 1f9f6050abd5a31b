package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/philly/arch-blog/postpage/internal/server"
)

func main() {
	ctx := context.Background()

	app, cleanup, err := server.InitializeBuilder(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize builder: %v", err)
	}

	result, err := app.Run(ctx)
	cleanup()
	if err != nil {
		log.Printf("Build failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d posts to %s (%v)\n", result.PostCount, result.OutputDir, result.Files)
}
