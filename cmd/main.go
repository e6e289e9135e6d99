package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mpcastro/recipebook-backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Shutdown(context.Background())

	if err := a.Run(); err != nil {
		a.Log.Fatal("Server exited", "error", err)
	}
}
