package main

import (
	"log"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ contracker failed to start: %v", err)
	}
}
