package main

import (
	"log"

	"github.com/kurobe2240/NFT-EC/internal/app"
	"github.com/kurobe2240/NFT-EC/internal/app/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	application.Run()
}
