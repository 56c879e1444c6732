package main

import (
	"github.com/travisksimons/vibe-check-movies/internal/app"
	"github.com/travisksimons/vibe-check-movies/internal/config"
)

func main() {
	app.Go(config.Load())
}
