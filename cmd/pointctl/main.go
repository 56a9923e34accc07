package main

import (
	"context"
	"log"
	"os"

	"github.com/dklimov/pointctl/internal/cli"
	"github.com/dklimov/pointctl/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := cli.NewApp(cfg)
	os.Exit(app.Execute(context.Background(), os.Args[1:]))
}
