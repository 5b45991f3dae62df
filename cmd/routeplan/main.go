package main

import (
	"log"
	"os"
	"round-trip-planner/internal/cli"
	"round-trip-planner/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := cli.NewRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
