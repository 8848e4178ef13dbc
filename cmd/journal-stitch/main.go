package main

import (
	"log"

	"github.com/prodipto2001/journal-stitch/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
