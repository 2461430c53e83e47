package main

import (
	"os"

	"github.com/MyelinBots/nabeatsu-go/cmd"
	"github.com/MyelinBots/nabeatsu-go/internal/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error.Printf("nabeatsu: %v", err)
		os.Exit(1)
	}
}
