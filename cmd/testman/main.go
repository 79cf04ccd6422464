package main

import (
	"log"

	"github.com/thinhdnn/ai-test-management-sub002/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
