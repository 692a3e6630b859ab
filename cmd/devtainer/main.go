package main

import (
	"log"

	"github.com/devtainer/devtainer/cmd/devtainer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
