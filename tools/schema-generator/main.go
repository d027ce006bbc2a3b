package main

import (
	"log"
	"os"

	"github.com/grovetools/pagenav/pkg/navconfig"
)

func main() {
	data, err := navconfig.Schema()
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	// Write to the package root
	if err := os.WriteFile("pagenav.schema.json", data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated pagenav schema at pagenav.schema.json")
}
