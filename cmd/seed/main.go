// Command seed populates the database with demo data.
//
// Usage:
//
//	seed [-preset preset.yml]
//
// Without a preset file a small default data set is generated.
package main

import (
	"flag"
	"log"
	"os"

	"yatube/internal/config"
	"yatube/internal/database"
	"yatube/internal/seed"

	"gopkg.in/yaml.v3"
)

func main() {
	presetPath := flag.String("preset", "", "path to a YAML preset file")
	flag.Parse()

	preset := seed.DefaultPreset()
	if *presetPath != "" {
		raw, err := os.ReadFile(*presetPath)
		if err != nil {
			log.Fatalf("Failed to read preset file: %v", err)
		}
		if err := yaml.Unmarshal(raw, &preset); err != nil {
			log.Fatalf("Failed to parse preset file: %v", err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, preset); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
