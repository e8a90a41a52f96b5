package main

import (
	"askgate/internal/config"
	"fmt"
	"os"
)

// envcheck reports whether the configuration and API key load, without calling any provider
func main() {
	configPath := os.Getenv("ASKGATE_CONFIG")
	if configPath == "" {
		configPath = "askgate.toml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ configuration invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Config file:  %s\n", configPath)
	fmt.Printf("Provider:     %s\n", cfg.AI.Provider)
	fmt.Printf("Models:       guidance=%s answer=%s\n", cfg.AI.Models.Guidance, cfg.AI.Models.Answer)
	fmt.Printf("Scorer:       %s\n", cfg.Scorer.Strategy)

	if !cfg.AI.IsEnabled() {
		fmt.Println("API key:      ❌ not found")
		os.Exit(1)
	}
	fmt.Printf("API key:      ✅ loaded (%s)\n", cfg.AI.MaskedKey())
}
