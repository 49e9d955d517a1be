// Command fripon composes French marketplace listings for second-hand
// garments, either from an extracted features file or directly from
// photographs through a vision model.
package main

import (
	"fmt"
	"os"

	"github.com/fripon-labs/fripon-cli/internal/adapters/driven/config/file"
	visionopenai "github.com/fripon-labs/fripon-cli/internal/adapters/driven/vision/openai"
	"github.com/fripon-labs/fripon-cli/internal/adapters/driving/cli"
	"github.com/fripon-labs/fripon-cli/internal/composers"
	"github.com/fripon-labs/fripon-cli/internal/core/ports/driven"
	"github.com/fripon-labs/fripon-cli/internal/core/services"
	"github.com/fripon-labs/fripon-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("init config store: %w", err)
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("init prompt store: %w", err)
	}

	registry := composers.NewRegistry()
	if err := composers.RegisterDefaults(registry); err != nil {
		return fmt.Errorf("register composers: %w", err)
	}

	vision := buildVisionService(configStore)
	if vision != nil {
		defer vision.Close()
	}

	listingService := services.NewListingService(registry, vision, promptStore, configStore)
	cli.SetListingService(listingService)

	return cli.Execute()
}

// buildVisionService wires the OpenAI vision adapter when an API key is
// configured. Without a key the analyze command is unavailable but
// composition from a features file still works.
func buildVisionService(config driven.ConfigStore) driven.VisionService {
	apiKey := config.GetString(driven.ConfigVisionAPIKey)
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		logger.Debug("no vision API key configured, image analysis disabled")
		return nil
	}

	svc, err := visionopenai.New(visionopenai.Config{
		APIKey:  apiKey,
		BaseURL: config.GetString(driven.ConfigVisionBaseURL),
		Model:   config.GetString(driven.ConfigVisionModel),
	})
	if err != nil {
		logger.Warn("vision service disabled: %v", err)
		return nil
	}
	return svc
}
