package provider

import (
	"fmt"

	"memorybot/config"
	"memorybot/model"
)

// InitializeProvider creates the completion provider the configuration selects.
//
// This is the single entry point main uses: it maps the configured provider
// ID to a ProviderType and hands the API key and base URL to the factory.
// Unlike the factory it wraps failures with the provider ID so startup errors
// point at the setting to fix.
func InitializeProvider(cfg *config.Config) (model.Provider, error) {
	providerType := MapProviderIDToType(cfg.Provider)

	p, err := NewProvider(Config{
		Type:    providerType,
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s provider: %w", cfg.Provider, err)
	}

	return p, nil
}

// ModelNames returns the configured backend model for each tier.
func ModelNames(cfg *config.Config) model.ModelNames {
	return model.ModelNames{
		Standard: cfg.StandardModel,
		Advanced: cfg.AdvancedModel,
	}
}
