package ports

import "github.com/relforge/relforge/internal/core/domain"

// ConfigLoader loads the release configuration and resolves credential
// environment variables. It is the only component that reads the
// environment.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given path.
	Load(path string) (*domain.Config, error)
}
