// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/relforge/relforge/internal/adapters/config"
	_ "github.com/relforge/relforge/internal/adapters/logger"
	_ "github.com/relforge/relforge/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "github.com/relforge/relforge/internal/app"
)
