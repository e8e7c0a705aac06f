package health

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/shophub/storefront/internal/config"
)

// NewHealthHandler wires liveness checks for the storefront. The only
// external dependency is the users JSON file; everything else lives in
// process memory.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "shophub-storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "users-file",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					if _, err := os.Stat(cfg.UsersFile); err != nil {
						return fmt.Errorf("users file not accessible: %w", err)
					}

					return nil
				},
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize health checks: %w", err)
	}

	return h, nil
}
