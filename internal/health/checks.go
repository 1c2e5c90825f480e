package health

import (
	"context"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
)

// Pinger reports whether the remote backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func NewHealthHandler(backend Pinger) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{

			Name:    "candleworks-storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "backend",
				Timeout:   5 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					if backend == nil {
						return fmt.Errorf("backend client is not initialized")
					}
					if err := backend.Ping(ctx); err != nil {
						return fmt.Errorf("failed to reach backend: %w", err)
					}
					return nil
				},
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating health handler: %w", err)
	}

	return h, nil
}
