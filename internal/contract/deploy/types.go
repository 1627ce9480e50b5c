package deploy

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"
)

type (
	// Runner executes an external command in dir and returns its standard output.
	// A failed command returns a *CommandError.
	Runner interface {
		Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	}

	// Metrics records deployment pipeline stages.
	Metrics interface {
		Observe(stage string, err error, started time.Time)
	}
)
