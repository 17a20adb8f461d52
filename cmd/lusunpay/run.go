package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
)

// run starts app, blocks until ctx is cancelled or the app asks to stop, and
// returns the process exit code.
func run(ctx context.Context, app *fx.App, stderr io.Writer) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "lusunpay: failed to start: %v\n", err)
		return 1
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(stderr, "lusunpay: failed to stop: %v\n", err)
		return 1
	}
	return 0
}
