package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"zipcode-jp/internal/apperror"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		event := log.Error().Err(err)
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			event = event.Str("code", string(appErr.Code))
			if appErr.Hint != "" {
				event = event.Str("hint", appErr.Hint)
			}
		}
		event.Msg("zip code processing failed")
		os.Exit(1)
	}
}
