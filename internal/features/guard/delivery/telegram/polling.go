package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/rs/zerolog"
)

// PollingOpts configures long polling.
type PollingOpts struct {
	DropPendingUpdates bool
	TimeoutSec         int64
}

func (o PollingOpts) toExt() *ext.PollingOpts {
	return &ext.PollingOpts{
		DropPendingUpdates: o.DropPendingUpdates,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout:        o.TimeoutSec,
			AllowedUpdates: AllowedUpdates,
			RequestOpts: &gotgbot.RequestOpts{
				// The HTTP timeout must outlive the long poll.
				Timeout: time.Duration(o.TimeoutSec+1) * time.Second,
			},
		},
	}
}

// Poll feeds updates to the dispatcher until ctx is cancelled.
func Poll(ctx context.Context, b *gotgbot.Bot, d *ext.Dispatcher, opts PollingOpts, logger zerolog.Logger) error {
	updater := ext.NewUpdater(d, nil)
	if err := updater.StartPolling(b, opts.toExt()); err != nil {
		return fmt.Errorf("start polling: %w", err)
	}
	logger.Info().Str("username", b.Username).Msg("Guard bot started (polling)")

	<-ctx.Done()

	if err := updater.Stop(); err != nil {
		return fmt.Errorf("stop polling: %w", err)
	}
	logger.Info().Msg("Guard bot stopped")
	return nil
}
