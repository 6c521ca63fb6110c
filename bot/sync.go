package bot

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Sync fetches memory once and logs the result. It is diagnostic only: it
// never retries, never reports to a conversation, and later commands fetch
// memory on their own.
func (b *Bot) Sync(ctx context.Context) {
	snap, err := b.memory.Fetch(ctx)
	if err != nil {
		b.logger.WithError(err).Error("Failed to sync memory on startup")
		return
	}

	b.logger.WithFields(logrus.Fields{
		"keys":   snap.Keys(),
		"memory": snap.JSON(),
	}).Info("Synced memory from shared server")
}

// CheckProvider pings the completion backend once and logs the outcome.
// Like Sync it never fails startup; commands report their own errors.
func (b *Bot) CheckProvider(ctx context.Context) {
	log := b.logger.WithField("provider", b.provider.Name())
	if err := b.provider.Ping(ctx); err != nil {
		log.WithError(err).Warn("Completion provider is unreachable")
		return
	}
	log.Info("Completion provider is reachable")
}
