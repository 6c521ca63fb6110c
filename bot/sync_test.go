package bot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncLogsSnapshot(t *testing.T) {
	h := newHarness(t, map[string]string{"k": "v"})

	h.bot.Sync(context.Background())

	entry := h.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Synced memory from shared server", entry.Message)
	assert.Equal(t, `{"k":"v"}`, entry.Data["memory"])
	assert.Equal(t, []string{"k"}, entry.Data["keys"])
	assert.Empty(t, h.transport.messages(), "sync never posts to a conversation")
}

func TestSyncFailureOnlyLogs(t *testing.T) {
	h := newHarness(t, nil)
	h.store.Close()

	h.bot.Sync(context.Background())

	entry := h.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Failed to sync memory on startup", entry.Message)
	assert.Empty(t, h.transport.messages())

	// Later commands still fetch on their own.
	assert.Contains(t, h.sendOne(t, "!memory"), "Error")
}

func TestCheckProviderLogsReachable(t *testing.T) {
	h := newHarness(t, nil)
	pings := 0
	h.provider.PingFunc = func(context.Context) error {
		pings++
		return nil
	}

	h.bot.CheckProvider(context.Background())

	assert.Equal(t, 1, pings)
	entry := h.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Completion provider is reachable", entry.Message)
	assert.Equal(t, "mock", entry.Data["provider"])
	assert.Empty(t, h.provider.Calls(), "a ping is not a completion")
}

func TestCheckProviderFailureOnlyWarns(t *testing.T) {
	h := newHarness(t, nil)
	h.provider.PingFunc = func(context.Context) error { return errors.New("401 Unauthorized") }

	h.bot.CheckProvider(context.Background())

	entry := h.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Completion provider is unreachable", entry.Message)
	assert.Empty(t, h.transport.messages())

	assert.Equal(t, "Pong!", h.sendOne(t, "!ping"))
}
