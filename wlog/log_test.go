package wlog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dunst0/waitui/wlog"
)

func TestAddCallbackReceivesEntriesAtOrAboveLevel(t *testing.T) {
	var got []wlog.Entry
	err := wlog.AddCallback(wlog.LevelWarn, func(e wlog.Entry) { got = append(got, e) })
	require.NoError(t, err)

	wlog.SetQuiet(true)
	defer wlog.SetQuiet(false)

	wlog.Debug("ignored")
	wlog.Warn("seen %d", 1)
	wlog.Error("also seen")

	require.Len(t, got, 2)
	assert.Equal(t, "seen 1", got[0].Message)
	assert.Equal(t, wlog.LevelWarn, got[0].Level)
	assert.Equal(t, wlog.LevelError, got[1].Level)
}

func TestAddFileWritesDateQualifiedLines(t *testing.T) {
	wlog.SetQuiet(true)
	defer wlog.SetQuiet(false)

	path := filepath.Join(t.TempDir(), "waitui.log")
	require.NoError(t, wlog.AddFile(path, wlog.LevelInfo))

	wlog.Info("hello file sink")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file sink")
	assert.Contains(t, string(data), "INFO")
}

func TestMaxSinksEnforced(t *testing.T) {
	var err error
	for i := 0; i < 40; i++ {
		if err = wlog.AddCallback(wlog.LevelTrace, func(wlog.Entry) {}); err != nil {
			break
		}
	}
	assert.Error(t, err, "registering more than the sink capacity should eventually fail")
}
