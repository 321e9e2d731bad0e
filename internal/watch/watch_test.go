package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileNotifiesChanges(t *testing.T) {
	//** Arrange
	directory := t.TempDir()
	path := filepath.Join(directory, "routine_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0666))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, nil, func() error {
			changes <- struct{}{}
			return nil
		})
	}()
	// Give the watcher time to register
	time.Sleep(200 * time.Millisecond)

	//** Act
	require.NoError(t, os.WriteFile(filepath.Join(directory, "unrelated.txt"), []byte("x"), 0666))
	require.NoError(t, os.WriteFile(path, []byte(`{"subjects": []}`), 0666))

	//** Assert
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("change was not notified")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestFileFailsOnMissingDirectory(t *testing.T) {
	err := File(context.Background(), filepath.Join(t.TempDir(), "missing", "catalog.json"), nil, func() error { return nil })

	assert.Error(t, err)
}
