package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const record = `{"chest": 50, "shoulder": 45, "sleeve": 20, "length": 70, "neck": 40}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRecordWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measurements.json")
	writeFile(t, path, record)

	records := make(chan garment.Measurements, 4)
	errs := make(chan error, 4)
	rw, err := NewRecordWatcher(path, 20*time.Millisecond,
		func(m garment.Measurements) { records <- m },
		func(err error) { errs <- err },
	)
	require.NoError(t, err)
	defer rw.Close()
	rw.Start()

	writeFile(t, path, `{"chest": 60, "shoulder": 45, "sleeve": 20, "length": 70, "neck": 40}`)

	timeout := time.After(5 * time.Second)
	for {
		select {
		case m := <-records:
			assert.Equal(t, 60.0, m.Chest)
			return
		case err := <-errs:
			// a reload can race a half-written file; the next write event retries
			t.Logf("reload error: %v", err)
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestRecordWatcherInvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measurements.json")
	writeFile(t, path, record)

	errs := make(chan error, 4)
	rw, err := NewRecordWatcher(path, 20*time.Millisecond,
		func(garment.Measurements) {},
		func(err error) { errs <- err },
	)
	require.NoError(t, err)
	defer rw.Close()
	rw.Start()

	writeFile(t, path, `{"chest": 0, "shoulder": 45, "sleeve": 20, "length": 70, "neck": 40}`)

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, garment.ErrIncomplete)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestRecordWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "measurements.json")
	writeFile(t, path, record)

	rw, err := NewRecordWatcher(path, time.Hour, func(garment.Measurements) {}, nil)
	require.NoError(t, err)
	defer rw.Close()

	rw.handleEvent(fsnotify.Event{Name: filepath.Join(dir, "other.json"), Op: fsnotify.Write})
	assert.Nil(t, rw.timer)

	rw.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Chmod})
	assert.Nil(t, rw.timer)

	rw.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.NotNil(t, rw.timer)
}

func TestRecordWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measurements.json")
	writeFile(t, path, record)

	rw, err := NewRecordWatcher(path, time.Hour, func(garment.Measurements) {}, nil)
	require.NoError(t, err)

	assert.Equal(t, path, rw.Path())
	assert.NoError(t, rw.Close())
	assert.NoError(t, rw.Close())

	rw.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.Nil(t, rw.timer, "no reload is scheduled after close")
}

func TestRecordWatcherMissingDirectory(t *testing.T) {
	_, err := NewRecordWatcher(filepath.Join(t.TempDir(), "missing", "m.json"), time.Second, func(garment.Measurements) {}, nil)
	assert.Error(t, err)
}
