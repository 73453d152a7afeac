package replay

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
	"github.com/zmwangx/debounce"
)

// Watch calls fn whenever the file at path changes until ctx is done. Bursts
// of writes, as editors produce when saving, are coalesced into one call.
func Watch(ctx context.Context, log logr.Logger, path string, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	changed, ctrl := debounce.Debounce(fn, 100*time.Millisecond, debounce.WithMaxWait(time.Second))
	defer ctrl.Cancel()

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.V(1).Info("script changed", "op", ev.Op.String())
			changed()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watch")
		}
	}
}
