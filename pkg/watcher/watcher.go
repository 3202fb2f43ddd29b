package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// InputWatcher reruns a job when one of its input files changes
type InputWatcher struct {
	watcher  *fsnotify.Watcher
	log      *logrus.Entry
	debounce time.Duration
	files    map[string]bool
}

// New watches files. The parent directories are watched rather than the
// files themselves so that editors replacing a file are noticed too.
func New(files []string, debounce time.Duration, log *logrus.Entry) (*InputWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &InputWatcher{
		watcher:  watcher,
		log:      log,
		debounce: debounce,
		files:    make(map[string]bool),
	}

	dirs := make(map[string]bool)
	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		w.files[absPath] = true
		dirs[filepath.Dir(absPath)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// Files returns the absolute paths being watched, sorted
func (w *InputWatcher) Files() []string {
	files := make([]string, 0, len(w.files))
	for file := range w.files {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// Run calls job with the changed path after each burst of changes, until
// ctx is done or the watcher is closed. job runs on the calling goroutine,
// so two runs never overlap.
func (w *InputWatcher) Run(ctx context.Context, job func(changed string)) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var fire <-chan time.Time
	pending := ""

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.WithField("file", event.Name).Debugf("input changed (%s)", event.Op)
			pending = event.Name
			timer.Reset(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			job(pending)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watcher error")
		}
	}
}

func (w *InputWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	absPath, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[absPath]
}

// Close stops the watcher
func (w *InputWatcher) Close() error {
	return w.watcher.Close()
}
