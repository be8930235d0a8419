package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/dialogue-browser/internal/dataset"
)

// Loader reads a collection from path.
type Loader func(path string) (*dataset.Collection, error)

// Event carries a freshly loaded collection or the error that prevented it.
type Event struct {
	Source     string
	Collection *dataset.Collection
	Err        error
}

// Watcher polls a dataset file and reloads it when its size or modification
// time changes.
type Watcher struct {
	path     string
	interval time.Duration
	load     Loader

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

type fileStamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

func stampOf(path string) (fileStamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileStamp{}, nil
		}
		return fileStamp{}, err
	}
	return fileStamp{exists: true, size: info.Size(), modTime: info.ModTime()}, nil
}

// DefaultInterval is used when NewWatcher is given a non-positive interval.
const DefaultInterval = 2 * time.Second

// NewWatcher starts polling path every interval. The file's current state is
// taken as already loaded, so only later changes produce events.
func NewWatcher(path string, interval time.Duration, load Loader) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		load:     load,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	initial, _ := stampOf(path)
	w.wg.Add(1)
	go w.poll(initial)

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of reload events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current reload
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(last fileStamp) {
	defer w.wg.Done()

	throttle := newThrottle(w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var lastErr string
	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}
		stamp, err := stampOf(w.path)
		if err != nil {
			if err.Error() != lastErr {
				lastErr = err.Error()
				if !w.emit(Event{Source: w.path, Err: err}) {
					return
				}
			}
			continue
		}
		lastErr = ""
		if stamp == last {
			continue
		}
		last = stamp
		if !stamp.exists {
			continue
		}
		if !throttle.wait(w.ctx) {
			return
		}
		c, err := w.load(w.path)
		if !w.emit(Event{Source: w.path, Collection: c, Err: err}) {
			return
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
