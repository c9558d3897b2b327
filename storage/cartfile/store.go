// Package cartfile persists the cart as a single JSON document on disk,
// the durable shared store behind every storefront surface. Sibling
// processes pointed at the same path see each other's writes through a
// filesystem watcher: a change notification with at-least-once,
// coalesced delivery. Notifications carry no payload on purpose;
// consumers re-read the document.
package cartfile

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/jjyf27/redpro/core/cart"
)

type Store struct {
	path string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
}

var _ cart.Store = (*Store)(nil)

func Open(path string) (*Store, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolving cart path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating cart directory")
	}

	// watch the directory: the document itself may not exist yet,
	// and atomic replaces swap the inode out from under a file watch
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating cart watcher")
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, errors.Wrap(err, "watching cart directory")
	}

	s := &Store{
		path:    path,
		watcher: watcher,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go s.watch()
	return s, nil
}

func (s *Store) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := ioutil.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return payload, err
}

// Write replaces the whole document via a same-directory rename so
// readers never observe a half-written payload.
func (s *Store) Write(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := ioutil.TempFile(filepath.Dir(s.path), ".cart-*")
	if err != nil {
		return errors.Wrap(err, "staging cart write")
	}
	if _, err = tmp.Write(payload); err == nil {
		err = tmp.Close()
	} else {
		_ = tmp.Close()
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "staging cart write")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replacing cart document")
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing cart document")
	}
	return nil
}

// Changes delivers a signal whenever the document changes on disk,
// including this process's own writes. Signals coalesce while the
// consumer is busy; consumers must re-read full state per signal.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

func (s *Store) Close() error {
	close(s.done)
	return s.watcher.Close()
}

func (s *Store) watch() {
	for {
		select {
		case <-s.done:
			return
		case evt, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != s.path {
				continue
			}
			if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			select {
			case s.changes <- struct{}{}:
			default: // a pending signal already covers this change
			}
		case _, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
