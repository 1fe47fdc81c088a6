package livereload

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadMessage is the text frame clients receive when served files change.
const ReloadMessage = "reload"

// Service watches the served root and tells connected pages to reload.
type Service struct {
	root     string
	watcher  *fsnotify.Watcher
	hub      *hub
	logger   *zap.Logger
	debounce func(func())
	done     chan struct{}
}

// NewService creates the watcher over root and starts the event loop.
func NewService(root string, cfg Config, logger *zap.Logger) (*Service, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	s := &Service{
		root:     root,
		watcher:  watcher,
		hub:      newHub(),
		logger:   logger,
		debounce: debounce.New(time.Duration(cfg.DebounceMs) * time.Millisecond),
		done:     make(chan struct{}),
	}

	if err := s.watchTree(root); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go s.loop()
	return s, nil
}

// Close stops the event loop and releases the watcher.
func (s *Service) Close() error {
	close(s.done)
	return s.watcher.Close()
}

// watchTree registers root and every subdirectory with the watcher.
// Hidden directories (.git and friends) are skipped.
func (s *Service) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return s.watcher.Add(path)
	})
}

func (s *Service) loop() {
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.handleEvent(event)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}

func (s *Service) handleEvent(event fsnotify.Event) {
	// New directories need their own watch for nested edits.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := s.watcher.Add(event.Name); err != nil {
				s.logger.Warn("Failed to watch new directory", zap.String("path", event.Name), zap.Error(err))
			}
		}
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	s.debounce(func() {
		n := s.hub.broadcast(ReloadMessage)
		s.logger.Debug("Reload broadcast", zap.Int("clients", n))
	})
}
