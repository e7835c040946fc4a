package config

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher hot-reloads the tunable tables (keyword detector, tool permissions)
// when their files change. Swaps are atomic: consumers read through the
// accessor methods, never through retained pointers.
type Watcher struct {
	dir      string
	fsw      *fsnotify.Watcher
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu          sync.RWMutex
	keywords    *KeywordsConfig
	permissions map[string]*ToolPermission

	// Optional notification hooks, called after a successful swap.
	OnKeywords    func(*KeywordsConfig)
	OnPermissions func(map[string]*ToolPermission)
}

// NewWatcher creates a watcher seeded with the already-loaded tables.
func NewWatcher(cfg *Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		dir:         cfg.dir,
		fsw:         fsw,
		stopCh:      make(chan struct{}),
		keywords:    cfg.Keywords,
		permissions: cfg.Permissions,
	}
	if err := fsw.Add(cfg.dir); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.run()
}

// Stop stops the watcher and waits for the goroutine to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.fsw.Close()
	w.wg.Wait()
}

// Keywords returns the current keyword tables.
func (w *Watcher) Keywords() *KeywordsConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.keywords
}

// Permissions returns the current permission table.
func (w *Watcher) Permissions() map[string]*ToolPermission {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.permissions
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			switch filepath.Base(event.Name) {
			case keywordsFile:
				w.reloadKeywords(event.Name)
			case permissionsFile:
				w.reloadPermissions(event.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("Config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reloadKeywords(path string) {
	merged := DefaultKeywords()
	var user KeywordsConfig
	if err := readYAML(path, &user, true); err != nil {
		slog.Warn("Keyword reload failed, keeping previous tables", "path", path, "error", err)
		return
	}
	mergeKeywords(merged, &user)

	w.mu.Lock()
	w.keywords = merged
	w.mu.Unlock()
	slog.Info("Keyword tables reloaded", "path", path)

	if w.OnKeywords != nil {
		w.OnKeywords(merged)
	}
}

func (w *Watcher) reloadPermissions(path string) {
	var perms PermissionsYAML
	if err := readYAML(path, &perms, true); err != nil {
		slog.Warn("Permission reload failed, keeping previous table", "path", path, "error", err)
		return
	}
	table := make(map[string]*ToolPermission, len(perms.Tools))
	for name, p := range perms.Tools {
		permCopy := p
		table[name] = &permCopy
	}

	w.mu.Lock()
	w.permissions = table
	w.mu.Unlock()
	slog.Info("Permission table reloaded", "path", path)

	if w.OnPermissions != nil {
		w.OnPermissions(table)
	}
}
