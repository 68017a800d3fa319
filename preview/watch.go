package preview

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// watch re-loads the schema directory whenever a schema file changes, until
// ctx is cancelled.
func (s *Server) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watching %s: %w", s.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			s.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("schema change detected")
			if err := s.reload(); err != nil {
				// Writers may be mid-save; keep serving the last good
				// set and try again on the next event.
				s.logger.Warn().Err(err).Msg("schema reload failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}
