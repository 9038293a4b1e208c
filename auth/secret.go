package auth

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Secret provides the expected "user:password" pair. It is consulted on every
// request, so implementations are free to change the value at runtime.
type Secret interface {
	Secret() string
}

// Static is a secret fixed at startup. An empty Static makes every check fail.
type Static string

func (s Static) Secret() string {
	return string(s)
}

// FileSecret keeps the contents of a file, reloading them whenever the file is written
// or replaced.
type FileSecret struct {
	path  string
	value atomic.Pointer[string]
	log   zerolog.Logger
}

// NewFileSecret reads the secret from path. A missing or unreadable file is an error.
func NewFileSecret(path string, log zerolog.Logger) (*FileSecret, error) {
	f := &FileSecret{
		path: path,
		log:  log.With().Str("secret_file", path).Logger(),
	}

	return f, f.reload()
}

func (f *FileSecret) Secret() string {
	if value := f.value.Load(); value != nil {
		return *value
	}

	return ""
}

func (f *FileSecret) reload() error {
	content, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	value := strings.TrimRight(string(content), "\r\n")
	f.value.Store(&value)

	return nil
}

// Watch reloads the secret on file changes until ctx is done. The parent directory is
// watched instead of the file itself, so editors replacing the file by renaming are
// handled too. Failed reloads keep the previous value.
func (f *FileSecret) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(f.path)); err != nil {
		return err
	}

	target := filepath.Clean(f.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}

			if err := f.reload(); err != nil {
				f.log.Warn().Err(err).Msg("failed to reload secret")
				continue
			}

			f.log.Info().Msg("secret reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			f.log.Error().Err(err).Msg("secret watcher")
		}
	}
}
