// journal/cache.go
package journal

import (
	"os"
	"sync"
	"time"
)

// Loader caches the normalized series for one trade-log file. The log is
// loaded once and reused across recomputations; it is reloaded only when
// the file's modification time or size changes.
type Loader struct {
	mu      sync.Mutex
	path    string
	modTime time.Time
	size    int64
	series  Series
	dropped int
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the normalized series for the loader's file, reloading it if
// the file changed since the last call. The returned series is a copy; the
// cached one stays read-only. The int is the dropped-row count of the load
// that produced the cached series.
func (l *Loader) Load() (Series, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, err := os.Stat(l.path)
	if err != nil {
		return nil, 0, err
	}

	if l.series == nil || !info.ModTime().Equal(l.modTime) || info.Size() != l.size {
		s, dropped, err := ReadFile(l.path)
		if err != nil {
			return nil, 0, err
		}
		l.series = s
		l.dropped = dropped
		l.modTime = info.ModTime()
		l.size = info.Size()
	}

	return l.series.Clone(), l.dropped, nil
}
