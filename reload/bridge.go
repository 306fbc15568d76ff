package reload

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tactical/prefabs"
)

// Unit is a reloadable game code unit, mirroring the entry points a
// native host would resolve from a shared library. State hands the
// long-lived data across the swap; HotReload adopts it on the other
// side and must invalidate anything that referenced the replaced code.
type Unit interface {
	Init(host *Host) error
	Update() bool
	Render(screen *ebiten.Image)
	Shutdown()
	State() any
	HotReload(state any)
}

// Host carries what the platform layer owns and the unit may use.
type Host struct {
	Debug bool
}

// Bridge notices when a unit's reloadable sources change and swaps the
// new implementation in. Detection combines fsnotify events with a
// modification-time scan, so a missing watcher only degrades to
// polling. Swaps must happen between ticks, never mid-tick.
type Bridge struct {
	dirs    []string
	watcher *prefabs.Watcher
	files   map[string]time.Time
}

func NewBridge(dirs ...string) *Bridge {
	b := &Bridge{
		dirs:  dirs,
		files: make(map[string]time.Time),
	}
	b.rescan()

	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("reload: file watcher unavailable, polling mod times instead: %v", err)
	} else {
		b.watcher = w
	}
	return b
}

func (b *Bridge) Close() {
	if b != nil && b.watcher != nil {
		_ = b.watcher.Close()
		b.watcher = nil
	}
}

// Changed reports whether any reloadable source changed since the last
// check.
func (b *Bridge) Changed() bool {
	if b == nil {
		return false
	}
	changed := false

	if b.watcher != nil {
	drain:
		for {
			select {
			case _, ok := <-b.watcher.Events:
				if !ok {
					b.watcher = nil
					break drain
				}
				changed = true
			case err, ok := <-b.watcher.Errors:
				if !ok {
					break drain
				}
				log.Printf("reload: watch error: %v", err)
			default:
				break drain
			}
		}
	}

	if b.rescan() {
		changed = true
	}
	return changed
}

// Apply swaps the changed implementation into the unit. The unit's
// opaque state crosses the boundary untouched; everything code-relative
// is the unit's job to rebuild. Returns whether a swap happened.
func (b *Bridge) Apply(u Unit) bool {
	if b == nil || u == nil || !b.Changed() {
		return false
	}
	u.HotReload(u.State())
	return true
}

// rescan stats every reloadable file under the watched dirs and reports
// whether the snapshot moved.
func (b *Bridge) rescan() bool {
	seen := make(map[string]time.Time, len(b.files))
	for _, dir := range b.dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !reloadable(path) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			seen[path] = info.ModTime()
			return nil
		})
	}

	changed := len(seen) != len(b.files)
	if !changed {
		for path, mod := range seen {
			if prev, ok := b.files[path]; !ok || !prev.Equal(mod) {
				changed = true
				break
			}
		}
	}
	b.files = seen
	return changed
}

func reloadable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
