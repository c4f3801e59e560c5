package repocache

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/skillkit/pkg/fileutil"
)

// stateFileName is the bookkeeping record written into each cache entry.
const stateFileName = "state.toml"

// State records the last successful synchronization of one cache entry.
type State struct {
	URL      string    `toml:"url"`
	Ref      string    `toml:"ref,omitempty"`
	SyncedAt time.Time `toml:"synced_at"`
}

// Entry pairs a cache directory with its recorded state.
type Entry struct {
	Dir string
	State
}

// writeState records (url, ref, now) in the entry's state file.
func (c *Cache) writeState(dir, url, ref string) error {
	st := State{
		URL:      url,
		Ref:      ref,
		SyncedAt: time.Now().UTC(),
	}
	return fileutil.AtomicWriteTOML(filepath.Join(dir, stateFileName), st)
}

// Entries lists all cache entries with a readable state record, sorted
// by URL then ref. Directories without one (interrupted synchronization,
// foreign files) are skipped.
func (c *Cache) Entries() ([]Entry, error) {
	dirents, err := os.ReadDir(c.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	for _, de := range dirents {
		if !de.IsDir() {
			continue
		}
		dir := filepath.Join(c.root, de.Name())
		data, err := os.ReadFile(filepath.Join(dir, stateFileName))
		if err != nil {
			c.logger.Debug("skipping cache entry without state", "dir", dir)
			continue
		}
		var st State
		if err := toml.Unmarshal(data, &st); err != nil {
			c.logger.Debug("skipping cache entry with unreadable state", "dir", dir, "error", err)
			continue
		}
		entries = append(entries, Entry{Dir: dir, State: st})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].URL != entries[j].URL {
			return entries[i].URL < entries[j].URL
		}
		return entries[i].Ref < entries[j].Ref
	})
	return entries, nil
}
