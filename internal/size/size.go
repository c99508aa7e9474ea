// Package size measures the disk footprint of cache entries. Fast mode
// sums filesystem allocation blocks (whole allocation units, the way du
// reports usage); accurate mode sums logical byte lengths, which is slower
// because every file must be visited for its exact size.
package size

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/lakemirror/cachesweep/internal/catalog"
)

// Mode selects the measurement strategy for the whole run.
type Mode int

const (
	// Fast rounds up to allocation-block granularity.
	Fast Mode = iota
	// Accurate counts exact logical bytes.
	Accurate
)

func (m Mode) String() string {
	if m == Accurate {
		return "accurate"
	}
	return "fast"
}

// Estimator measures entries with bounded concurrency. The zero value is
// usable: fast mode, default worker count.
type Estimator struct {
	Mode    Mode
	Workers int
}

const defaultWorkers = 8

func (e *Estimator) workers() int {
	if e.Workers <= 0 {
		return defaultWorkers
	}
	return e.Workers
}

// ─── Per-entry measurement ───────────────────────────────────────────────────

// Measure attaches a size to one entry. On failure the entry is marked
// unmeasured with size 0; it stays listed and deletable. ANDROID entries
// are measured as the sum of build-artifact directories beneath the
// project root (zero matches is a valid size of 0, not a failure).
func (e *Estimator) Measure(ent *catalog.Entry) {
	start := time.Now()

	var (
		n   int64
		err error
	)
	if ent.Category == catalog.Android {
		n, err = e.ProjectSize(ent.Path)
	} else {
		n, err = e.PathSize(ent.Path)
	}

	if err != nil {
		ent.Size = 0
		ent.Measured = false
		slog.Debug("measurement failed", "path", ent.Path, "mode", e.Mode, "error", err)
		return
	}
	ent.Size = n
	ent.Measured = true
	slog.Debug("measured", "path", ent.Path, "mode", e.Mode,
		"bytes", n, "elapsed", time.Since(start))
}

// MeasureAll measures every entry in the set, independent entries in
// parallel under a bounded semaphore. onDone, if non-nil, is invoked once
// per finished entry (from the measuring goroutine).
func (e *Estimator) MeasureAll(set []*catalog.Entry, onDone func(*catalog.Entry)) {
	sem := make(chan struct{}, e.workers())
	var wg sync.WaitGroup

	for _, ent := range set {
		wg.Add(1)
		go func(ent *catalog.Entry) {
			defer wg.Done()
			sem <- struct{}{}
			e.Measure(ent)
			<-sem
			if onDone != nil {
				onDone(ent)
			}
		}(ent)
	}
	wg.Wait()
}

// PathSize measures one path recursively. A failure on the root itself is
// an error (the entry becomes unmeasurable); failures below the root are
// skipped and the walk continues, so a permission-denied subdirectory
// costs its bytes, not the whole entry.
func (e *Estimator) PathSize(root string) (int64, error) {
	var total int64
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if e.Mode == Fast {
			// Directories consume allocation blocks too.
			if n, ok := allocatedBytes(path); ok {
				total += n
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ─── Build-artifact aggregation ──────────────────────────────────────────────

// FindBuildDirs locates every build-artifact directory beneath root. The
// root itself never matches, and the search does not descend into a match
// (nested build dirs are counted once, at the outermost level). Unreadable
// subtrees are skipped.
func FindBuildDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}
		if d.Name() == catalog.BuildDirName {
			dirs = append(dirs, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

// ProjectSize sums the sizes of all build-artifact directories beneath an
// Android project root, measuring matches in parallel. Each measurement is
// independent and read-only; the accumulator is reduced under a mutex. A
// root with zero matches yields 0. Only a failure to search the root at
// all is an error.
func (e *Estimator) ProjectSize(root string) (int64, error) {
	dirs, err := FindBuildDirs(root)
	if err != nil {
		return 0, err
	}

	sem := make(chan struct{}, e.workers())
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int64
	)
	for _, dir := range dirs {
		wg.Add(1)
		go func(dir string) {
			defer wg.Done()
			sem <- struct{}{}
			n, err := e.PathSize(dir)
			<-sem
			if err != nil {
				slog.Debug("build dir unmeasurable", "path", dir, "error", err)
				return
			}
			mu.Lock()
			total += n
			mu.Unlock()
		}(dir)
	}
	wg.Wait()
	return total, nil
}
