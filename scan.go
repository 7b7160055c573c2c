package main

import (
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// stackGroups maps raw stack text to the entries blocked there, in
// discovery order.
type stackGroups map[string][]threadEntry

func (g stackGroups) add(e threadEntry) {
	g[e.stack] = append(g[e.stack], e)
}

func (g stackGroups) entries() int {
	n := 0
	for _, es := range g {
		n += len(es)
	}
	return n
}

// baseDirs lists the directories whose children are scanned: the procfs
// root itself, or the task directory of each requested pid in order.
func baseDirs(root string, opts options) []string {
	if !opts.taskScope {
		return []string{root}
	}
	dirs := make([]string, 0, len(opts.taskPIDs))
	for _, pid := range opts.taskPIDs {
		dirs = append(dirs, filepath.Join(root, strconv.Itoa(pid), "task"))
	}
	return dirs
}

// readdirBatch bounds how many names are pulled from a base directory at once.
const readdirBatch = 256

// scan reads every base directory into one mapping. A base that cannot be
// read is diagnosed and skipped.
func (r *reader) scan() stackGroups {
	start := time.Now()
	groups := make(stackGroups)
	for _, base := range baseDirs(r.root, r.opts) {
		r.scanBase(base, groups)
	}
	r.log.Debug("scan complete",
		zap.Int("groups", len(groups)),
		zap.Int("entries", groups.entries()),
		zap.Duration("elapsed", time.Since(start)))
	return groups
}

// scanBase folds the entries under base into groups.
func (r *reader) scanBase(base string, groups stackGroups) {
	names := r.listNames(base)
	accepted := 0
	for _, name := range names {
		e, ok := r.readEntry(filepath.Join(base, name))
		if !ok {
			continue
		}
		groups.add(e)
		accepted++
	}

	r.log.Debug("scanned base directory",
		zap.String("base", base),
		zap.Int("children", len(names)),
		zap.Int("accepted", accepted),
		zap.Int("skipped", len(names)-accepted))
}

// listNames returns the child names of base, closing the directory before
// any child is read. A listing error is diagnosed and the names read so
// far are kept.
func (r *reader) listNames(base string) []string {
	dir, err := r.fs.Open(base)
	if err != nil {
		r.couldNotRead(base, err)
		return nil
	}
	defer dir.Close()

	var names []string
	for {
		batch, err := dir.Readdirnames(readdirBatch)
		names = append(names, batch...)
		if errors.Is(err, io.EOF) {
			return names
		}
		if err != nil {
			// The directory offset is unreliable after an error; keep what
			// was listed and stop.
			r.couldNotRead(base, err)
			return names
		}
		if len(batch) == 0 {
			return names
		}
	}
}
