package main

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Data model
// ---------------------------------------------------------------------------

// threadEntry is one procfs directory: the id that named it, its comm and
// its kernel stack. All three fields are read from the same directory.
type threadEntry struct {
	pid   int
	comm  string // trailing newline removed, otherwise as read
	stack string // raw, used as the grouping key
}

type threadClass int

const (
	classUser threadClass = iota
	classKernel
)

func (c threadClass) String() string {
	if c == classKernel {
		return "kernel"
	}
	return "user"
}

// kthreaddPID is the kernel thread daemon; every kernel thread is its child.
const kthreaddPID = 2

func classify(pid, ppid int) threadClass {
	if ppid == kthreaddPID || pid == kthreaddPID {
		return classKernel
	}
	return classUser
}

func (o options) accepts(c threadClass) bool {
	if c == classKernel {
		return o.includeKernel
	}
	return o.includeUser
}

// ---------------------------------------------------------------------------
// Entry reader
// ---------------------------------------------------------------------------

// reader scans the procfs tree rooted at root on fs. Diagnostics go to log.
type reader struct {
	fs   afero.Fs
	root string
	opts options
	log  *zap.Logger
}

// readEntry reads the procfs entry at path. It returns false when path is
// not a numeric entry, belongs to an excluded class, or any of its files
// could not be read. stat is read first so filtered entries cost one read;
// stack, the largest file, is read last.
func (r *reader) readEntry(path string) (threadEntry, bool) {
	pid, ok := parsePID(filepath.Base(path))
	if !ok {
		return threadEntry{}, false
	}

	stat, ok := r.readFile(filepath.Join(path, "stat"))
	if !ok {
		return threadEntry{}, false
	}
	ppid, err := parseStatPPID(stat)
	if err != nil {
		r.log.Debug("skipping entry", zap.String("path", path), zap.Error(err))
		return threadEntry{}, false
	}
	if !r.opts.accepts(classify(pid, ppid)) {
		return threadEntry{}, false
	}

	comm, ok := r.readFile(filepath.Join(path, "comm"))
	if !ok {
		return threadEntry{}, false
	}
	stack, ok := r.readFile(filepath.Join(path, "stack"))
	if !ok {
		return threadEntry{}, false
	}

	return threadEntry{
		pid:   pid,
		comm:  strings.TrimSuffix(comm, "\n"),
		stack: stack,
	}, true
}

// readFile reads a whole pseudo-file, closing it before returning.
func (r *reader) readFile(path string) (string, bool) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		r.couldNotRead(path, err)
		return "", false
	}
	return string(data), true
}

func (r *reader) couldNotRead(path string, err error) {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	r.log.Warn("Could not read " + path + ": " + err.Error())
}
