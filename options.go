package main

import (
	"fmt"
	"strconv"
)

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

type options struct {
	includeKernel bool
	includeUser   bool
	taskScope     bool
	taskPIDs      []int // only meaningful when taskScope is set
}

func defaultOptions() options {
	return options{includeKernel: true, includeUser: true}
}

// usageError is returned for anything wrong with the command line. The
// caller prints the usage banner and exits with status 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error {
	return &usageError{msg: fmt.Sprintf(format, a...)}
}

// parseOptions parses the positional arguments, without the program name:
// an optional flag cluster drawn from {k, t, u}, then pids when t is given.
func parseOptions(args []string) (options, error) {
	opts := defaultOptions()
	if len(args) == 0 {
		return opts, nil
	}

	cluster := args[0]
	if cluster == "" {
		return opts, usagef("empty flag cluster")
	}
	for _, c := range cluster {
		switch c {
		case 'k':
			opts.includeUser = false
		case 'u':
			opts.includeKernel = false
		case 't':
			opts.taskScope = true
		default:
			return opts, usagef("unknown flag %q in %q", c, cluster)
		}
	}

	if !opts.taskScope {
		return opts, nil
	}
	if len(args) < 2 {
		return opts, usagef("t requires at least one PID")
	}
	for _, a := range args[1:] {
		pid, ok := parsePID(a)
		if !ok {
			return opts, usagef("invalid PID %q: must be a positive integer", a)
		}
		opts.taskPIDs = append(opts.taskPIDs, pid)
	}
	return opts, nil
}

// parsePID accepts plain positive decimal integers only: no sign, no spaces.
func parsePID(s string) (int, bool) {
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil || n == 0 {
		return 0, false
	}
	return int(n), true
}
