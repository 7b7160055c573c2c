package main

import (
	"fmt"
	"strconv"
	"strings"
)

// statParseError reports a <pid>/stat line the ppid could not be taken from.
type statParseError struct {
	Line   string
	Reason string
}

func (e *statParseError) Error() string {
	return fmt.Sprintf("malformed stat line %q: %s", e.Line, e.Reason)
}

// parseStatPPID returns the parent pid from a procfs stat line.
//
// The comm field is wrapped in parentheses and may itself hold spaces,
// newlines and ')' characters, so the last ')' is the only reliable anchor.
// After it the fields are " state ppid ...", split on single spaces.
func parseStatPPID(line string) (int, error) {
	if strings.LastIndexByte(line, ')') < 0 {
		return 0, &statParseError{Line: line, Reason: "no closing parenthesis"}
	}
	segments := strings.Split(line, ")")
	tokens := strings.Split(segments[len(segments)-1], " ")
	if len(tokens) < 3 {
		return 0, &statParseError{Line: line, Reason: fmt.Sprintf("expected at least 3 fields after comm, got %d", len(tokens))}
	}
	ppid, err := strconv.Atoi(strings.TrimRight(tokens[2], "\n"))
	if err != nil {
		return 0, &statParseError{Line: line, Reason: fmt.Sprintf("ppid: %v", err)}
	}
	if ppid < 0 {
		return 0, &statParseError{Line: line, Reason: fmt.Sprintf("negative ppid %d", ppid)}
	}
	return ppid, nil
}
