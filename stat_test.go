package main

import (
	"errors"
	"testing"
)

func TestParseStatPPID(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"101 (a) S 50 ...", 50},
		{"1 (systemd) S 0 1 1 0 -1 4194560 51352\n", 0},
		{"7 (kworker/0:1-events) I 2 0 0 0 -1\n", 2},
		{"42 (a) b) S 7 42 42", 7},
		{"42 (my prog) R 9 42", 9},
		{"42 (x) (y)) S 11 1", 11},
		{"42 (line\nbreak) S 12 1", 12},
		{"42 (a) S 3\n", 3},
	}
	for _, tt := range tests {
		got, err := parseStatPPID(tt.line)
		if err != nil {
			t.Errorf("parseStatPPID(%q) error: %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseStatPPID(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestParseStatPPIDErrors(t *testing.T) {
	tests := []string{
		"",
		"42 (noclose S 1 2",
		"42 (a) S",
		"42 (a)",
		"42 (a) S x 1",
		"42 (a) S -4 1",
		"42 (a)  S 1 1", // double space shifts the fields
	}
	for _, line := range tests {
		_, err := parseStatPPID(line)
		var pe *statParseError
		if !errors.As(err, &pe) {
			t.Errorf("parseStatPPID(%q) = %v, want statParseError", line, err)
		}
	}
}
