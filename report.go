package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

type stackGroup struct {
	stack   string
	entries []threadEntry
}

// computeGroups orders groups by descending population. The order of
// equal-sized groups follows map iteration and is unspecified.
func computeGroups(groups stackGroups) []stackGroup {
	ranked := make([]stackGroup, 0, len(groups))
	for stack, entries := range groups {
		ranked = append(ranked, stackGroup{stack, entries})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return len(ranked[i].entries) > len(ranked[j].entries) })
	return ranked
}

// cmdReport writes every group as its size, its thread-name histogram and
// the stack text. The stack ends with its own newline, so one more newline
// leaves a blank line between groups.
func cmdReport(w io.Writer, groups stackGroups) error {
	bw := bufio.NewWriter(w)
	for _, g := range computeGroups(groups) {
		fmt.Fprintf(bw, "%d\n%s\n%s\n", len(g.entries), formatThreads(computeThreads(g.entries)), g.stack)
	}
	return bw.Flush()
}
