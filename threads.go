package main

import (
	"sort"
	"strconv"
	"strings"
)

// threadNames is one row of a group's thread-name histogram.
type threadNames struct {
	comm string
	pids []int // in the group's insertion order
}

// computeThreads groups entries by comm, most frequent first. Names with
// equal counts keep the order they were first seen in.
func computeThreads(entries []threadEntry) []threadNames {
	index := make(map[string]int)
	var ranked []threadNames

	for _, e := range entries {
		i, ok := index[e.comm]
		if !ok {
			i = len(ranked)
			index[e.comm] = i
			ranked = append(ranked, threadNames{comm: e.comm})
		}
		ranked[i].pids = append(ranked[i].pids, e.pid)
	}

	sort.SliceStable(ranked, func(i, j int) bool { return len(ranked[i].pids) > len(ranked[j].pids) })
	return ranked
}

// formatThreads renders "(name [pid, pid]), " per row. Names are trimmed
// here and nowhere else.
func formatThreads(ranked []threadNames) string {
	var b strings.Builder
	for _, tn := range ranked {
		b.WriteByte('(')
		b.WriteString(strings.TrimSpace(tn.comm))
		b.WriteString(" [")
		for i, pid := range tn.pids {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(pid))
		}
		b.WriteString("]), ")
	}
	return b.String()
}
