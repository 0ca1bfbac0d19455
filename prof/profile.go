// Package prof is a small in-process timing collector used by the
// command-line tools to report where verification time goes.
package prof

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

var (
	mu    sync.Mutex
	total = map[string]time.Duration{}
	count = map[string]int{}
)

// Track logs the duration since start under the given label. Use with
// defer: defer prof.Track(time.Now(), "hash-to-point").
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	total[label] += elapsed
	count[label]++
	mu.Unlock()
}

// WriteSummary prints per-label totals, call counts and means, then clears
// the collected data.
func WriteSummary(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	labels := make([]string, 0, len(total))
	for l := range total {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		n := count[l]
		fmt.Fprintf(w, "%-24s total=%v calls=%d mean=%v\n", l, total[l], n, total[l]/time.Duration(n))
	}
	total = map[string]time.Duration{}
	count = map[string]int{}
}
