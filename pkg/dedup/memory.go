package dedup

import "iter"

// Memory yields candidates from stream, dropping repeats until maxSeen
// distinct values have been emitted. After that every remaining candidate is
// passed through as-is. A maxSeen of zero or less disables deduplication.
func Memory(stream iter.Seq[string], maxSeen int) iter.Seq[string] {
	return func(yield func(string) bool) {
		capped := maxSeen <= 0
		var seen map[string]struct{}
		if !capped {
			seen = make(map[string]struct{}, min(maxSeen, 1<<16))
		}

		for s := range stream {
			if !capped {
				if _, ok := seen[s]; ok {
					continue
				}
				seen[s] = struct{}{}
				if len(seen) >= maxSeen {
					// The set is no longer consulted; release it.
					capped = true
					seen = nil
				}
			}
			if !yield(s) {
				return
			}
		}
	}
}
