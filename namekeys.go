package tmx

import "strconv"

// assignUniqueKeys maps a list of raw element names to unique lookup keys.
// The first occurrence of a name keeps it unchanged; each later occurrence
// gets the next unused "_1", "_2", ... suffix, in encounter order. Keys are
// assigned in a single pass over the already collected names so the result
// is deterministic regardless of how the elements were produced.
func assignUniqueKeys(names []string) []string {
	keys := make([]string, len(names))
	used := make(map[string]bool, len(names))
	next := make(map[string]int, len(names))

	for i, name := range names {
		key := name
		for used[key] {
			next[name]++
			key = name + "_" + strconv.Itoa(next[name])
		}
		used[key] = true
		keys[i] = key
	}
	return keys
}
