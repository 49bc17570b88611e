// Package lookup finds the positions of query strings among a vector's
// names or one dimension's dimnames.
package lookup

import (
	"strings"

	"rvec/types"
)

// Options controls how unmatched queries are reported
type Options struct {
	// NotFoundStart is the last position already in use; the first
	// unmatched query gets NotFoundStart+1
	NotFoundStart int
	// Exact disables unique-prefix matching
	Exact bool
	// UseNAForNotFound reports unmatched queries as types.IntNA
	UseNAForNotFound bool
}

// Find returns the 1-based position of each query in target.
//
// The first exact match wins. Without Exact, a query that is a prefix of
// exactly one target entry matches it; a prefix of several matches nothing.
// NA and empty queries never match and NA targets are never matched.
// Unmatched queries get NA or a fresh position after NotFoundStart, repeated
// unmatched strings sharing the same fresh position.
func Find(target, query []string, opts Options) []int {
	var result []int
	if UseHash(len(target), len(query)) {
		result = findHashed(target, query, opts.Exact)
	} else {
		result = findScan(target, query, opts.Exact)
	}
	assignNotFound(query, result, opts)
	return result
}

// UseHash reports whether building a map over target is cheaper than
// scanning it once per query
func UseHash(targetLen, queryLen int) bool {
	return targetLen*queryLen > targetLen*10+10+queryLen*2
}

func matchable(s string) bool {
	return s != "" && !types.IsStringNA(s)
}

func findScan(target, query []string, exact bool) []int {
	result := make([]int, len(query))
	for i, q := range query {
		if !matchable(q) {
			continue
		}
		result[i] = scanOne(target, q, exact)
	}
	return result
}

// scanOne returns the 1-based position of q, or 0 when there is none
func scanOne(target []string, q string, exact bool) int {
	for j, t := range target {
		if t == q {
			return j + 1
		}
	}
	if exact {
		return 0
	}
	return uniquePrefix(target, q)
}

func uniquePrefix(target []string, q string) int {
	found := 0
	for j, t := range target {
		if types.IsStringNA(t) || !strings.HasPrefix(t, q) {
			continue
		}
		if found != 0 {
			return 0
		}
		found = j + 1
	}
	return found
}

func findHashed(target, query []string, exact bool) []int {
	index := make(map[string]int, len(target))
	for j, t := range target {
		if !matchable(t) {
			continue
		}
		if _, seen := index[t]; !seen {
			index[t] = j + 1
		}
	}
	result := make([]int, len(query))
	for i, q := range query {
		if !matchable(q) {
			continue
		}
		if pos, ok := index[q]; ok {
			result[i] = pos
		} else if !exact {
			result[i] = uniquePrefix(target, q)
		}
	}
	return result
}

// assignNotFound replaces the zero entries of result
func assignNotFound(query []string, result []int, opts Options) {
	next := opts.NotFoundStart
	var fresh map[string]int
	for i, pos := range result {
		if pos != 0 {
			continue
		}
		if opts.UseNAForNotFound {
			result[i] = types.IntNA
			continue
		}
		q := query[i]
		if types.IsStringNA(q) {
			next++
			result[i] = next
			continue
		}
		if fresh == nil {
			fresh = make(map[string]int)
		}
		if p, ok := fresh[q]; ok {
			result[i] = p
			continue
		}
		next++
		fresh[q] = next
		result[i] = next
	}
}
