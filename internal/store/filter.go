package store

import "strings"

// Filter returns the subsequence of items for which at least one searchable
// field contains the query as a case-insensitive substring. An empty query
// returns the input unchanged. Order is preserved; fields reported as empty
// strings are skipped, so optional fields never have to be special-cased by
// the caller.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}

	needle := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if f == "" {
				continue
			}
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
