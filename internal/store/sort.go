package store

import "sort"

// sortStableDesc stable-sorts items by key, largest first.
func sortStableDesc[T any](items []T, key func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) > key(items[j])
	})
}

// sortStableAsc stable-sorts items by key, smallest first.
func sortStableAsc[T any](items []T, key func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})
}
