package analysis

import (
	"cmp"
	"slices"
)

// Group is the set of rows sharing one value of the grouping column.
// Rows keep their source order.
type Group[K cmp.Ordered, R any] struct {
	Key  K
	Rows []R
}

// GroupBy partitions rows by key. Groups are returned in ascending key order;
// every row lands in exactly one group.
func GroupBy[K cmp.Ordered, R any](rows []R, key func(R) K) []Group[K, R] {
	byKey := make(map[K][]R)
	for _, r := range rows {
		k := key(r)
		byKey[k] = append(byKey[k], r)
	}
	keys := make([]K, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	groups := make([]Group[K, R], 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group[K, R]{Key: k, Rows: byKey[k]})
	}
	return groups
}

// Keys returns the group keys in order.
func Keys[K cmp.Ordered, R any](groups []Group[K, R]) []K {
	keys := make([]K, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}

// Flatten concatenates the rows of all groups.
func Flatten[K cmp.Ordered, R any](groups []Group[K, R]) []R {
	var rows []R
	for _, g := range groups {
		rows = append(rows, g.Rows...)
	}
	return rows
}
