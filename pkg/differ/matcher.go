package differ

import (
	"sort"

	"semvet/pkg/api"
)

// MatchedPair joins an item's old and new declarations by path.
type MatchedPair struct {
	Old *api.Item
	New *api.Item
}

// MatchResult partitions the two snapshots' paths into removed, added and
// matched groups. Every path lands in exactly one group, and each group is
// sorted ascending by path so downstream output is reproducible.
type MatchResult struct {
	Removed []*api.Item
	Added   []*api.Item
	Matched []MatchedPair
}

// Match pairs old and new items by path equality. No rename detection: a
// renamed item shows up as one removal plus one addition.
func Match(old, new *api.Snapshot) *MatchResult {
	oldItems := old.ItemsByPath()
	newItems := new.ItemsByPath()

	result := &MatchResult{}

	for path, oldItem := range oldItems {
		if newItem, ok := newItems[path]; ok {
			result.Matched = append(result.Matched, MatchedPair{Old: oldItem, New: newItem})
		} else {
			result.Removed = append(result.Removed, oldItem)
		}
	}

	for path, newItem := range newItems {
		if _, ok := oldItems[path]; !ok {
			result.Added = append(result.Added, newItem)
		}
	}

	sort.Slice(result.Removed, func(i, j int) bool { return result.Removed[i].Path < result.Removed[j].Path })
	sort.Slice(result.Added, func(i, j int) bool { return result.Added[i].Path < result.Added[j].Path })
	sort.Slice(result.Matched, func(i, j int) bool { return result.Matched[i].Old.Path < result.Matched[j].Old.Path })

	return result
}
