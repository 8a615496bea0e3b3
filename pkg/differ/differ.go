// Package differ matches public API items across two snapshot versions and
// computes the structural changes between matched signatures.
package differ

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"semvet/pkg/api"
)

// Diff compares two validated snapshots and returns one ItemDiff per item
// that changed, sorted ascending by path. Items whose signatures are
// identical produce no entry.
//
// Matched pairs are diffed concurrently; no pair's diff depends on any other,
// so the only ordering requirement is the final sort.
func Diff(old, new *api.Snapshot) []ItemDiff {
	match := Match(old, new)

	diffs := make([]ItemDiff, 0, len(match.Removed)+len(match.Added)+len(match.Matched))

	for _, item := range match.Removed {
		diffs = append(diffs, ItemDiff{
			Path:    item.Path,
			Changes: []Change{{Kind: ChangeItemRemoved, Path: item.Path, Loc: item.Location}},
		})
	}

	for _, item := range match.Added {
		diffs = append(diffs, ItemDiff{
			Path:    item.Path,
			Changes: []Change{{Kind: ChangeItemAdded, Path: item.Path, Loc: item.Location}},
		})
	}

	matched := make([][]Change, len(match.Matched))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, pair := range match.Matched {
		i, pair := i, pair
		g.Go(func() error {
			matched[i] = CompareSignatures(pair)
			return nil
		})
	}

	// Workers never return errors; Wait only fences the writes above.
	_ = g.Wait()

	for i, changes := range matched {
		if len(changes) == 0 {
			continue
		}
		diffs = append(diffs, ItemDiff{Path: match.Matched[i].Old.Path, Changes: changes})
	}

	sort.Slice(diffs, func(i, j int) bool { return diffs[i].Path < diffs[j].Path })

	return diffs
}
