package coalesce

import (
	"context"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/status"
)

// Run drives the pairwise fixpoint of §4.4 over u: scan candidates from
// the end of the list backward; whenever a merge succeeds, splice the
// result in and restart the scan from the end. A full pass with no merge
// terminates the driver. Each successful merge strictly decreases the
// number of basic maps, so termination is immediate from that invariant.
// ctx is checked once per outer-loop iteration (one candidate basic map's
// scan against the rest), mirroring scheduler.Driver.Schedule's
// per-WCC cancellation point.
func Run(ctx context.Context, u *core.Union, opts ...Option) (*core.Union, error) {
	maps, err := dropEmpty(u.Maps)
	if err != nil {
		return nil, err
	}
	// isl_map_coalesce sorts every basic map's divs before comparing div
	// sets, so that a reordering of the same existentials still counts as
	// the same div set (supplemented from original_source/, SPEC_FULL.md).
	for _, m := range maps {
		m.SortDivs()
	}

	i := len(maps) - 1
	for i >= 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		mergedAt := -1
		for j := i - 1; j >= 0; j-- {
			if !maps[i].SameDivsAs(maps[j]) {
				// §4.4: differing div sets only combine when one is a
				// (sorted) prefix of the other, and then only via a
				// one-sided subsumption test — no wrapping rule applies
				// across mismatched existentials.
				kept, ok, err := subsumeAcrossDivs(maps[i], maps[j])
				if err != nil {
					return nil, err
				}
				if ok {
					maps[j] = kept
					mergedAt = j
					break
				}
				continue
			}
			merged, ok, err := TryMerge(maps[i], maps[j], opts...)
			if err != nil {
				return nil, err
			}
			if ok {
				maps[j] = merged
				mergedAt = j
				break
			}
		}
		if mergedAt >= 0 {
			maps = append(maps[:i], maps[i+1:]...)
			i = len(maps) - 1
		} else {
			i--
		}
	}
	return core.NewUnion(u.Space, maps...), nil
}

func dropEmpty(in []*core.BasicMap) ([]*core.BasicMap, error) {
	out := make([]*core.BasicMap, 0, len(in))
	for _, m := range in {
		tb, err := status.BuildTableau(m)
		if err != nil {
			return nil, err
		}
		empty, err := tb.IsEmpty()
		if err != nil {
			return nil, err
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out, nil
}
