package report

import (
	"github.com/arloliu/benchfit/curvefit"
	"github.com/arloliu/benchfit/internal/hash"
)

// runGroup collects the runs sharing one identity (configuration name
// or family name). Groups are chained per hash bucket so a hash
// collision between distinct names cannot merge unrelated runs.
type runGroup struct {
	name string
	runs []Run
}

// groupIndex partitions runs by a name key in first-seen order.
type groupIndex struct {
	buckets map[uint64][]*runGroup
	order   []*runGroup
}

func newGroupIndex() *groupIndex {
	return &groupIndex{buckets: make(map[uint64][]*runGroup)}
}

func (g *groupIndex) add(name string, run Run) {
	id := hash.RunID(name)
	for _, grp := range g.buckets[id] {
		if grp.name == name {
			grp.runs = append(grp.runs, run)
			return
		}
	}

	grp := &runGroup{name: name, runs: []Run{run}}
	g.buckets[id] = append(g.buckets[id], grp)
	g.order = append(g.order, grp)
}

// Summarize derives every available summary row from a flat, possibly
// interleaved sequence of completed runs.
//
// The stream is partitioned by configuration name; every configuration
// with at least two runs contributes its ComputeStats rows. Runs
// tagged with a requested complexity are then partitioned by benchmark
// family, and every family measured at two or more distinct input
// sizes contributes its ComputeBigO rows. Failed runs still count as
// repetitions of their configuration but never participate in
// complexity fitting.
//
// Row order is deterministic: repetition statistics in first-seen
// configuration order, then complexity results in first-seen family
// order.
func Summarize(runs []Run) []Run {
	configs := newGroupIndex()
	families := newGroupIndex()

	for i := range runs {
		run := runs[i]
		configs.add(run.Name, run)
		if run.Complexity != curvefit.ONone && !run.Failed {
			families.add(run.FamilyName(), run)
		}
	}

	var results []Run

	for _, grp := range configs.order {
		if len(grp.runs) < 2 {
			continue
		}
		results = append(results, ComputeStats(grp.runs)...)
	}

	for _, grp := range families.order {
		if distinctSizes(grp.runs) < 2 {
			continue
		}
		results = append(results, ComputeBigO(grp.runs)...)
	}

	return results
}

// distinctSizes counts distinct ComplexityN tags among the runs.
func distinctSizes(runs []Run) int {
	seen := make(map[int]struct{}, len(runs))
	for i := range runs {
		seen[runs[i].ComplexityN] = struct{}{}
	}

	return len(seen)
}
