// Package catalog publishes immutable catalog snapshots to the
// recommendation path. Refreshes build a whole new snapshot and swap the
// pointer atomically, so the engine always sees either the old or the new
// catalog in full and no lock sits on the hot path.
package catalog

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

type Store struct {
	snap atomic.Pointer[domain.Snapshot]
}

func NewStore() *Store {
	return &Store{}
}

// Current returns the latest published snapshot, or an empty snapshot when
// nothing has been published yet.
func (s *Store) Current() *domain.Snapshot {
	if snap := s.snap.Load(); snap != nil {
		return snap
	}
	return &domain.Snapshot{Components: map[domain.Category][]domain.Component{}}
}

// Publish swaps in a new snapshot. Safe to call concurrently with readers.
func (s *Store) Publish(snap *domain.Snapshot) {
	s.snap.Store(snap)
}

// BuildSnapshot groups components by category, ordered by performance score
// descending then price ascending, matching how the selector wants to scan
// candidates.
func BuildSnapshot(components []domain.Component, takenAt time.Time) *domain.Snapshot {
	byCat := make(map[domain.Category][]domain.Component)
	for _, c := range components {
		byCat[c.Category] = append(byCat[c.Category], c)
	}
	for _, comps := range byCat {
		sort.Slice(comps, func(i, j int) bool {
			if comps[i].PerformanceScore != comps[j].PerformanceScore {
				return comps[i].PerformanceScore > comps[j].PerformanceScore
			}
			if comps[i].PriceBDT != comps[j].PriceBDT {
				return comps[i].PriceBDT < comps[j].PriceBDT
			}
			return comps[i].Name < comps[j].Name
		})
	}
	return &domain.Snapshot{TakenAt: takenAt, Components: byCat}
}
