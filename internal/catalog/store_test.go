package catalog

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

func TestBuildSnapshot_GroupsAndSorts(t *testing.T) {
	takenAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := BuildSnapshot([]domain.Component{
		{Name: "GPU A", Category: domain.CategoryGPU, PriceBDT: 30000, PerformanceScore: 60},
		{Name: "GPU B", Category: domain.CategoryGPU, PriceBDT: 25000, PerformanceScore: 80},
		{Name: "GPU C", Category: domain.CategoryGPU, PriceBDT: 20000, PerformanceScore: 60},
		{Name: "CPU A", Category: domain.CategoryCPU, PriceBDT: 15000, PerformanceScore: 70},
	}, takenAt)

	assert.Equal(t, takenAt, snap.TakenAt)
	assert.Equal(t, 4, snap.Total())
	assert.False(t, snap.Empty())

	gpus := snap.Category(domain.CategoryGPU)
	require.Len(t, gpus, 3)
	// Highest score first, ties broken by lower price.
	assert.Equal(t, "GPU B", gpus[0].Name)
	assert.Equal(t, "GPU C", gpus[1].Name)
	assert.Equal(t, "GPU A", gpus[2].Name)

	assert.Len(t, snap.Category(domain.CategoryCPU), 1)
	assert.Empty(t, snap.Category(domain.CategoryRAM))
}

func TestStore_CurrentBeforePublish(t *testing.T) {
	s := NewStore()
	snap := s.Current()
	require.NotNil(t, snap)
	assert.True(t, snap.Empty())
}

func TestStore_PublishSwapsWholeSnapshot(t *testing.T) {
	s := NewStore()
	first := BuildSnapshot([]domain.Component{
		{Name: "CPU A", Category: domain.CategoryCPU, PriceBDT: 15000, PerformanceScore: 70},
	}, time.Now())
	s.Publish(first)
	assert.Same(t, first, s.Current())

	second := BuildSnapshot(nil, time.Now())
	s.Publish(second)
	assert.Same(t, second, s.Current())
}

func TestStore_ConcurrentReadersSeeCompleteSnapshots(t *testing.T) {
	s := NewStore()
	snaps := []*domain.Snapshot{
		BuildSnapshot([]domain.Component{
			{Name: "CPU A", Category: domain.CategoryCPU, PriceBDT: 15000, PerformanceScore: 70},
		}, time.Now()),
		BuildSnapshot([]domain.Component{
			{Name: "CPU B", Category: domain.CategoryCPU, PriceBDT: 17000, PerformanceScore: 72},
			{Name: "GPU A", Category: domain.CategoryGPU, PriceBDT: 30000, PerformanceScore: 60},
		}, time.Now()),
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.Publish(snaps[j%2])
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				snap := s.Current()
				// A reader observes one of the published snapshots in
				// full, never a mix.
				total := snap.Total()
				assert.True(t, total == 0 || total == 1 || total == 2)
			}
		}()
	}
	wg.Wait()
}
