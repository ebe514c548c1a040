// Package engine implements the build recommendation core: budget
// allocation, compatibility filtering, greedy per-category selection,
// scoring and multi-budget comparison. The engine is stateless between
// calls and only ever reads the snapshot it is handed, so concurrent
// requests against the same snapshot are safe.
package engine

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// ScoringWeights are the coefficients of the value formula. The exact mix
// is a tuning knob, so it ships as configuration rather than constants.
type ScoringWeights struct {
	Performance float64 // weight of the 0-100 performance score
	Efficiency  float64 // weight of the price-efficiency term
	BrandBonus  float64 // soft boost/penalty for preferred/avoided brands
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{Performance: 0.7, Efficiency: 0.3, BrandBonus: 5}
}

// maxReallocPasses bounds the shortfall reallocation loop in the selector.
const maxReallocPasses = 2

type Engine struct {
	scoring       ScoringWeights
	maxCatalogAge time.Duration
	log           *zap.Logger
	now           func() time.Time
}

type Options struct {
	Scoring       ScoringWeights
	MaxCatalogAge time.Duration // snapshots older than this get a stale advisory
	Logger        *zap.Logger
}

func New(opts Options) *Engine {
	if opts.Scoring == (ScoringWeights{}) {
		opts.Scoring = DefaultScoringWeights()
	}
	if opts.MaxCatalogAge == 0 {
		opts.MaxCatalogAge = 24 * time.Hour
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Engine{
		scoring:       opts.Scoring,
		maxCatalogAge: opts.MaxCatalogAge,
		log:           opts.Logger,
		now:           time.Now,
	}
}

// Recommend produces one build for the request against the given snapshot.
func (e *Engine) Recommend(snapshot *domain.Snapshot, req domain.BuildRequest) (*domain.Build, error) {
	profile, ok := domain.ProfileFor(req.Purpose)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPurpose, req.Purpose)
	}

	alloc, err := Allocate(req.Budget, profile)
	if err != nil {
		return nil, err
	}

	prefs := newBrandPrefs(req.PreferBrands, req.AvoidBrands)
	build, catScores, err := e.selectBuild(snapshot, profile, req.Budget, alloc, prefs)
	if err != nil {
		return nil, err
	}

	e.scoreAndExplain(build, profile, catScores, prefs)

	now := e.now()
	build.GeneratedAt = now.UTC()
	if snapshot.Age(now) > e.maxCatalogAge {
		build.StaleCatalog = true
	}
	return build, nil
}

// brandPrefs is the soft brand filter: it nudges value scores, it never
// excludes a candidate.
type brandPrefs struct {
	prefer map[string]bool
	avoid  map[string]bool
}

func newBrandPrefs(prefer, avoid []string) brandPrefs {
	p := brandPrefs{prefer: map[string]bool{}, avoid: map[string]bool{}}
	for _, b := range prefer {
		p.prefer[strings.ToLower(b)] = true
	}
	for _, b := range avoid {
		p.avoid[strings.ToLower(b)] = true
	}
	return p
}

func (p brandPrefs) prefers(brand string) bool { return p.prefer[strings.ToLower(brand)] }
func (p brandPrefs) avoids(brand string) bool  { return p.avoid[strings.ToLower(brand)] }
