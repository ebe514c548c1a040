package engine

import (
	"fmt"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// FilterCompatible returns the subsequence of candidates that violate no
// compatibility rule against any component already in the partial build.
// Candidates with missing attribute data fail closed: an unknown socket or
// wattage is treated as incompatible, never as a pass.
func FilterCompatible(candidates []domain.Component, partial map[domain.Category]domain.Component) []domain.Component {
	out := make([]domain.Component, 0, len(candidates))
	for _, cand := range candidates {
		if len(ruleViolations(cand, partial)) == 0 {
			out = append(out, cand)
		}
	}
	return out
}

// ruleViolations evaluates every rule whose scope covers the candidate's
// category and a category present in the partial build. Each rule is checked
// independently; the result does not depend on rule order.
func ruleViolations(cand domain.Component, partial map[domain.Category]domain.Component) []string {
	var violated []string
	for _, r := range rules {
		var a, b domain.Component
		switch cand.Category {
		case r.A:
			other, ok := partial[r.B]
			if !ok {
				continue
			}
			a, b = cand, other
		case r.B:
			other, ok := partial[r.A]
			if !ok {
				continue
			}
			a, b = other, cand
		default:
			continue
		}
		if !r.Compatible(a, b) {
			violated = append(violated, fmt.Sprintf("%s: %s", r.Name, r.Describe(a, b)))
		}
	}
	return violated
}

// verifyBuild re-checks every chosen pair against the full rule table. The
// selector filters per pick, so violations here indicate a resolver bug
// rather than a bad input.
func verifyBuild(components map[domain.Category]domain.Component) []string {
	var violated []string
	for _, r := range rules {
		a, okA := components[r.A]
		b, okB := components[r.B]
		if !okA || !okB {
			continue
		}
		if !r.Compatible(a, b) {
			violated = append(violated, fmt.Sprintf("%s: %s", r.Name, r.Describe(a, b)))
		}
	}
	return violated
}
