package domain

import (
	"strings"

	"github.com/iliyamo/travel-package-booking/internal/model"
)

// PackageFilter holds the three catalog filter predicates. All ranges
// are inclusive. A filter where lo > hi yields an empty result; sliders
// cannot produce that under normal use but defensive callers must not
// crash on it. ActiveOnly restricts results to is_active packages and
// is set for every non-admin view.
type PackageFilter struct {
	Destination   string // case-insensitive substring; empty matches all
	MinDuration   uint32
	MaxDuration   uint32
	MinPriceCents uint32
	MaxPriceCents uint32
	ActiveOnly    bool
}

// FilterPackages returns the subset of pkgs satisfying every predicate
// conjunctively. It is pure and deterministic: the same inputs always
// produce the same output, so callers recompute it on every filter or
// data change instead of caching derived lists.
func FilterPackages(pkgs []model.TravelPackage, f PackageFilter) []model.TravelPackage {
	needle := strings.ToLower(strings.TrimSpace(f.Destination))
	out := make([]model.TravelPackage, 0, len(pkgs))
	for _, p := range pkgs {
		if f.ActiveOnly && !p.IsActive {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Destination), needle) {
			continue
		}
		if p.DurationDays < f.MinDuration || p.DurationDays > f.MaxDuration {
			continue
		}
		if p.PriceCents < f.MinPriceCents || p.PriceCents > f.MaxPriceCents {
			continue
		}
		out = append(out, p)
	}
	return out
}
