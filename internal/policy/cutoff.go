package policy

import (
	"strings"

	"jobsim-assessment-service/internal/domain"
)

// companyBase holds per-company base cutoffs. Unknown companies fall back to
// defaultBase.
var companyBase = map[string]int{
	"tech company":      70,
	"global corp":       75,
	"startup hub":       65,
	"innovation labs":   72,
	"enterprise co":     78,
	"digital solutions": 68,
}

const defaultBase = 70

// ComputeCutoff derives the passing percentage for one attempt. The result is
// intentionally not clamped to 100: stacked modifiers can push it above, and
// callers treat such an attempt as unpassable rather than silently capping it.
func ComputeCutoff(company, role string, tier domain.PackageTier) int {
	base, ok := companyBase[strings.ToLower(strings.TrimSpace(company))]
	if !ok {
		base = defaultBase
	}

	switch tier {
	case domain.TierMid:
		base += 5
	case domain.TierPremium:
		base += 10
	}

	if strings.Contains(strings.ToLower(role), "engineer") {
		base += 5
	}
	return base
}
