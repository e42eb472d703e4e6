package catalog

import (
	"strings"

	"jobsim-assessment-service/internal/domain"
)

// roleGroup maps role-title keywords to the categories relevant for that role.
// Matching is a case-insensitive substring check against the raw job title.
type roleGroup struct {
	keywords   []string
	categories []string
}

var roleGroups = []roleGroup{
	{keywords: []string{"frontend", "front-end", "front end", "ui", "react"}, categories: []string{"frontend", "programming", "algorithms"}},
	{keywords: []string{"backend", "back-end", "back end", "api"}, categories: []string{"backend", "databases", "algorithms", "programming"}},
	{keywords: []string{"fullstack", "full-stack", "full stack"}, categories: []string{"frontend", "backend", "programming", "databases"}},
	{keywords: []string{"data", "analyst", "machine learning"}, categories: []string{"data", "databases", "algorithms", "programming"}},
	{keywords: []string{"product", "manager"}, categories: []string{"product", "general"}},
	{keywords: []string{"devops", "sre", "platform", "infrastructure"}, categories: []string{"devops", "cloud", "programming", "general"}},
	{keywords: []string{"mobile", "ios", "android"}, categories: []string{"mobile", "programming", "frontend"}},
}

var defaultCategories = []string{"programming", "general", "algorithms"}

// categoriesForRole resolves the relevant category set for a role title.
func categoriesForRole(role string) []string {
	title := strings.ToLower(role)
	for _, group := range roleGroups {
		for _, kw := range group.keywords {
			if strings.Contains(title, kw) {
				return group.categories
			}
		}
	}
	return defaultCategories
}

// difficultiesForTier returns the difficulty window for a package tier.
func difficultiesForTier(tier domain.PackageTier) map[domain.Difficulty]struct{} {
	switch tier {
	case domain.TierPremium:
		return map[domain.Difficulty]struct{}{domain.DifficultyMedium: {}, domain.DifficultyHard: {}}
	case domain.TierMid:
		return map[domain.Difficulty]struct{}{domain.DifficultyEasy: {}, domain.DifficultyMedium: {}, domain.DifficultyHard: {}}
	default:
		return map[domain.Difficulty]struct{}{domain.DifficultyEasy: {}, domain.DifficultyMedium: {}}
	}
}
