package topics

import "strings"

// maxTopics bounds the suggestion list shown on the failure summary.
const maxTopics = 4

// categoryTopics maps a missed question category to study suggestions.
var categoryTopics = map[string][]string{
	"frontend":   {"CSS layout and rendering", "React state management"},
	"backend":    {"HTTP semantics and API design", "Queueing and resilience patterns"},
	"programming": {"Language fundamentals", "Concurrency basics"},
	"algorithms": {"Data structures", "Complexity analysis"},
	"databases":  {"SQL and indexing", "Transaction isolation"},
	"devops":     {"CI/CD pipelines", "Kubernetes operations"},
	"cloud":      {"Cloud storage models", "Autoscaling strategies"},
	"data":       {"Statistics refresher", "Stream processing"},
	"mobile":     {"Mobile app lifecycle", "Offline-first design"},
	"product":    {"Experiment design", "Product metrics"},
	"general":    {"Engineering practices", "System design overview"},
}

// roleDefaults supplies padding topics when too few categories were missed.
// Ordered so the first matching keyword wins deterministically.
var roleDefaults = []struct {
	keyword string
	topics  []string
}{
	{"frontend", []string{"JavaScript deep dive", "Browser performance", "Accessibility"}},
	{"backend", []string{"Distributed systems", "Database tuning", "API versioning"}},
	{"data", []string{"Machine learning foundations", "Data modeling", "ETL pipelines"}},
	{"devops", []string{"Observability", "Infrastructure as code", "Incident response"}},
	{"mobile", []string{"Native platform APIs", "App store delivery", "Mobile testing"}},
	{"product", []string{"User research", "Roadmapping", "Stakeholder communication"}},
}

// genericDefaults is the Software Engineer fallback list.
var genericDefaults = []string{"Data structures", "System design overview", "Testing discipline", "Clean code practices"}

// Recommend maps missed categories to at most four study topics. The missed
// slice is expected in first-seen order, which keeps the output deterministic.
// Role defaults pad the list when fewer than four topics accumulate.
func Recommend(missed []string, role string) []string {
	out := make([]string, 0, maxTopics)
	seen := make(map[string]struct{})

	add := func(topic string) {
		if len(out) >= maxTopics {
			return
		}
		if _, dup := seen[topic]; dup {
			return
		}
		seen[topic] = struct{}{}
		out = append(out, topic)
	}

	for _, category := range missed {
		for _, topic := range categoryTopics[strings.ToLower(category)] {
			add(topic)
		}
	}

	if len(out) < maxTopics {
		for _, topic := range defaultsForRole(role) {
			add(topic)
		}
	}
	return out
}

func defaultsForRole(role string) []string {
	title := strings.ToLower(role)
	for _, entry := range roleDefaults {
		if strings.Contains(title, entry.keyword) {
			return entry.topics
		}
	}
	return genericDefaults
}
