package client

import (
	"strings"

	"web3dir/models"
)

// Filter returns the projects whose link contains term (case-insensitive)
// and which carry at least one of the active tags. An empty term matches
// every link; an empty active set matches every project. Order is kept.
func Filter(projects []models.Project, term string, active TagSet) []models.Project {
	needle := strings.ToLower(term)

	out := []models.Project{}
	for _, p := range projects {
		if matchesSearch(p, needle) && matchesTags(p, active) {
			out = append(out, p)
		}
	}
	return out
}

func matchesSearch(p models.Project, needle string) bool {
	return strings.Contains(strings.ToLower(p.Link), needle)
}

func matchesTags(p models.Project, active TagSet) bool {
	if active.Len() == 0 {
		return true
	}
	for _, tag := range p.Tags {
		if active.Has(tag) {
			return true
		}
	}
	return false
}
