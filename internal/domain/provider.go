package domain

import "strings"

// Department belongs to exactly one provider and is purely descriptive
type Department struct {
	Name    string
	Phone   string
	Address string
	Hours   string
}

// Provider represents a healthcare provider from the knowledge base.
// Providers are identified by display name and immutable once loaded.
type Provider struct {
	Name          string
	Certification string
	Specialty     string
	Departments   []Department
}

// MatchesName returns true if the provider name contains the query as a
// case-insensitive substring. An empty query matches everything.
func (p *Provider) MatchesName(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(query))
}

// MatchesSpecialty returns true if the provider specialty contains the query
// as a case-insensitive substring. An empty query matches everything.
func (p *Provider) MatchesSpecialty(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Specialty), strings.ToLower(query))
}
