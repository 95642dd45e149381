// Package types provides type definitions for structured data used throughout the job-fit analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// CandidateProfile represents structured CV data supplied by the caller.
// The core treats it as read-only.
type CandidateProfile struct {
	Summary    string       `json:"summary,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Skills     string       `json:"skills,omitempty"`
	Projects   string       `json:"projects,omitempty"`
}

// Experience represents a single employment entry in a candidate profile.
type Experience struct {
	Employer    string `json:"employer,omitempty"`
	Role        string `json:"role,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education represents a single education entry in a candidate profile.
type Education struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// AllText concatenates every free-text field of the profile, separated by
// newlines. Used for seniority scanning and ATS coverage checks.
func (p *CandidateProfile) AllText() string {
	var sb strings.Builder
	sb.WriteString(p.Summary)
	for _, exp := range p.Experience {
		sb.WriteString("\n")
		sb.WriteString(exp.Role)
		sb.WriteString("\n")
		sb.WriteString(exp.Description)
	}
	for _, edu := range p.Education {
		sb.WriteString("\n")
		sb.WriteString(edu.Degree)
		sb.WriteString("\n")
		sb.WriteString(edu.Field)
	}
	sb.WriteString("\n")
	sb.WriteString(p.Skills)
	sb.WriteString("\n")
	sb.WriteString(p.Projects)
	return sb.String()
}

// IsEmpty reports whether the profile carries no usable content at all.
func (p *CandidateProfile) IsEmpty() bool {
	return strings.TrimSpace(p.Summary) == "" &&
		len(p.Experience) == 0 &&
		len(p.Education) == 0 &&
		strings.TrimSpace(p.Skills) == "" &&
		strings.TrimSpace(p.Projects) == ""
}
