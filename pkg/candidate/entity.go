package candidate

import (
	"strings"
	"time"
)

// Name: обе части всегда строки (без null).
type Name struct {
	First  string `json:"first"`
	Family string `json:"family"`
}

// Full returns "First Family" without dangling spaces.
func (n Name) Full() string {
	return strings.TrimSpace(n.First + " " + n.Family)
}

// DateRange: период работы. End == nil означает "по настоящее время" или неизвестную дату.
type DateRange struct {
	Start     string  `json:"start"`
	End       *string `json:"end"`
	IsCurrent bool    `json:"isCurrent"`
}

type WorkExperience struct {
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	DateRange    DateRange `json:"dateRange"`
	Description  string    `json:"description"`
}

type Education struct {
	Accreditation string `json:"accreditation"`
	Level         string `json:"level"`
}

type Skill struct {
	Name string `json:"name"`
}

// Candidate is the normalized, vendor-independent resume.
type Candidate struct {
	Name                 Name             `json:"name"`
	Emails               []string         `json:"emails"`
	Phones               []string         `json:"phones"`
	Summary              string           `json:"summary"`
	TotalYearsExperience float64          `json:"totalYearsExperience"`
	WorkExperience       []WorkExperience `json:"workExperience"`
	Education            []Education      `json:"education"`
	Skills               []Skill          `json:"skills"`
}

// PrimaryEmail returns the first email or "" when there is none.
func (c Candidate) PrimaryEmail() string {
	if len(c.Emails) == 0 {
		return ""
	}
	return c.Emails[0]
}

// PrimaryPhone returns the first phone or "" when there is none.
func (c Candidate) PrimaryPhone() string {
	if len(c.Phones) == 0 {
		return ""
	}
	return c.Phones[0]
}

// DisplaySkills drops blank skill names. Stored data keeps them as extracted.
func (c Candidate) DisplaySkills() []Skill {
	out := make([]Skill, 0, len(c.Skills))
	for _, s := range c.Skills {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Record is a stored candidate card. Only Stage changes after creation.
type Record struct {
	ID             int64       `json:"id"`
	Candidate      Candidate   `json:"candidate"`
	AppliedRole    string      `json:"appliedRole"`
	Evaluation     *Evaluation `json:"evaluation,omitempty"`
	OverallScore   float64     `json:"overallScore"`
	Recommendation string      `json:"recommendation"`
	Stage          Stage       `json:"stage"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// Filter selects records for the dashboard. Empty or "all" role means no filtering.
type Filter struct {
	AppliedRole string
}

// AllRoles is the dashboard value for "no role filter".
const AllRoles = "all"

// Role returns the role to filter on, "" when every record matches.
func (f Filter) Role() string {
	role := strings.TrimSpace(f.AppliedRole)
	if strings.EqualFold(role, AllRoles) {
		return ""
	}
	return role
}

// Stats holds the dashboard header aggregates.
type Stats struct {
	Total       int           `json:"total"`
	AvgScore    int           `json:"avgScore"`
	HighScorers int           `json:"highScorers"`
	ByStage     map[Stage]int `json:"byStage"`
}
