package resume

import (
	"fmt"
	"math"
	"strings"

	"github.com/artem13815/hrboard/pkg/candidate"
)

// Normalize converts raw extraction output into the canonical candidate shape.
// Every absent field gets its zero value, slices are never nil. Fails with
// ErrMalformedInput only when the payload carries no name at all.
func Normalize(raw RawFields) (candidate.Candidate, error) {
	var name candidate.Name
	if raw.CandidateName != nil {
		name.First = str(raw.CandidateName.FirstName)
		name.Family = str(raw.CandidateName.FamilyName)
	}
	if name.First == "" && name.Family == "" {
		return candidate.Candidate{}, fmt.Errorf("%w: candidate name is missing", ErrMalformedInput)
	}

	c := candidate.Candidate{
		Name:                 name,
		Emails:               nonBlank(raw.Email),
		Phones:               nonBlank(raw.PhoneNumber),
		Summary:              str(raw.Summary),
		TotalYearsExperience: years(raw.TotalYearsExperience),
		WorkExperience:       make([]candidate.WorkExperience, 0, len(raw.WorkExperience)),
		Education:            make([]candidate.Education, 0, len(raw.Education)),
		Skills:               make([]candidate.Skill, 0, len(raw.Skill)),
	}

	for _, w := range raw.WorkExperience {
		c.WorkExperience = append(c.WorkExperience, candidate.WorkExperience{
			Title:        str(w.JobTitle),
			Organization: str(w.Organization),
			DateRange:    dateRange(w.Dates),
			Description:  str(w.JobDescription),
		})
	}
	for _, e := range raw.Education {
		var ed candidate.Education
		if e.Accreditation != nil {
			ed.Accreditation = str(e.Accreditation.Education)
			ed.Level = str(e.Accreditation.EducationLevel)
		}
		c.Education = append(c.Education, ed)
	}
	// blank skill names are kept; display code filters them
	for _, s := range raw.Skill {
		c.Skills = append(c.Skills, candidate.Skill{Name: str(s.Name)})
	}
	return c, nil
}

func dateRange(d *RawDates) candidate.DateRange {
	if d == nil {
		return candidate.DateRange{}
	}
	dr := candidate.DateRange{
		Start:     str(d.StartDate),
		IsCurrent: d.IsCurrent != nil && *d.IsCurrent,
	}
	if end := str(d.EndDate); end != "" && !dr.IsCurrent {
		dr.End = &end
	}
	return dr
}

func years(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0
	}
	return *v
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
