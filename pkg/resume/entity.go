package resume

import (
	"context"
	"errors"
)

// Errors returned by extraction and normalization.
var (
	ErrExtraction      = errors.New("resume extraction failed")
	ErrMalformedInput  = errors.New("malformed extraction payload")
	ErrUnsupportedFile = errors.New("unsupported file format: only pdf, docx, odt and txt are allowed")
)

// Extractor: порт сервиса разбора документов.
// Any failure, an unsupported format included, is reported as ErrExtraction.
type Extractor interface {
	Extract(ctx context.Context, filename string, data []byte) (RawFields, error)
}

// RawFields is the raw parse result. Every field may be absent.
type RawFields struct {
	CandidateName        *RawName       `json:"candidateName,omitempty"`
	Email                []string       `json:"email,omitempty"`
	PhoneNumber          []string       `json:"phoneNumber,omitempty"`
	Summary              *string        `json:"summary,omitempty"`
	TotalYearsExperience *float64       `json:"totalYearsExperience,omitempty"`
	WorkExperience       []RawWork      `json:"workExperience,omitempty"`
	Education            []RawEducation `json:"education,omitempty"`
	Skill                []RawSkill     `json:"skill,omitempty"`
}

type RawName struct {
	FirstName  *string `json:"firstName,omitempty"`
	FamilyName *string `json:"familyName,omitempty"`
}

type RawWork struct {
	JobTitle       *string   `json:"jobTitle,omitempty"`
	Organization   *string   `json:"organization,omitempty"`
	Dates          *RawDates `json:"dates,omitempty"`
	JobDescription *string   `json:"jobDescription,omitempty"`
}

type RawDates struct {
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	IsCurrent *bool   `json:"isCurrent,omitempty"`
}

type RawEducation struct {
	Accreditation *RawAccreditation `json:"accreditation,omitempty"`
}

type RawAccreditation struct {
	Education      *string `json:"education,omitempty"`
	EducationLevel *string `json:"educationLevel,omitempty"`
}

type RawSkill struct {
	Name *string `json:"name,omitempty"`
}
