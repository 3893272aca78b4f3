package model

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name is outside the closed set
// recognized for a section.
var ErrUnknownField = errors.New("unknown field")

type PersonalField string

const (
	PersonalName     PersonalField = "name"
	PersonalTitle    PersonalField = "title"
	PersonalEmail    PersonalField = "email"
	PersonalPhone    PersonalField = "phone"
	PersonalLocation PersonalField = "location"
	PersonalWebsite  PersonalField = "website"
)

var PersonalFields = []PersonalField{
	PersonalName, PersonalTitle, PersonalEmail, PersonalPhone, PersonalLocation, PersonalWebsite,
}

func ParsePersonalField(s string) (PersonalField, error) {
	for _, f := range PersonalFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("personal info %q: %w", s, ErrUnknownField)
}

// Get returns the value of field f, or "" for an unrecognized field.
func (p PersonalInfo) Get(f PersonalField) string {
	switch f {
	case PersonalName:
		return p.Name
	case PersonalTitle:
		return p.Title
	case PersonalEmail:
		return p.Email
	case PersonalPhone:
		return p.Phone
	case PersonalLocation:
		return p.Location
	case PersonalWebsite:
		return p.Website
	}
	return ""
}

// With returns a copy of p with field f set to value. An unrecognized field
// leaves the copy unchanged.
func (p PersonalInfo) With(f PersonalField, value string) PersonalInfo {
	switch f {
	case PersonalName:
		p.Name = value
	case PersonalTitle:
		p.Title = value
	case PersonalEmail:
		p.Email = value
	case PersonalPhone:
		p.Phone = value
	case PersonalLocation:
		p.Location = value
	case PersonalWebsite:
		p.Website = value
	}
	return p
}

type ExperienceField string

const (
	ExperienceCompany     ExperienceField = "company"
	ExperiencePosition    ExperienceField = "position"
	ExperienceDuration    ExperienceField = "duration"
	ExperienceDescription ExperienceField = "description"
)

var ExperienceFields = []ExperienceField{
	ExperienceCompany, ExperiencePosition, ExperienceDuration, ExperienceDescription,
}

func ParseExperienceField(s string) (ExperienceField, error) {
	for _, f := range ExperienceFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("experience %q: %w", s, ErrUnknownField)
}

// With returns a copy of e with field f set to value. The id is not
// addressable through With.
func (e ExperienceEntry) With(f ExperienceField, value string) ExperienceEntry {
	switch f {
	case ExperienceCompany:
		e.Company = value
	case ExperiencePosition:
		e.Position = value
	case ExperienceDuration:
		e.Duration = value
	case ExperienceDescription:
		e.Description = value
	}
	return e
}

type EducationField string

const (
	EducationInstitution EducationField = "institution"
	EducationDegree      EducationField = "degree"
	EducationYear        EducationField = "year"
)

var EducationFields = []EducationField{EducationInstitution, EducationDegree, EducationYear}

func ParseEducationField(s string) (EducationField, error) {
	for _, f := range EducationFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("education %q: %w", s, ErrUnknownField)
}

func (e EducationEntry) With(f EducationField, value string) EducationEntry {
	switch f {
	case EducationInstitution:
		e.Institution = value
	case EducationDegree:
		e.Degree = value
	case EducationYear:
		e.Year = value
	}
	return e
}
