package usecase

import (
	"strings"

	"resume-builder/internal/model"
)

// The reducer functions below never modify their input. Sequences that
// change are rebuilt into fresh slices; untouched sequences are shared with
// the previous snapshot, which is safe because no snapshot is ever written.

func SetPersonalField(doc model.Resume, field model.PersonalField, value string) model.Resume {
	doc.PersonalInfo = doc.PersonalInfo.With(field, value)
	return doc
}

func SetSummary(doc model.Resume, value string) model.Resume {
	doc.Summary = value
	return doc
}

// AddExperience appends an empty entry carrying id. The caller supplies a
// fresh id; see Apply.
func AddExperience(doc model.Resume, id string) model.Resume {
	next := make([]model.ExperienceEntry, 0, len(doc.Experience)+1)
	next = append(next, doc.Experience...)
	doc.Experience = append(next, model.ExperienceEntry{ID: id})
	return doc
}

func SetExperienceField(doc model.Resume, id string, field model.ExperienceField, value string) model.Resume {
	if !doc.HasExperience(id) {
		return doc
	}
	next := make([]model.ExperienceEntry, 0, len(doc.Experience))
	for _, e := range doc.Experience {
		if e.ID == id {
			e = e.With(field, value)
		}
		next = append(next, e)
	}
	doc.Experience = next
	return doc
}

func RemoveExperience(doc model.Resume, id string) model.Resume {
	if !doc.HasExperience(id) {
		return doc
	}
	next := make([]model.ExperienceEntry, 0, len(doc.Experience))
	for _, e := range doc.Experience {
		if e.ID != id {
			next = append(next, e)
		}
	}
	doc.Experience = next
	return doc
}

func AddEducation(doc model.Resume, id string) model.Resume {
	next := make([]model.EducationEntry, 0, len(doc.Education)+1)
	next = append(next, doc.Education...)
	doc.Education = append(next, model.EducationEntry{ID: id})
	return doc
}

func SetEducationField(doc model.Resume, id string, field model.EducationField, value string) model.Resume {
	if !doc.HasEducation(id) {
		return doc
	}
	next := make([]model.EducationEntry, 0, len(doc.Education))
	for _, e := range doc.Education {
		if e.ID == id {
			e = e.With(field, value)
		}
		next = append(next, e)
	}
	doc.Education = next
	return doc
}

func RemoveEducation(doc model.Resume, id string) model.Resume {
	if !doc.HasEducation(id) {
		return doc
	}
	next := make([]model.EducationEntry, 0, len(doc.Education))
	for _, e := range doc.Education {
		if e.ID != id {
			next = append(next, e)
		}
	}
	doc.Education = next
	return doc
}

// AddSkill appends the trimmed value unless it is empty or already listed.
func AddSkill(doc model.Resume, value string) model.Resume {
	skill := strings.TrimSpace(value)
	if skill == "" || doc.HasSkill(skill) {
		return doc
	}
	next := make([]string, 0, len(doc.Skills)+1)
	next = append(next, doc.Skills...)
	doc.Skills = append(next, skill)
	return doc
}

func RemoveSkill(doc model.Resume, value string) model.Resume {
	if !doc.HasSkill(value) {
		return doc
	}
	next := make([]string, 0, len(doc.Skills))
	removed := false
	for _, s := range doc.Skills {
		if !removed && s == value {
			removed = true
			continue
		}
		next = append(next, s)
	}
	doc.Skills = next
	return doc
}
