package model

// Go models for the resume document edited in a session. Field names match
// resume.schema.json, which is used for presence validation.

type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
}

type ExperienceEntry struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type EducationEntry struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// Resume is the single root document of a session. Values are treated as
// immutable snapshots: edits build a new Resume instead of changing one.
type Resume struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []string          `json:"skills"`
}

// Normalize replaces nil sequences with empty ones so that absence of
// content is always an empty sequence.
func Normalize(r Resume) Resume {
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	return r
}

// Clone returns a deep copy of r that shares no backing arrays with it.
func Clone(r Resume) Resume {
	out := r
	out.Experience = append(make([]ExperienceEntry, 0, len(r.Experience)), r.Experience...)
	out.Education = append(make([]EducationEntry, 0, len(r.Education)), r.Education...)
	out.Skills = append(make([]string, 0, len(r.Skills)), r.Skills...)
	return out
}

// HasExperience reports whether an experience entry with id exists.
func (r Resume) HasExperience(id string) bool {
	for _, e := range r.Experience {
		if e.ID == id {
			return true
		}
	}
	return false
}

// HasEducation reports whether an education entry with id exists.
func (r Resume) HasEducation(id string) bool {
	for _, e := range r.Education {
		if e.ID == id {
			return true
		}
	}
	return false
}

// HasSkill reports whether skill is already listed (exact match).
func (r Resume) HasSkill(skill string) bool {
	for _, s := range r.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
