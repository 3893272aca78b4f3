package domain

import (
	"time"

	"github.com/google/uuid"
)

// Op names one edit the editing surface can request.
type Op string

const (
	OpSetPersonalField   Op = "setPersonalField"
	OpSetSummary         Op = "setSummary"
	OpAddExperience      Op = "addExperience"
	OpSetExperienceField Op = "setExperienceField"
	OpRemoveExperience   Op = "removeExperience"
	OpAddEducation       Op = "addEducation"
	OpSetEducationField  Op = "setEducationField"
	OpRemoveEducation    Op = "removeEducation"
	OpAddSkill           Op = "addSkill"
	OpRemoveSkill        Op = "removeSkill"
)

// EditIntent describes one requested change. Field and ID are only read by
// the ops that address a field or an entry.
type EditIntent struct {
	RequestID uuid.UUID `json:"request_id"`
	Op        Op        `json:"op"`
	Field     string    `json:"field,omitempty"`
	ID        string    `json:"id,omitempty"`
	Value     string    `json:"value,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewIntent stamps an intent with a request id and creation time.
func NewIntent(op Op, field, id, value string) EditIntent {
	return EditIntent{
		RequestID: uuid.New(),
		Op:        op,
		Field:     field,
		ID:        id,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
}

func SetPersonalField(field, value string) EditIntent {
	return NewIntent(OpSetPersonalField, field, "", value)
}

func SetSummary(value string) EditIntent { return NewIntent(OpSetSummary, "", "", value) }

func AddExperience() EditIntent { return NewIntent(OpAddExperience, "", "", "") }

func SetExperienceField(id, field, value string) EditIntent {
	return NewIntent(OpSetExperienceField, field, id, value)
}

func RemoveExperience(id string) EditIntent { return NewIntent(OpRemoveExperience, "", id, "") }

func AddEducation() EditIntent { return NewIntent(OpAddEducation, "", "", "") }

func SetEducationField(id, field, value string) EditIntent {
	return NewIntent(OpSetEducationField, field, id, value)
}

func RemoveEducation(id string) EditIntent { return NewIntent(OpRemoveEducation, "", id, "") }

func AddSkill(value string) EditIntent { return NewIntent(OpAddSkill, "", "", value) }

func RemoveSkill(value string) EditIntent { return NewIntent(OpRemoveSkill, "", "", value) }
