package usecase

import (
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

var (
	ErrUnknownOp = errors.New("unknown edit op")
	// ErrNoFreshID is returned when the generator keeps producing ids that
	// are already in use.
	ErrNoFreshID = errors.New("no fresh entry id available")
)

const maxIDAttempts = 64

// Apply translates an intent into the matching reducer call. For add ops the
// returned string is the id of the created entry. Unknown ops and field
// names are reported as errors and leave doc unchanged; a missing entry id
// is not an error.
func Apply(doc model.Resume, in domain.EditIntent, ids IDGenerator) (model.Resume, string, error) {
	switch in.Op {
	case domain.OpSetPersonalField:
		f, err := model.ParsePersonalField(in.Field)
		if err != nil {
			return doc, "", err
		}
		return SetPersonalField(doc, f, in.Value), "", nil

	case domain.OpSetSummary:
		return SetSummary(doc, in.Value), "", nil

	case domain.OpAddExperience:
		id, err := freshID(ids, doc.HasExperience)
		if err != nil {
			return doc, "", err
		}
		return AddExperience(doc, id), id, nil

	case domain.OpSetExperienceField:
		f, err := model.ParseExperienceField(in.Field)
		if err != nil {
			return doc, "", err
		}
		return SetExperienceField(doc, in.ID, f, in.Value), "", nil

	case domain.OpRemoveExperience:
		return RemoveExperience(doc, in.ID), "", nil

	case domain.OpAddEducation:
		id, err := freshID(ids, doc.HasEducation)
		if err != nil {
			return doc, "", err
		}
		return AddEducation(doc, id), id, nil

	case domain.OpSetEducationField:
		f, err := model.ParseEducationField(in.Field)
		if err != nil {
			return doc, "", err
		}
		return SetEducationField(doc, in.ID, f, in.Value), "", nil

	case domain.OpRemoveEducation:
		return RemoveEducation(doc, in.ID), "", nil

	case domain.OpAddSkill:
		return AddSkill(doc, in.Value), "", nil

	case domain.OpRemoveSkill:
		return RemoveSkill(doc, in.Value), "", nil
	}
	return doc, "", fmt.Errorf("%w: %q", ErrUnknownOp, in.Op)
}

func freshID(ids IDGenerator, taken func(string) bool) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := ids.NextID()
		if id != "" && !taken(id) {
			return id, nil
		}
	}
	return "", ErrNoFreshID
}
