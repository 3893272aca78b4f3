package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resume-builder/templates"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidDocument marks every document that fails presence or invariant
// checks.
var ErrInvalidDocument = errors.New("invalid resume document")

// ValidationError lists every problem found in a supplied document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %s", strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidDocument }

var schemaLoader = gojsonschema.NewBytesLoader(templates.ResumeSchema)

// validateSchema checks raw JSON against resume.schema.json.
func validateSchema(b []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	verr := &ValidationError{}
	for _, e := range res.Errors() {
		verr.Problems = append(verr.Problems, e.String())
	}
	return verr
}

// ParseJSON validates raw JSON against the schema, decodes it and checks
// the identifier and skill invariants.
func ParseJSON(b []byte) (Resume, error) {
	if err := validateSchema(b); err != nil {
		return Resume{}, err
	}
	var r Resume
	if err := json.Unmarshal(b, &r); err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	r = Normalize(r)
	if err := CheckInvariants(r); err != nil {
		return Resume{}, err
	}
	return r, nil
}

// CheckInvariants reports empty or duplicate entry ids and duplicate skills.
func CheckInvariants(r Resume) error {
	var problems []string

	seen := map[string]bool{}
	for i, e := range r.Experience {
		switch {
		case e.ID == "":
			problems = append(problems, fmt.Sprintf("experience[%d].id is empty", i))
		case seen[e.ID]:
			problems = append(problems, fmt.Sprintf("experience[%d].id %q is duplicated", i, e.ID))
		}
		seen[e.ID] = true
	}

	seen = map[string]bool{}
	for i, e := range r.Education {
		switch {
		case e.ID == "":
			problems = append(problems, fmt.Sprintf("education[%d].id is empty", i))
		case seen[e.ID]:
			problems = append(problems, fmt.Sprintf("education[%d].id %q is duplicated", i, e.ID))
		}
		seen[e.ID] = true
	}

	seen = map[string]bool{}
	for i, s := range r.Skills {
		if seen[s] {
			problems = append(problems, fmt.Sprintf("skills[%d] %q is duplicated", i, s))
		}
		seen[s] = true
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
