package usecase

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPersonalField_ChangesOnlyThatField(t *testing.T) {
	for _, f := range model.PersonalFields {
		t.Run(string(f), func(t *testing.T) {
			doc := model.Seed()
			before := model.Clone(doc)

			next := SetPersonalField(doc, f, "changed")

			assert.Equal(t, "changed", next.PersonalInfo.Get(f))
			want := model.Clone(before)
			want.PersonalInfo = want.PersonalInfo.With(f, "changed")
			assert.Equal(t, want, next)
			assert.Equal(t, before, doc, "input must not be modified")

			assert.Equal(t, next, SetPersonalField(next, f, "changed"), "idempotent")
		})
	}
}

func TestSetPersonalField_UnknownFieldIsNoop(t *testing.T) {
	doc := model.Seed()
	assert.Equal(t, doc, SetPersonalField(doc, model.PersonalField("nickname"), "x"))
}

func TestSetSummary_Empty(t *testing.T) {
	doc := model.Seed()
	require.NotEmpty(t, doc.Summary)

	next := SetSummary(doc, "")
	assert.Equal(t, "", next.Summary)
	assert.NotEmpty(t, doc.Summary)
}

func TestExperienceScenario(t *testing.T) {
	doc := model.Seed()
	doc.Experience = doc.Experience[:1]
	require.Equal(t, "1", doc.Experience[0].ID)
	original := doc.Experience[0]

	doc = AddExperience(doc, "7")
	require.Len(t, doc.Experience, 2)
	newEntry := doc.Experience[1]
	assert.Equal(t, model.ExperienceEntry{ID: "7"}, newEntry)
	assert.NotEqual(t, "1", newEntry.ID)

	doc = SetExperienceField(doc, newEntry.ID, model.ExperienceCompany, "Acme")
	assert.Equal(t, "Acme", doc.Experience[1].Company)
	assert.Equal(t, original, doc.Experience[0])

	doc = RemoveExperience(doc, "1")
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, model.ExperienceEntry{ID: "7", Company: "Acme"}, doc.Experience[0])
}

func TestAddRemoveRoundTrip(t *testing.T) {
	doc := model.Seed()

	afterExp := RemoveExperience(AddExperience(doc, "new"), "new")
	assert.Equal(t, doc, afterExp)

	afterEdu := RemoveEducation(AddEducation(doc, "new"), "new")
	assert.Equal(t, doc, afterEdu)

	empty := model.Normalize(model.Resume{})
	assert.Equal(t, empty, RemoveExperience(AddExperience(empty, "x"), "x"))
	assert.Equal(t, empty, RemoveEducation(AddEducation(empty, "x"), "x"))
}

func TestMissingIDIsNoop(t *testing.T) {
	doc := model.Seed()

	assert.Equal(t, doc, SetExperienceField(doc, "missing", model.ExperienceCompany, "Acme"))
	assert.Equal(t, doc, RemoveExperience(doc, "missing"))
	assert.Equal(t, doc, SetEducationField(doc, "missing", model.EducationDegree, "PhD"))
	assert.Equal(t, doc, RemoveEducation(doc, "missing"))
}

func TestSetEducationField(t *testing.T) {
	doc := AddEducation(model.Seed(), "2")
	before := model.Clone(doc)

	next := SetEducationField(doc, "2", model.EducationInstitution, "MIT")
	next = SetEducationField(next, "2", model.EducationYear, "2022")

	require.Len(t, next.Education, 2)
	assert.Equal(t, model.EducationEntry{ID: "2", Institution: "MIT", Year: "2022"}, next.Education[1])
	assert.Equal(t, before.Education[0], next.Education[0])
	assert.Equal(t, before, doc)
}

func TestReducerDoesNotShareWrittenBackingArrays(t *testing.T) {
	doc := model.Seed()
	doc.Experience = make([]model.ExperienceEntry, 1, 8)
	doc.Experience[0] = model.ExperienceEntry{ID: "1"}

	a := AddExperience(doc, "a")
	b := AddExperience(doc, "b")

	assert.Equal(t, "a", a.Experience[1].ID)
	assert.Equal(t, "b", b.Experience[1].ID)
	assert.Len(t, doc.Experience, 1)
}

func TestSkillsScenario(t *testing.T) {
	doc := model.Normalize(model.Resume{Skills: []string{"Go"}})

	doc = AddSkill(doc, "Go")
	assert.Equal(t, []string{"Go"}, doc.Skills)

	doc = AddSkill(doc, "  Rust  ")
	assert.Equal(t, []string{"Go", "Rust"}, doc.Skills)

	doc = RemoveSkill(doc, "Go")
	assert.Equal(t, []string{"Rust"}, doc.Skills)
}

func TestAddSkill(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "blank", value: "   ", want: []string{"Go"}},
		{name: "empty", value: "", want: []string{"Go"}},
		{name: "duplicate after trim", value: "\tGo\n", want: []string{"Go"}},
		{name: "case sensitive", value: "go", want: []string{"Go", "go"}},
		{name: "new", value: "Kubernetes", want: []string{"Go", "Kubernetes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := model.Normalize(model.Resume{Skills: []string{"Go"}})
			once := AddSkill(doc, tt.value)
			assert.Equal(t, tt.want, once.Skills)
			assert.Equal(t, once, AddSkill(once, tt.value), "idempotent")
			assert.Equal(t, []string{"Go"}, doc.Skills)
		})
	}
}

func TestRemoveSkill_AbsentIsNoop(t *testing.T) {
	doc := model.Seed()
	once := RemoveSkill(doc, "Go")
	assert.Equal(t, doc, once)

	removed := RemoveSkill(doc, "React")
	assert.NotContains(t, removed.Skills, "React")
	assert.Equal(t, removed, RemoveSkill(removed, "React"))
	assert.Contains(t, doc.Skills, "React")
}

func TestInsertionOrderIsPreserved(t *testing.T) {
	doc := model.Normalize(model.Resume{})
	for _, id := range []string{"c", "a", "b"} {
		doc = AddExperience(doc, id)
		doc = AddEducation(doc, id)
	}
	for _, s := range []string{"Zig", "Ada", "Go"} {
		doc = AddSkill(doc, s)
	}

	var expIDs, eduIDs []string
	for _, e := range doc.Experience {
		expIDs = append(expIDs, e.ID)
	}
	for _, e := range doc.Education {
		eduIDs = append(eduIDs, e.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, expIDs)
	assert.Equal(t, []string{"c", "a", "b"}, eduIDs)
	assert.Equal(t, []string{"Zig", "Ada", "Go"}, doc.Skills)
}
