package usecase

import (
	"testing"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedIDs replays a fixed list of ids.
type fixedIDs struct {
	ids []string
}

func (f *fixedIDs) NextID() string {
	if len(f.ids) == 0 {
		return ""
	}
	id := f.ids[0]
	f.ids = f.ids[1:]
	return id
}

func TestApply_AddSkipsIDsInUse(t *testing.T) {
	doc := model.Seed()

	next, id, err := Apply(doc, domain.AddExperience(), NewCounterGenerator(0))
	require.NoError(t, err)
	assert.Equal(t, "3", id, "seed already uses 1 and 2")
	require.Len(t, next.Experience, 3)
	assert.Equal(t, model.ExperienceEntry{ID: "3"}, next.Experience[2])

	next, id, err = Apply(doc, domain.AddEducation(), &fixedIDs{ids: []string{"1", "", "edu-2"}})
	require.NoError(t, err)
	assert.Equal(t, "edu-2", id)
	assert.Equal(t, "edu-2", next.Education[len(next.Education)-1].ID)
}

func TestApply_NoFreshID(t *testing.T) {
	doc := model.Seed()
	ids := &fixedIDs{}
	for i := 0; i < maxIDAttempts; i++ {
		ids.ids = append(ids.ids, "1")
	}

	next, id, err := Apply(doc, domain.AddExperience(), ids)
	assert.ErrorIs(t, err, ErrNoFreshID)
	assert.Empty(t, id)
	assert.Equal(t, doc, next)
}

func TestApply_Dispatch(t *testing.T) {
	doc := model.Seed()
	ids := NewCounterGenerator(100)

	tests := []struct {
		name   string
		intent domain.EditIntent
		check  func(t *testing.T, got model.Resume)
	}{
		{
			name:   "personal field",
			intent: domain.SetPersonalField("email", "jd@example.com"),
			check: func(t *testing.T, got model.Resume) {
				assert.Equal(t, "jd@example.com", got.PersonalInfo.Email)
			},
		},
		{
			name:   "summary",
			intent: domain.SetSummary("Short."),
			check: func(t *testing.T, got model.Resume) {
				assert.Equal(t, "Short.", got.Summary)
			},
		},
		{
			name:   "experience field",
			intent: domain.SetExperienceField("2", "position", "Staff Engineer"),
			check: func(t *testing.T, got model.Resume) {
				assert.Equal(t, "Staff Engineer", got.Experience[1].Position)
			},
		},
		{
			name:   "remove experience",
			intent: domain.RemoveExperience("1"),
			check: func(t *testing.T, got model.Resume) {
				require.Len(t, got.Experience, 1)
				assert.Equal(t, "2", got.Experience[0].ID)
			},
		},
		{
			name:   "education field",
			intent: domain.SetEducationField("1", "degree", "MSc"),
			check: func(t *testing.T, got model.Resume) {
				assert.Equal(t, "MSc", got.Education[0].Degree)
			},
		},
		{
			name:   "remove education",
			intent: domain.RemoveEducation("1"),
			check: func(t *testing.T, got model.Resume) {
				assert.Empty(t, got.Education)
				assert.NotNil(t, got.Education)
			},
		},
		{
			name:   "add skill",
			intent: domain.AddSkill(" Go "),
			check: func(t *testing.T, got model.Resume) {
				assert.Equal(t, "Go", got.Skills[len(got.Skills)-1])
			},
		},
		{
			name:   "remove skill",
			intent: domain.RemoveSkill("AWS"),
			check: func(t *testing.T, got model.Resume) {
				assert.NotContains(t, got.Skills, "AWS")
				assert.Len(t, got.Skills, 9)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, id, err := Apply(doc, tt.intent, ids)
			require.NoError(t, err)
			assert.Empty(t, id)
			tt.check(t, got)
		})
	}
	assert.Equal(t, model.Seed(), doc, "input must not be modified")
}

func TestApply_Errors(t *testing.T) {
	doc := model.Seed()
	ids := NewCounterGenerator(0)

	tests := []struct {
		name   string
		intent domain.EditIntent
		want   error
	}{
		{name: "unknown op", intent: domain.NewIntent("renameResume", "", "", ""), want: ErrUnknownOp},
		{name: "unknown personal field", intent: domain.SetPersonalField("nickname", "JD"), want: model.ErrUnknownField},
		{name: "id is not a field", intent: domain.SetExperienceField("1", "id", "9"), want: model.ErrUnknownField},
		{name: "unknown education field", intent: domain.SetEducationField("1", "gpa", "4.0"), want: model.ErrUnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := Apply(doc, tt.intent, ids)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, doc, got)
		})
	}
}

func TestApply_IdentifiersStayUnique(t *testing.T) {
	doc := model.Seed()
	ids := NewCounterGenerator(0)

	for i := 0; i < 20; i++ {
		var err error
		doc, _, err = Apply(doc, domain.AddExperience(), ids)
		require.NoError(t, err)
		doc, _, err = Apply(doc, domain.AddEducation(), ids)
		require.NoError(t, err)
	}
	require.NoError(t, model.CheckInvariants(doc))
	assert.Len(t, doc.Experience, 22)
	assert.Len(t, doc.Education, 21)
}
