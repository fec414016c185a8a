package domain_test

import (
	"errors"
	"testing"

	"careerai-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTableConstruction(t *testing.T) {
	type phase string
	type action string

	t.Run("Should reject edges to unknown phases", func(t *testing.T) {
		_, err := domain.NewTransitionTable(
			[]phase{"a", "b"},
			[]domain.Edge[phase, action]{{From: "a", Action: "go", To: "c"}},
		)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown target phase")
	})

	t.Run("Should reject duplicate edges", func(t *testing.T) {
		_, err := domain.NewTransitionTable(
			[]phase{"a", "b"},
			[]domain.Edge[phase, action]{
				{From: "a", Action: "go", To: "b"},
				{From: "a", Action: "go", To: "a"},
			},
		)
		assert.Error(t, err)
	})

	t.Run("Should panic through Must on a bad table", func(t *testing.T) {
		assert.Panics(t, func() {
			domain.MustTransitionTable([]phase{}, []domain.Edge[phase, action]{{From: "x", Action: "y", To: "x"}})
		})
	})
}

func TestGuidanceTransitions(t *testing.T) {
	table := domain.GuidanceTransitions()

	next, err := table.Next(domain.GuidanceSelection, domain.GuidanceChooseStudent)
	require.NoError(t, err)
	assert.Equal(t, domain.GuidanceStudentTest, next)

	next, err = table.Next(domain.GuidanceProfessionalForm, domain.GuidanceSubmitProfile)
	require.NoError(t, err)
	assert.Equal(t, domain.GuidanceResults, next)

	_, err = table.Next(domain.GuidanceSelection, domain.GuidanceSubmitProfile)
	assert.True(t, errors.Is(err, domain.ErrIllegalTransition))

	_, err = table.Next(domain.GuidanceStudentTest, domain.GuidanceSubmitProfile)
	assert.True(t, errors.Is(err, domain.ErrIllegalTransition))

	assert.True(t, table.Allows(domain.GuidanceResults, domain.GuidanceRestart))
	assert.False(t, table.IsPhase("busy"))
}

func TestGuidanceStateApplyKeepsPhaseOnError(t *testing.T) {
	s := domain.NewGuidanceState()
	err := s.Apply(domain.GuidanceCompleteAssessment)
	assert.Error(t, err)
	assert.Equal(t, domain.GuidanceSelection, s.Phase)
}

func TestQuizAnswerSetSelect(t *testing.T) {
	answers := domain.QuizAnswerSet{0: "Building or fixing things", 2: "Learning and discovery"}

	answers.Select(1, "Writing stories or articles")

	assert.Equal(t, "Building or fixing things", answers[0])
	assert.Equal(t, "Writing stories or articles", answers[1])
	assert.Equal(t, "Learning and discovery", answers[2])
	assert.Len(t, answers, 3)

	answers.Select(1, "Organizing events or leading teams")
	assert.Equal(t, "Organizing events or leading teams", answers[1])
	assert.Len(t, answers, 3)
}

func TestNavigationGuards(t *testing.T) {
	s := domain.NewGuidanceState()
	s.Phase = domain.GuidanceStudentTest

	assert.False(t, s.CanGoNext())
	assert.False(t, s.CanGoPrevious())

	s.Answers.Select(0, "Fast-paced and dynamic")
	assert.True(t, s.CanGoNext())

	s.CurrentQuestion = 1
	assert.False(t, s.CanGoNext())
	assert.True(t, s.CanGoPrevious())
}

func TestResumeTypeAcceptance(t *testing.T) {
	cases := map[string]bool{
		"application/pdf":    true,
		"application/msword": false,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		"application/vnd.oasis.opendocument.text":                                 true,
		"image/png":  false,
		"text/plain": false,
		"":           false,
	}
	for mediaType, want := range cases {
		assert.Equal(t, want, domain.IsAcceptedResumeType(mediaType), mediaType)
	}
}

func TestSectionPresentation(t *testing.T) {
	assert.Equal(t, "Contact Info", domain.SectionScore{Key: "contactInfo"}.Label())
	assert.Equal(t, "Formatting", domain.SectionScore{Key: "formatting"}.Label())

	assert.Equal(t, "text-success", domain.SectionExcellent.Color())
	assert.Equal(t, "text-primary", domain.SectionGood.Color())
	assert.Equal(t, "text-destructive", domain.SectionNeedsImprovement.Color())
	assert.Equal(t, "text-muted-foreground", domain.SectionStatus("unknown").Color())

	assert.Equal(t, "check-circle", domain.SectionGood.Icon())
	assert.Equal(t, "alert-circle", domain.SectionNeedsImprovement.Icon())
	assert.False(t, domain.SectionStatus("great").IsValid())
}

func TestFileHandleSizeMB(t *testing.T) {
	assert.Equal(t, "1.50", domain.FileHandle{Size: 1572864}.SizeMB())
	assert.Equal(t, "0.00", domain.FileHandle{}.SizeMB())
}

func TestJobIDSetToggle(t *testing.T) {
	saved := domain.JobIDSet{}

	assert.True(t, saved.Toggle(3))
	assert.Len(t, saved, 1)
	assert.True(t, saved.Has(3))

	assert.False(t, saved.Toggle(3))
	assert.Empty(t, saved)

	saved.Toggle(5)
	saved.Toggle(1)
	assert.Equal(t, []int64{1, 5}, saved.IDs())
}

func TestMatchTiers(t *testing.T) {
	assert.Equal(t, "text-success", domain.MatchColor(95))
	assert.Equal(t, "text-primary", domain.MatchColor(88))
	assert.Equal(t, "text-career-foreground", domain.MatchColor(73))
	assert.Equal(t, "text-muted-foreground", domain.MatchColor(60))

	assert.Equal(t, "default", domain.MatchBadgeVariant(90))
	assert.Equal(t, "secondary", domain.MatchBadgeVariant(82))
	assert.Equal(t, "outline", domain.MatchBadgeVariant(78))
}

func TestNewJobCardTruncatesBenefits(t *testing.T) {
	card := domain.NewJobCard(domain.Job{
		Match:    95,
		Benefits: []string{"Health Insurance", "401k", "Flexible Hours", "Remote Work"},
	}, true)

	assert.True(t, card.Saved)
	assert.Equal(t, []string{"Health Insurance", "401k", "Flexible Hours"}, card.VisibleBenefits)
	assert.Equal(t, 1, card.MoreBenefits)
}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Jobs: []domain.Job{
			{ID: 1, Title: "Senior Full Stack Developer", Company: "TechCorp Inc.", Location: "San Francisco, CA", Experience: "3-5 years", Remote: true, Skills: []string{"React", "AWS"}},
			{ID: 2, Title: "Frontend React Developer", Company: "Innovation Labs", Location: "New York, NY", Experience: "2-4 years", Skills: []string{"Redux"}},
			{ID: 4, Title: "JavaScript Developer", Company: "WebTech Solutions", Location: "Seattle, WA", Experience: "1-3 years", Remote: true},
			{ID: 6, Title: "Backend Node.js Developer", Company: "CloudScale Systems", Location: "Denver, CO", Experience: "3-7 years", Remote: true},
		},
		LocationOptions: []domain.FilterOption{
			{Value: "all", Label: "All Locations"},
			{Value: "remote", Label: "Remote"},
			{Value: "san-francisco", Label: "San Francisco, CA"},
			{Value: "new-york", Label: "New York, NY"},
			{Value: "seattle", Label: "Seattle, WA"},
		},
		ExperienceLevels: []domain.ExperienceLevel{
			{Value: "entry", Min: 0, Max: 2},
			{Value: "mid", Min: 2, Max: 5},
			{Value: "senior", Min: 5, Max: -1},
		},
	}
}

func ids(jobs []domain.Job) []int64 {
	out := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestCatalogFilterJobs(t *testing.T) {
	c := testCatalog()

	t.Run("Should return everything for an empty filter", func(t *testing.T) {
		assert.Equal(t, []int64{1, 2, 4, 6}, ids(c.FilterJobs(domain.JobFilter{Location: "all", Experience: "all"})))
	})

	t.Run("Should search title, company and skills case-insensitively", func(t *testing.T) {
		assert.Equal(t, []int64{2}, ids(c.FilterJobs(domain.JobFilter{Search: "redux"})))
		assert.Equal(t, []int64{4}, ids(c.FilterJobs(domain.JobFilter{Search: "webtech"})))
		assert.Empty(t, c.FilterJobs(domain.JobFilter{Search: "cobol"}))
	})

	t.Run("Should filter by location", func(t *testing.T) {
		assert.Equal(t, []int64{1, 4, 6}, ids(c.FilterJobs(domain.JobFilter{Location: "remote"})))
		assert.Equal(t, []int64{2}, ids(c.FilterJobs(domain.JobFilter{Location: "new-york"})))
		assert.Empty(t, c.FilterJobs(domain.JobFilter{Location: "austin"}))
	})

	t.Run("Should filter by overlapping experience band", func(t *testing.T) {
		assert.Equal(t, []int64{2, 4}, ids(c.FilterJobs(domain.JobFilter{Experience: "entry"})))
		assert.Equal(t, []int64{1, 6}, ids(c.FilterJobs(domain.JobFilter{Experience: "senior"})))
	})

	t.Run("Should combine filters", func(t *testing.T) {
		assert.Equal(t, []int64{4}, ids(c.FilterJobs(domain.JobFilter{Location: "remote", Experience: "entry"})))
	})
}

func TestSessionNormalize(t *testing.T) {
	s := &domain.Session{ID: "abc"}
	s.Normalize()

	assert.Equal(t, domain.GuidanceSelection, s.Guidance.Phase)
	assert.NotNil(t, s.Guidance.Answers)
	assert.Equal(t, domain.ResumeUpload, s.Resume.Phase)
	assert.NotNil(t, s.Jobs.Saved)

	s.Flash = domain.Success("Job saved successfully!")
	assert.Equal(t, "Job saved successfully!", s.PopFlash().Message)
	assert.Nil(t, s.PopFlash())
}
