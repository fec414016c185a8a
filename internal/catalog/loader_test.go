package catalog

import (
	"testing"
	"testing/fstest"

	"careerai-web/content"
	"careerai-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load(content.FS)
	require.NoError(t, err)

	assert.Len(t, c.Questions, 5)
	for _, q := range c.Questions {
		assert.Len(t, q.Options, 5)
	}
	assert.Equal(t, "What do you enjoy most about learning?", c.Questions[0].Question)

	student := c.Traits[domain.UserTypeStudent]
	require.Len(t, student, 5)
	assert.Equal(t, domain.TraitScore{Trait: "openness", Score: 85}, student[0])
	assert.Equal(t, domain.TraitScore{Trait: "neuroticism", Score: 30}, student[4])

	professional := c.Traits[domain.UserTypeProfessional]
	assert.Equal(t, []int{90, 85, 70, 85, 25}, scores(professional))

	assert.Len(t, c.CareerSuggestions[domain.UserTypeStudent], 5)
	assert.Len(t, c.CareerSuggestions[domain.UserTypeProfessional], 5)

	assert.Len(t, c.Jobs, 6)
	job, ok := c.JobByID(3)
	require.True(t, ok)
	assert.Equal(t, "Full Stack Engineer", job.Title)
	assert.Equal(t, "Contract", job.Type)

	a := c.ResumeAnalysis
	assert.Equal(t, 85, a.OverallScore)
	assert.Equal(t, 92, a.ATSCompatibility)
	require.Len(t, a.Sections, 6)
	assert.Equal(t, domain.SectionScore{Key: "contactInfo", Score: 95, Status: domain.SectionExcellent}, a.Sections[0])
	assert.Equal(t, domain.SectionScore{Key: "skills", Score: 75, Status: domain.SectionNeedsImprovement}, a.Sections[4])
	assert.Len(t, a.ExtractedSkills, 12)
	assert.Equal(t, 3.5, a.Experience.TotalYears)
	assert.Len(t, a.MatchedJobs, 4)
	assert.Len(t, a.Suggestions, 5)

	require.Len(t, c.AnalysisProgress, 4)
	assert.Equal(t, 45, c.AnalysisProgress[3].Percent)

	assert.Len(t, c.Dashboard.Stats, 4)
	assert.Len(t, c.Dashboard.Tools, 3)
	assert.Len(t, c.Dashboard.RecentActivity, 3)
	assert.Len(t, c.Home.Features, 3)
}

func scores(traits []domain.TraitScore) []int {
	out := make([]int, 0, len(traits))
	for _, t := range traits {
		out = append(out, t.Score)
	}
	return out
}

func TestLoadRejectsBrokenCatalog(t *testing.T) {
	base := fstest.MapFS{}
	for _, name := range []string{guidanceFile, jobsFile, resumeFile, pagesFile} {
		data, err := content.FS.ReadFile(name)
		require.NoError(t, err)
		base[name] = &fstest.MapFile{Data: data}
	}

	t.Run("Should fail when a document is missing", func(t *testing.T) {
		fsys := fstest.MapFS{guidanceFile: base[guidanceFile]}
		_, err := Load(fsys)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), jobsFile)
	})

	t.Run("Should fail on malformed YAML", func(t *testing.T) {
		fsys := clone(base)
		fsys[resumeFile] = &fstest.MapFile{Data: []byte("analysis: [unclosed")}
		_, err := Load(fsys)
		assert.Error(t, err)
	})

	t.Run("Should fail on duplicate job ids", func(t *testing.T) {
		fsys := clone(base)
		fsys[jobsFile] = &fstest.MapFile{Data: []byte("jobs:\n  - id: 1\n  - id: 1\n")}
		_, err := Load(fsys)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate job id")
	})

	t.Run("Should fail on an unknown section status", func(t *testing.T) {
		fsys := clone(base)
		fsys[resumeFile] = &fstest.MapFile{Data: []byte(
			"analysis:\n  sections:\n    - { key: summary, score: 80, status: great }\nprogress:\n  - { label: x, percent: 1 }\n")}
		_, err := Load(fsys)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status")
	})
}

func clone(src fstest.MapFS) fstest.MapFS {
	out := fstest.MapFS{}
	for k, v := range src {
		out[k] = v
	}
	return out
}

func TestLoadDefaultFromDirectory(t *testing.T) {
	_, err := LoadDefault(t.TempDir())
	assert.Error(t, err, "an empty override directory has no documents")
}
