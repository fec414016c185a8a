package catalog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"careerai-web/content"
	"careerai-web/internal/domain"
)

const (
	guidanceFile = "guidance.yaml"
	jobsFile     = "jobs.yaml"
	resumeFile   = "resume.yaml"
	pagesFile    = "pages.yaml"
)

// oceanTraits is the fixed order of the Big Five breakdown
var oceanTraits = []string{"openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism"}

// LoadDefault loads the embedded catalog, or the one under dir when set
func LoadDefault(dir string) (*domain.Catalog, error) {
	if dir != "" {
		slog.Info("loading content catalog from directory", "dir", dir)
		return Load(os.DirFS(dir))
	}
	return Load(content.FS)
}

// Load decodes and validates every catalog document in fsys
func Load(fsys fs.FS) (*domain.Catalog, error) {
	var g guidanceDoc
	if err := decode(fsys, guidanceFile, &g); err != nil {
		return nil, err
	}
	var j jobsDoc
	if err := decode(fsys, jobsFile, &j); err != nil {
		return nil, err
	}
	var r resumeDoc
	if err := decode(fsys, resumeFile, &r); err != nil {
		return nil, err
	}
	var p pagesDoc
	if err := decode(fsys, pagesFile, &p); err != nil {
		return nil, err
	}

	c := &domain.Catalog{
		Questions:         g.Questions,
		Traits:            g.Traits,
		CareerSuggestions: g.CareerSuggestions,
		Jobs:              j.Jobs,
		LocationOptions:   j.LocationOptions,
		ExperienceLevels:  j.ExperienceLevels,
		ResumeAnalysis:    r.Analysis,
		AnalysisProgress:  r.Progress,
		Dashboard:         p.Dashboard,
		Home:              p.Home,
	}

	if err := Validate(c); err != nil {
		return nil, err
	}

	slog.Info("content catalog loaded",
		"questions", len(c.Questions),
		"jobs", len(c.Jobs),
		"sections", len(c.ResumeAnalysis.Sections),
	)
	return c, nil
}

// Validate checks the structural invariants the flows rely on
func Validate(c *domain.Catalog) error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog: question bank is empty")
	}
	for i, q := range c.Questions {
		if q.Question == "" {
			return fmt.Errorf("catalog: question %d has no text", i)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("catalog: question %d needs at least 2 options", i)
		}
	}

	for _, ut := range domain.ValidUserTypes() {
		traits := c.Traits[ut]
		if len(traits) != len(oceanTraits) {
			return fmt.Errorf("catalog: %s needs %d OCEAN traits, got %d", ut, len(oceanTraits), len(traits))
		}
		for i, t := range traits {
			if t.Trait != oceanTraits[i] {
				return fmt.Errorf("catalog: %s trait %d is %q, want %q", ut, i, t.Trait, oceanTraits[i])
			}
			if t.Score < 0 || t.Score > 100 {
				return fmt.Errorf("catalog: %s trait %q score out of range", ut, t.Trait)
			}
		}
		if len(c.CareerSuggestions[ut]) == 0 {
			return fmt.Errorf("catalog: no career suggestions for %s", ut)
		}
	}

	if len(c.Jobs) == 0 {
		return fmt.Errorf("catalog: job catalog is empty")
	}
	seen := make(map[int64]bool, len(c.Jobs))
	for _, job := range c.Jobs {
		if seen[job.ID] {
			return fmt.Errorf("catalog: duplicate job id %d", job.ID)
		}
		seen[job.ID] = true
	}

	if len(c.ResumeAnalysis.Sections) == 0 {
		return fmt.Errorf("catalog: resume analysis has no sections")
	}
	for _, s := range c.ResumeAnalysis.Sections {
		if !s.Status.IsValid() {
			return fmt.Errorf("catalog: resume section %q has invalid status %q", s.Key, s.Status)
		}
	}
	if len(c.AnalysisProgress) == 0 {
		return fmt.Errorf("catalog: analysis progress indicators missing")
	}

	return nil
}

func decode(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("catalog: failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("catalog: failed to parse %s: %w", name, err)
	}
	return nil
}

// --- YAML file structs ---

type guidanceDoc struct {
	Questions         []domain.AptitudeQuestion                `yaml:"questions"`
	Traits            map[domain.UserType][]domain.TraitScore `yaml:"traits"`
	CareerSuggestions map[domain.UserType][]string             `yaml:"career_suggestions"`
}

type jobsDoc struct {
	Jobs             []domain.Job             `yaml:"jobs"`
	LocationOptions  []domain.FilterOption    `yaml:"location_options"`
	ExperienceLevels []domain.ExperienceLevel `yaml:"experience_levels"`
}

type resumeDoc struct {
	Analysis domain.ResumeAnalysis      `yaml:"analysis"`
	Progress []domain.ProgressIndicator `yaml:"progress"`
}

type pagesDoc struct {
	Home      domain.HomeContent      `yaml:"home"`
	Dashboard domain.DashboardContent `yaml:"dashboard"`
}
