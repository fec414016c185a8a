package domain

import "strings"

// Catalog is the immutable content loaded once at start-up and shared by
// every use case. Nothing mutates it after loading.
type Catalog struct {
	Questions         []AptitudeQuestion
	Traits            map[UserType][]TraitScore
	CareerSuggestions map[UserType][]string
	Jobs              []Job
	LocationOptions   []FilterOption
	ExperienceLevels  []ExperienceLevel
	ResumeAnalysis    ResumeAnalysis
	AnalysisProgress  []ProgressIndicator
	Dashboard         DashboardContent
	Home              HomeContent
}

// JobByID looks a job up by its identifier
func (c *Catalog) JobByID(id int64) (Job, bool) {
	for _, j := range c.Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}

// Question returns the question at index i
func (c *Catalog) Question(i int) (AptitudeQuestion, bool) {
	if i < 0 || i >= len(c.Questions) {
		return AptitudeQuestion{}, false
	}
	return c.Questions[i], true
}

// FilterJobs returns the jobs matching f, in catalog order
func (c *Catalog) FilterJobs(f JobFilter) []Job {
	if f.IsEmpty() {
		return append([]Job(nil), c.Jobs...)
	}
	out := make([]Job, 0, len(c.Jobs))
	for _, j := range c.Jobs {
		if c.matches(j, f) {
			out = append(out, j)
		}
	}
	return out
}

func (c *Catalog) matches(j Job, f JobFilter) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !jobContains(j, term) {
			return false
		}
	}

	switch f.Location {
	case "", FilterAll:
	case "remote":
		if !j.Remote {
			return false
		}
	default:
		if label, ok := c.locationLabel(f.Location); !ok || j.Location != label {
			return false
		}
	}

	switch f.Experience {
	case "", FilterAll:
	default:
		level, ok := c.experienceLevel(f.Experience)
		if !ok {
			return false
		}
		lo, hi, ok := j.ExperienceRange()
		if !ok || !level.Overlaps(lo, hi) {
			return false
		}
	}
	return true
}

func jobContains(j Job, term string) bool {
	fields := []string{j.Title, j.Company, j.Description}
	fields = append(fields, j.Skills...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func (c *Catalog) locationLabel(value string) (string, bool) {
	for _, o := range c.LocationOptions {
		if o.Value == value {
			return o.Label, true
		}
	}
	return "", false
}

func (c *Catalog) experienceLevel(value string) (ExperienceLevel, bool) {
	for _, l := range c.ExperienceLevels {
		if l.Value == value {
			return l, true
		}
	}
	return ExperienceLevel{}, false
}
