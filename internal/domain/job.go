package domain

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Job is one posting of the suggestions catalog
type Job struct {
	ID          int64    `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Company     string   `yaml:"company" json:"company"`
	Location    string   `yaml:"location" json:"location"`
	Type        string   `yaml:"type" json:"type"`
	Experience  string   `yaml:"experience" json:"experience"`
	Salary      string   `yaml:"salary" json:"salary"`
	Match       int      `yaml:"match" json:"match"`
	Description string   `yaml:"description" json:"description"`
	Skills      []string `yaml:"skills" json:"skills"`
	Posted      string   `yaml:"posted" json:"posted"`
	Remote      bool     `yaml:"remote" json:"remote"`
	Benefits    []string `yaml:"benefits" json:"benefits"`
}

var yearsRangeRegex = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)

// ExperienceRange parses "3-5 years" into (3, 5)
func (j Job) ExperienceRange() (int, int, bool) {
	m := yearsRangeRegex.FindStringSubmatch(j.Experience)
	if m == nil {
		return 0, 0, false
	}
	lo, _ := strconv.Atoi(m[1])
	hi, _ := strconv.Atoi(m[2])
	return lo, hi, true
}

// MatchColor maps a match percentage to its display color
func MatchColor(match int) string {
	switch {
	case match >= 90:
		return "text-success"
	case match >= 80:
		return "text-primary"
	case match >= 70:
		return "text-career-foreground"
	default:
		return "text-muted-foreground"
	}
}

// MatchBadgeVariant maps a match percentage to its badge variant
func MatchBadgeVariant(match int) string {
	switch {
	case match >= 90:
		return "default"
	case match >= 80:
		return "secondary"
	default:
		return "outline"
	}
}

// ============================================================================
// Filters
// ============================================================================

// FilterOption is one entry of a select control
type FilterOption struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// ExperienceLevel is a years band; Max < 0 means open-ended
type ExperienceLevel struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
	Min   int    `yaml:"min" json:"min"`
	Max   int    `yaml:"max" json:"max"`
}

// Overlaps reports whether the band intersects [lo, hi]
func (l ExperienceLevel) Overlaps(lo, hi int) bool {
	if l.Max >= 0 && lo > l.Max {
		return false
	}
	return hi >= l.Min
}

const FilterAll = "all"

// JobFilter holds the three filter inputs of the listing
type JobFilter struct {
	Search     string `json:"search" form:"search"`
	Location   string `json:"location" form:"location" validate:"omitempty,oneof=all remote san-francisco new-york austin seattle"`
	Experience string `json:"experience" form:"experience" validate:"omitempty,oneof=all entry mid senior"`
}

// IsEmpty is true when no filter narrows the list
func (f JobFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Search) == "" &&
		(f.Location == "" || f.Location == FilterAll) &&
		(f.Experience == "" || f.Experience == FilterAll)
}

// ============================================================================
// Saved Jobs
// ============================================================================

// JobIDSet is the set of saved job identifiers
type JobIDSet map[int64]struct{}

// Toggle flips membership of id and reports whether it is now saved
func (s JobIDSet) Toggle(id int64) bool {
	if _, ok := s[id]; ok {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s JobIDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in ascending order
func (s JobIDSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// JobState is the per-session state of the job suggestions view
type JobState struct {
	Saved  JobIDSet  `json:"saved"`
	Filter JobFilter `json:"filter"`
}

func NewJobState() JobState {
	return JobState{Saved: JobIDSet{}}
}

// ============================================================================
// Listing View
// ============================================================================

// JobCard is a job decorated for rendering
type JobCard struct {
	Job
	Saved           bool     `json:"saved"`
	MatchColor      string   `json:"match_color"`
	BadgeVariant    string   `json:"badge_variant"`
	VisibleBenefits []string `json:"visible_benefits"`
	MoreBenefits    int      `json:"more_benefits"`
}

// VisibleBenefitCount is how many benefits a card lists before "+N more"
const VisibleBenefitCount = 3

// NewJobCard decorates job with its saved flag and display hints
func NewJobCard(job Job, saved bool) JobCard {
	visible := job.Benefits
	more := 0
	if len(visible) > VisibleBenefitCount {
		more = len(visible) - VisibleBenefitCount
		visible = visible[:VisibleBenefitCount]
	}
	return JobCard{
		Job:             job,
		Saved:           saved,
		MatchColor:      MatchColor(job.Match),
		BadgeVariant:    MatchBadgeVariant(job.Match),
		VisibleBenefits: visible,
		MoreBenefits:    more,
	}
}

type JobListing struct {
	Jobs              []JobCard         `json:"jobs"`
	Total             int               `json:"total"`
	CatalogSize       int               `json:"catalog_size"`
	SavedIDs          []int64           `json:"saved_ids"`
	Filter            JobFilter         `json:"filter"`
	LocationOptions   []FilterOption    `json:"location_options"`
	ExperienceOptions []ExperienceLevel `json:"experience_options"`
}

// ============================================================================
// Usecase Interface
// ============================================================================

type JobUsecase interface {
	List(ctx context.Context, sessionID string) (*JobListing, error)
	ApplyFilter(ctx context.Context, sessionID string, filter JobFilter) (*JobListing, error)
	ToggleSaved(ctx context.Context, sessionID string, jobID int64) (bool, *Notification, error)
}
