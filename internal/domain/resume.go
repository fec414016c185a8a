package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ============================================================================
// Phases & Transitions
// ============================================================================

type ResumePhase string

const (
	ResumeUpload   ResumePhase = "upload"
	ResumeBusy     ResumePhase = "busy"
	ResumeComplete ResumePhase = "complete"
)

type ResumeAction string

const (
	ResumeSelectFile     ResumeAction = "select-file"
	ResumeRemoveFile     ResumeAction = "remove-file"
	ResumeStartAnalysis  ResumeAction = "start-analysis"
	ResumeFinishAnalysis ResumeAction = "finish-analysis"
	ResumeAnalyzeNew     ResumeAction = "analyze-new"
)

var resumeTransitions = MustTransitionTable(
	[]ResumePhase{ResumeUpload, ResumeBusy, ResumeComplete},
	[]Edge[ResumePhase, ResumeAction]{
		{From: ResumeUpload, Action: ResumeSelectFile, To: ResumeUpload},
		{From: ResumeUpload, Action: ResumeRemoveFile, To: ResumeUpload},
		{From: ResumeUpload, Action: ResumeStartAnalysis, To: ResumeBusy},
		{From: ResumeBusy, Action: ResumeFinishAnalysis, To: ResumeComplete},
		{From: ResumeComplete, Action: ResumeAnalyzeNew, To: ResumeUpload},
	},
)

// ResumeTransitions exposes the resume flow's transition table
func ResumeTransitions() *TransitionTable[ResumePhase, ResumeAction] {
	return resumeTransitions
}

// ============================================================================
// Uploaded File
// ============================================================================

// AcceptedResumeExtensions is the file picker hint
const AcceptedResumeExtensions = ".pdf,.doc,.docx"

// FileHandle references the selected resume. Content is never kept.
type FileHandle struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	MediaType string `json:"media_type"`
}

// SizeMB formats the size the way the upload card shows it
func (f FileHandle) SizeMB() string {
	return fmt.Sprintf("%.2f", float64(f.Size)/1024/1024)
}

// IsAcceptedResumeType accepts PDF or any media type containing "document"
func IsAcceptedResumeType(mediaType string) bool {
	return mediaType == "application/pdf" || strings.Contains(mediaType, "document")
}

// ============================================================================
// Analysis Result
// ============================================================================

// SectionStatus is the three-valued verdict for a resume section
type SectionStatus string

const (
	SectionExcellent        SectionStatus = "excellent"
	SectionGood             SectionStatus = "good"
	SectionNeedsImprovement SectionStatus = "needs-improvement"
)

// IsValid checks if the status is one of the three known values
func (s SectionStatus) IsValid() bool {
	switch s {
	case SectionExcellent, SectionGood, SectionNeedsImprovement:
		return true
	}
	return false
}

// Color is the display color class for the status
func (s SectionStatus) Color() string {
	switch s {
	case SectionExcellent:
		return "text-success"
	case SectionGood:
		return "text-primary"
	case SectionNeedsImprovement:
		return "text-destructive"
	default:
		return "text-muted-foreground"
	}
}

// Icon is the display icon name for the status
func (s SectionStatus) Icon() string {
	switch s {
	case SectionExcellent, SectionGood:
		return "check-circle"
	default:
		return "alert-circle"
	}
}

type SectionScore struct {
	Key    string        `yaml:"key" json:"key"`
	Score  int           `yaml:"score" json:"score"`
	Status SectionStatus `yaml:"status" json:"status"`
}

// Label turns the camelCase key into spaced, capitalised words
// ("contactInfo" -> "Contact Info").
func (s SectionScore) Label() string {
	var b strings.Builder
	for i, r := range s.Key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

type ExperienceRole struct {
	Title    string `yaml:"title" json:"title"`
	Company  string `yaml:"company" json:"company"`
	Duration string `yaml:"duration" json:"duration"`
}

type ExperienceSummary struct {
	TotalYears float64          `yaml:"total_years" json:"totalYears"`
	Roles      []ExperienceRole `yaml:"roles" json:"roles"`
}

type MatchedJob struct {
	Title   string `yaml:"title" json:"title"`
	Match   int    `yaml:"match" json:"match"`
	Company string `yaml:"company" json:"company"`
}

// ResumeAnalysis is the result revealed once the busy phase ends
type ResumeAnalysis struct {
	OverallScore     int               `yaml:"overall_score" json:"overallScore"`
	ATSCompatibility int               `yaml:"ats_compatibility" json:"atsCompatibility"`
	Sections         []SectionScore    `yaml:"sections" json:"sections"`
	ExtractedSkills  []string          `yaml:"extracted_skills" json:"extractedSkills"`
	Experience       ExperienceSummary `yaml:"experience" json:"experience"`
	Suggestions      []string          `yaml:"suggestions" json:"suggestions"`
	MatchedJobs      []MatchedJob      `yaml:"matched_jobs" json:"matchedJobs"`
}

// Clone returns a deep copy so callers cannot alter shared content
func (a ResumeAnalysis) Clone() *ResumeAnalysis {
	out := a
	out.Sections = append([]SectionScore(nil), a.Sections...)
	out.ExtractedSkills = append([]string(nil), a.ExtractedSkills...)
	out.Experience.Roles = append([]ExperienceRole(nil), a.Experience.Roles...)
	out.Suggestions = append([]string(nil), a.Suggestions...)
	out.MatchedJobs = append([]MatchedJob(nil), a.MatchedJobs...)
	return &out
}

// ProgressIndicator is one of the fixed bars shown during the busy phase
type ProgressIndicator struct {
	Label   string `yaml:"label" json:"label"`
	Percent int    `yaml:"percent" json:"percent"`
}

// ResumeAnalyzer produces the analysis for an uploaded file
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, file FileHandle) (*ResumeAnalysis, error)
}

// ============================================================================
// Flow State
// ============================================================================

type ResumeState struct {
	Phase             ResumePhase     `json:"phase"`
	File              *FileHandle     `json:"file,omitempty"`
	AnalysisStartedAt *time.Time      `json:"analysis_started_at,omitempty"`
	Result            *ResumeAnalysis `json:"result,omitempty"`
}

// NewResumeState returns the flow at the upload phase with no file
func NewResumeState() ResumeState {
	return ResumeState{Phase: ResumeUpload}
}

// Apply moves the flow along the transition table
func (s *ResumeState) Apply(action ResumeAction) error {
	next, err := resumeTransitions.Next(s.Phase, action)
	if err != nil {
		return err
	}
	s.Phase = next
	return nil
}

// ResumeView is the render model for the resume page
type ResumeView struct {
	Phase              ResumePhase         `json:"phase"`
	File               *FileHandle         `json:"file,omitempty"`
	CanStartAnalysis   bool                `json:"can_start_analysis"`
	Progress           []ProgressIndicator `json:"progress,omitempty"`
	ReadyAt            *time.Time          `json:"ready_at,omitempty"`
	Result             *ResumeAnalysis     `json:"result,omitempty"`
	AcceptedExtensions string              `json:"accepted_extensions"`
	MaxUploadMB        int                 `json:"max_upload_mb"`
}

// ============================================================================
// Usecase Interface
// ============================================================================

type ResumeUsecase interface {
	View(ctx context.Context, sessionID string) (*ResumeView, *Notification, error)
	SelectFile(ctx context.Context, sessionID string, file FileHandle) (*ResumeView, *Notification, error)
	RemoveFile(ctx context.Context, sessionID string) (*ResumeView, error)
	StartAnalysis(ctx context.Context, sessionID string) (*ResumeView, error)
	AnalyzeNew(ctx context.Context, sessionID string) (*ResumeView, error)
}
