package domain

import "context"

// ============================================================================
// User Type
// ============================================================================

// UserType selects the branch of the career guidance wizard
type UserType string

const (
	UserTypeStudent      UserType = "student"
	UserTypeProfessional UserType = "professional"
)

// ValidUserTypes returns all valid user types
func ValidUserTypes() []UserType {
	return []UserType{UserTypeStudent, UserTypeProfessional}
}

// IsValid checks if the user type is valid
func (t UserType) IsValid() bool {
	for _, valid := range ValidUserTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// ============================================================================
// Phases & Transitions
// ============================================================================

type GuidancePhase string

const (
	GuidanceSelection        GuidancePhase = "selection"
	GuidanceStudentTest      GuidancePhase = "student-test"
	GuidanceProfessionalForm GuidancePhase = "professional-form"
	GuidanceResults          GuidancePhase = "results"
)

type GuidanceAction string

const (
	GuidanceChooseStudent      GuidanceAction = "choose-student"
	GuidanceChooseProfessional GuidanceAction = "choose-professional"
	GuidanceBack               GuidanceAction = "back"
	GuidanceCompleteAssessment GuidanceAction = "complete-assessment"
	GuidanceSubmitProfile      GuidanceAction = "submit-profile"
	GuidanceRestart            GuidanceAction = "restart"
)

var guidanceTransitions = MustTransitionTable(
	[]GuidancePhase{GuidanceSelection, GuidanceStudentTest, GuidanceProfessionalForm, GuidanceResults},
	[]Edge[GuidancePhase, GuidanceAction]{
		{From: GuidanceSelection, Action: GuidanceChooseStudent, To: GuidanceStudentTest},
		{From: GuidanceSelection, Action: GuidanceChooseProfessional, To: GuidanceProfessionalForm},
		{From: GuidanceStudentTest, Action: GuidanceBack, To: GuidanceSelection},
		{From: GuidanceStudentTest, Action: GuidanceCompleteAssessment, To: GuidanceResults},
		{From: GuidanceProfessionalForm, Action: GuidanceBack, To: GuidanceSelection},
		{From: GuidanceProfessionalForm, Action: GuidanceSubmitProfile, To: GuidanceResults},
		{From: GuidanceResults, Action: GuidanceRestart, To: GuidanceSelection},
	},
)

// GuidanceTransitions exposes the wizard's transition table
func GuidanceTransitions() *TransitionTable[GuidancePhase, GuidanceAction] {
	return guidanceTransitions
}

// ============================================================================
// Quiz Answers & Professional Profile
// ============================================================================

// QuizAnswerSet maps a 0-based question index to the selected option text
type QuizAnswerSet map[int]string

// Select records option under index i; other keys are left untouched.
func (s QuizAnswerSet) Select(i int, option string) {
	s[i] = option
}

// Answered reports whether question i has a recorded answer
func (s QuizAnswerSet) Answered(i int) bool {
	return s[i] != ""
}

// ProfessionalProfileDraft holds the professional form. Projects, Domain and
// Experience are required for submission.
type ProfessionalProfileDraft struct {
	Projects   string `json:"projects" form:"projects" validate:"required"`
	Domain     string `json:"domain" form:"domain" validate:"required"`
	Experience string `json:"experience" form:"experience" validate:"required"`
	Skills     string `json:"skills" form:"skills"`
	Interests  string `json:"interests" form:"interests"`
}

// AptitudeQuestion is one multiple-choice question of the student assessment
type AptitudeQuestion struct {
	Question string   `yaml:"question" json:"question"`
	Options  []string `yaml:"options" json:"options"`
}

// HasOption checks if option is one of the question's choices
func (q AptitudeQuestion) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// ============================================================================
// Wizard State
// ============================================================================

// GuidanceState is the per-session state of the career guidance wizard
type GuidanceState struct {
	Phase           GuidancePhase            `json:"phase"`
	UserType        UserType                 `json:"user_type"`
	CurrentQuestion int                      `json:"current_question"`
	Answers         QuizAnswerSet            `json:"answers"`
	Profile         ProfessionalProfileDraft `json:"profile"`
}

// NewGuidanceState returns a wizard at the selection phase
func NewGuidanceState() GuidanceState {
	return GuidanceState{
		Phase:    GuidanceSelection,
		UserType: UserTypeStudent,
		Answers:  QuizAnswerSet{},
	}
}

// Apply moves the wizard along the transition table
func (s *GuidanceState) Apply(action GuidanceAction) error {
	next, err := guidanceTransitions.Next(s.Phase, action)
	if err != nil {
		return err
	}
	s.Phase = next
	return nil
}

// CanGoNext is true once the current question has an answer
func (s GuidanceState) CanGoNext() bool {
	return s.Answers.Answered(s.CurrentQuestion)
}

// CanGoPrevious is false on the first question
func (s GuidanceState) CanGoPrevious() bool {
	return s.CurrentQuestion > 0
}

// ============================================================================
// Results
// ============================================================================

// TraitScore is one OCEAN trait with its percentage
type TraitScore struct {
	Trait string `yaml:"trait" json:"trait"`
	Score int    `yaml:"score" json:"score"`
}

// GuidanceResult is what the results phase renders
type GuidanceResult struct {
	UserType    UserType     `json:"user_type"`
	Traits      []TraitScore `json:"traits"`
	Suggestions []string     `json:"suggestions"`
	BasedOn     string       `json:"based_on"`
}

// GuidanceScorer turns the collected input into a result
type GuidanceScorer interface {
	Score(ctx context.Context, userType UserType, answers QuizAnswerSet, profile ProfessionalProfileDraft) (*GuidanceResult, error)
}

// GuidanceView is the render model for every wizard phase
type GuidanceView struct {
	Phase          GuidancePhase            `json:"phase"`
	UserType       UserType                 `json:"user_type"`
	QuestionIndex  int                      `json:"question_index"`
	QuestionCount  int                      `json:"question_count"`
	Question       *AptitudeQuestion        `json:"question,omitempty"`
	SelectedAnswer string                   `json:"selected_answer,omitempty"`
	CanGoNext      bool                     `json:"can_go_next"`
	CanGoPrevious  bool                     `json:"can_go_previous"`
	IsLastQuestion bool                     `json:"is_last_question"`
	Progress       float64                  `json:"progress"`
	Profile        ProfessionalProfileDraft `json:"profile"`
	Result         *GuidanceResult          `json:"result,omitempty"`
}

// QuestionNumber is the 1-based question label
func (v GuidanceView) QuestionNumber() int {
	return v.QuestionIndex + 1
}

// ============================================================================
// Usecase Interface
// ============================================================================

type GuidanceUsecase interface {
	View(ctx context.Context, sessionID string) (*GuidanceView, error)
	ChooseUserType(ctx context.Context, sessionID string, userType UserType) (*GuidanceView, error)
	SelectAnswer(ctx context.Context, sessionID string, option string) (*GuidanceView, error)
	NextQuestion(ctx context.Context, sessionID string) (*GuidanceView, *Notification, error)
	PreviousQuestion(ctx context.Context, sessionID string) (*GuidanceView, error)
	UpdateProfileDraft(ctx context.Context, sessionID string, draft ProfessionalProfileDraft) (*GuidanceView, error)
	SubmitProfile(ctx context.Context, sessionID string, draft ProfessionalProfileDraft) (*GuidanceView, *Notification, error)
	Back(ctx context.Context, sessionID string) (*GuidanceView, error)
	Restart(ctx context.Context, sessionID string) (*GuidanceView, error)
}
