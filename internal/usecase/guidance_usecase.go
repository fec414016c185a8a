package usecase

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"careerai-web/internal/domain"
	"careerai-web/pkg/apperror"
	"careerai-web/pkg/logger"
	"careerai-web/pkg/metrics"
)

const (
	msgAssessmentCompleted = "Assessment completed! Analyzing your results..."
	msgProfileCompleted    = "Profile analysis completed! Generating recommendations..."
	msgRequiredFields      = "Please fill in all required fields"
	msgSelectAnswer        = "Please select an answer to continue"
	msgFirstQuestion       = "You are already on the first question"
	msgUnknownOption       = "Please choose one of the listed answers"
	msgUnknownUserType     = "Please choose student or professional"
)

type guidanceUsecase struct {
	store    *SessionStore
	catalog  *domain.Catalog
	scorer   domain.GuidanceScorer
	validate *validator.Validate
}

func NewGuidanceUsecase(store *SessionStore, catalog *domain.Catalog, scorer domain.GuidanceScorer, validate *validator.Validate) domain.GuidanceUsecase {
	return &guidanceUsecase{
		store:    store,
		catalog:  catalog,
		scorer:   scorer,
		validate: validate,
	}
}

func (u *guidanceUsecase) View(ctx context.Context, sessionID string) (*domain.GuidanceView, error) {
	s, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.buildView(ctx, s.Guidance)
}

// ============================================================================
// Selection
// ============================================================================

func (u *guidanceUsecase) ChooseUserType(ctx context.Context, sessionID string, userType domain.UserType) (*domain.GuidanceView, error) {
	if !userType.IsValid() {
		return nil, apperror.BadRequest(msgUnknownUserType)
	}

	action := domain.GuidanceChooseStudent
	if userType == domain.UserTypeProfessional {
		action = domain.GuidanceChooseProfessional
	}

	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		g := &s.Guidance
		if err := g.Apply(action); err != nil {
			return illegal(err)
		}
		g.UserType = userType
		if userType == domain.UserTypeStudent {
			g.CurrentQuestion = 0
			g.Answers = domain.QuizAnswerSet{}
		} else {
			g.Profile = domain.ProfessionalProfileDraft{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.recordTransition(action)
	return u.buildView(ctx, s.Guidance)
}

// ============================================================================
// Student Assessment
// ============================================================================

func (u *guidanceUsecase) SelectAnswer(ctx context.Context, sessionID string, option string) (*domain.GuidanceView, error) {
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		g := &s.Guidance
		if g.Phase != domain.GuidanceStudentTest {
			return apperror.Conflict("No assessment in progress", domain.ErrIllegalTransition)
		}
		q, ok := u.catalog.Question(g.CurrentQuestion)
		if !ok || !q.HasOption(option) {
			return apperror.BadRequest(msgUnknownOption)
		}
		g.Answers.Select(g.CurrentQuestion, option)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.buildView(ctx, s.Guidance)
}

func (u *guidanceUsecase) NextQuestion(ctx context.Context, sessionID string) (*domain.GuidanceView, *domain.Notification, error) {
	var note *domain.Notification
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		g := &s.Guidance
		if g.Phase != domain.GuidanceStudentTest {
			return apperror.Conflict("No assessment in progress", domain.ErrIllegalTransition)
		}
		if !g.CanGoNext() {
			return apperror.BadRequest(msgSelectAnswer)
		}
		if g.CurrentQuestion < len(u.catalog.Questions)-1 {
			g.CurrentQuestion++
			return nil
		}
		if err := g.Apply(domain.GuidanceCompleteAssessment); err != nil {
			return illegal(err)
		}
		note = domain.Success(msgAssessmentCompleted)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if note != nil {
		u.recordTransition(domain.GuidanceCompleteAssessment)
		logger.Log.Info("assessment completed", "session_id", sessionID, "answers", len(s.Guidance.Answers))
	}
	view, err := u.buildView(ctx, s.Guidance)
	if err != nil {
		return nil, nil, err
	}
	return view, note, nil
}

func (u *guidanceUsecase) PreviousQuestion(ctx context.Context, sessionID string) (*domain.GuidanceView, error) {
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		g := &s.Guidance
		if g.Phase != domain.GuidanceStudentTest {
			return apperror.Conflict("No assessment in progress", domain.ErrIllegalTransition)
		}
		if !g.CanGoPrevious() {
			return apperror.BadRequest(msgFirstQuestion)
		}
		g.CurrentQuestion--
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.buildView(ctx, s.Guidance)
}

// ============================================================================
// Professional Profile
// ============================================================================

func (u *guidanceUsecase) UpdateProfileDraft(ctx context.Context, sessionID string, draft domain.ProfessionalProfileDraft) (*domain.GuidanceView, error) {
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		if s.Guidance.Phase != domain.GuidanceProfessionalForm {
			return apperror.Conflict("No profile form in progress", domain.ErrIllegalTransition)
		}
		s.Guidance.Profile = draft
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.buildView(ctx, s.Guidance)
}

func (u *guidanceUsecase) SubmitProfile(ctx context.Context, sessionID string, draft domain.ProfessionalProfileDraft) (*domain.GuidanceView, *domain.Notification, error) {
	// The draft is kept even when validation fails, so the session is saved
	// and the rejection is returned afterwards.
	var rejected error
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		g := &s.Guidance
		if !domain.GuidanceTransitions().Allows(g.Phase, domain.GuidanceSubmitProfile) {
			_, err := domain.GuidanceTransitions().Next(g.Phase, domain.GuidanceSubmitProfile)
			return illegal(err)
		}
		g.Profile = draft
		if err := u.validate.Struct(draft); err != nil {
			rejected = apperror.New(http.StatusBadRequest, msgRequiredFields, err)
			return nil
		}
		return g.Apply(domain.GuidanceSubmitProfile)
	})
	if err != nil {
		return nil, nil, err
	}
	if rejected != nil {
		return nil, nil, rejected
	}

	u.recordTransition(domain.GuidanceSubmitProfile)
	logger.Log.Info("professional profile submitted", "session_id", sessionID)

	view, err := u.buildView(ctx, s.Guidance)
	if err != nil {
		return nil, nil, err
	}
	return view, domain.Success(msgProfileCompleted), nil
}

// ============================================================================
// Navigation
// ============================================================================

func (u *guidanceUsecase) Back(ctx context.Context, sessionID string) (*domain.GuidanceView, error) {
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		if err := s.Guidance.Apply(domain.GuidanceBack); err != nil {
			return illegal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.recordTransition(domain.GuidanceBack)
	return u.buildView(ctx, s.Guidance)
}

func (u *guidanceUsecase) Restart(ctx context.Context, sessionID string) (*domain.GuidanceView, error) {
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		if err := s.Guidance.Apply(domain.GuidanceRestart); err != nil {
			return illegal(err)
		}
		s.Guidance = domain.NewGuidanceState()
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.recordTransition(domain.GuidanceRestart)
	return u.buildView(ctx, s.Guidance)
}

// ============================================================================
// Helpers
// ============================================================================

func (u *guidanceUsecase) buildView(ctx context.Context, g domain.GuidanceState) (*domain.GuidanceView, error) {
	count := len(u.catalog.Questions)
	view := &domain.GuidanceView{
		Phase:          g.Phase,
		UserType:       g.UserType,
		QuestionIndex:  g.CurrentQuestion,
		QuestionCount:  count,
		CanGoNext:      g.CanGoNext(),
		CanGoPrevious:  g.CanGoPrevious(),
		IsLastQuestion: g.CurrentQuestion == count-1,
		Profile:        g.Profile,
	}

	if q, ok := u.catalog.Question(g.CurrentQuestion); ok {
		view.Question = &q
		view.SelectedAnswer = g.Answers[g.CurrentQuestion]
	}

	if g.UserType == domain.UserTypeProfessional {
		view.Progress = 100
	} else if count > 0 {
		view.Progress = float64(g.CurrentQuestion+1) * 100 / float64(count)
	}

	if g.Phase == domain.GuidanceResults {
		result, err := u.scorer.Score(ctx, g.UserType, g.Answers, g.Profile)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		view.Result = result
	}
	return view, nil
}

func (u *guidanceUsecase) recordTransition(action domain.GuidanceAction) {
	metrics.FlowTransitions.WithLabelValues("guidance", string(action)).Inc()
}
