package usecase

import (
	"context"
	"time"

	"careerai-web/internal/domain"
	"careerai-web/pkg/apperror"
	"careerai-web/pkg/logger"
	"careerai-web/pkg/metrics"
)

const (
	msgResumeUploaded  = "Resume uploaded successfully!"
	msgResumeRejected  = "Please upload a PDF or Word document"
	msgResumeMissing   = "Please upload a resume first"
	msgResumeCompleted = "Resume analysis completed!"
)

type resumeUsecase struct {
	store       *SessionStore
	catalog     *domain.Catalog
	analyzer    domain.ResumeAnalyzer
	delay       time.Duration
	maxUploadMB int
}

// NewResumeUsecase wires the resume flow. delay is how long the busy phase
// lasts before the result is revealed.
func NewResumeUsecase(store *SessionStore, catalog *domain.Catalog, analyzer domain.ResumeAnalyzer, delay time.Duration, maxUploadMB int) domain.ResumeUsecase {
	return &resumeUsecase{
		store:       store,
		catalog:     catalog,
		analyzer:    analyzer,
		delay:       delay,
		maxUploadMB: maxUploadMB,
	}
}

// View returns the current state, completing a busy analysis whose delay
// has elapsed.
func (u *resumeUsecase) View(ctx context.Context, sessionID string) (*domain.ResumeView, *domain.Notification, error) {
	s, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if !u.ready(s.Resume) {
		return u.buildView(s.Resume), nil, nil
	}

	var note *domain.Notification
	s, err = u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		r := &s.Resume
		if !u.ready(*r) {
			return nil
		}
		result, err := u.analyzer.Analyze(ctx, *r.File)
		if err != nil {
			return apperror.Internal(err)
		}
		if err := r.Apply(domain.ResumeFinishAnalysis); err != nil {
			return illegal(err)
		}
		r.Result = result
		note = domain.Success(msgResumeCompleted)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if note != nil {
		u.recordTransition(domain.ResumeFinishAnalysis)
		logger.Log.Info("resume analysis completed", "session_id", sessionID, "overall_score", s.Resume.Result.OverallScore)
	}
	return u.buildView(s.Resume), note, nil
}

func (u *resumeUsecase) SelectFile(ctx context.Context, sessionID string, file domain.FileHandle) (*domain.ResumeView, *domain.Notification, error) {
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		r := &s.Resume
		if !domain.ResumeTransitions().Allows(r.Phase, domain.ResumeSelectFile) {
			_, err := domain.ResumeTransitions().Next(r.Phase, domain.ResumeSelectFile)
			return illegal(err)
		}
		if !domain.IsAcceptedResumeType(file.MediaType) {
			return apperror.BadRequest(msgResumeRejected)
		}
		if err := r.Apply(domain.ResumeSelectFile); err != nil {
			return illegal(err)
		}
		r.File = &file
		return nil
	})
	if err != nil {
		if apperror.IsClientError(err) {
			metrics.ResumeUploads.WithLabelValues("rejected").Inc()
			logger.Log.Debug("resume rejected", "session_id", sessionID, "media_type", file.MediaType)
		}
		return nil, nil, err
	}

	metrics.ResumeUploads.WithLabelValues("accepted").Inc()
	logger.Log.Info("resume selected", "session_id", sessionID, "media_type", file.MediaType, "size", file.Size)
	return u.buildView(s.Resume), domain.Success(msgResumeUploaded), nil
}

func (u *resumeUsecase) RemoveFile(ctx context.Context, sessionID string) (*domain.ResumeView, error) {
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		if err := s.Resume.Apply(domain.ResumeRemoveFile); err != nil {
			return illegal(err)
		}
		s.Resume.File = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.buildView(s.Resume), nil
}

func (u *resumeUsecase) StartAnalysis(ctx context.Context, sessionID string) (*domain.ResumeView, error) {
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		r := &s.Resume
		if !domain.ResumeTransitions().Allows(r.Phase, domain.ResumeStartAnalysis) {
			_, err := domain.ResumeTransitions().Next(r.Phase, domain.ResumeStartAnalysis)
			return illegal(err)
		}
		if r.File == nil {
			return apperror.BadRequest(msgResumeMissing)
		}
		if err := r.Apply(domain.ResumeStartAnalysis); err != nil {
			return illegal(err)
		}
		started := u.store.Now()
		r.AnalysisStartedAt = &started
		r.Result = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.recordTransition(domain.ResumeStartAnalysis)
	return u.buildView(s.Resume), nil
}

func (u *resumeUsecase) AnalyzeNew(ctx context.Context, sessionID string) (*domain.ResumeView, error) {
	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		if err := s.Resume.Apply(domain.ResumeAnalyzeNew); err != nil {
			return illegal(err)
		}
		s.Resume = domain.NewResumeState()
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.recordTransition(domain.ResumeAnalyzeNew)
	return u.buildView(s.Resume), nil
}

// ready reports whether a busy analysis has run for the full delay
func (u *resumeUsecase) ready(r domain.ResumeState) bool {
	if r.Phase != domain.ResumeBusy || r.AnalysisStartedAt == nil || r.File == nil {
		return false
	}
	return !u.store.Now().Before(r.AnalysisStartedAt.Add(u.delay))
}

func (u *resumeUsecase) buildView(r domain.ResumeState) *domain.ResumeView {
	view := &domain.ResumeView{
		Phase:              r.Phase,
		File:               r.File,
		CanStartAnalysis:   r.Phase == domain.ResumeUpload && r.File != nil,
		Result:             r.Result,
		AcceptedExtensions: domain.AcceptedResumeExtensions,
		MaxUploadMB:        u.maxUploadMB,
	}
	if r.Phase == domain.ResumeBusy {
		view.Progress = append([]domain.ProgressIndicator(nil), u.catalog.AnalysisProgress...)
		if r.AnalysisStartedAt != nil {
			readyAt := r.AnalysisStartedAt.Add(u.delay)
			view.ReadyAt = &readyAt
		}
	}
	return view
}

func (u *resumeUsecase) recordTransition(action domain.ResumeAction) {
	metrics.FlowTransitions.WithLabelValues("resume", string(action)).Inc()
}
