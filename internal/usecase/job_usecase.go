package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"careerai-web/internal/domain"
	"careerai-web/pkg/apperror"
	"careerai-web/pkg/metrics"
	"careerai-web/pkg/validation"
)

const (
	msgJobSaved   = "Job saved successfully!"
	msgJobRemoved = "Job removed from saved list"
)

type jobUsecase struct {
	store    *SessionStore
	catalog  *domain.Catalog
	validate *validator.Validate
}

func NewJobUsecase(store *SessionStore, catalog *domain.Catalog, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		store:    store,
		catalog:  catalog,
		validate: validate,
	}
}

// List renders the catalog with the session's stored filter applied
func (u *jobUsecase) List(ctx context.Context, sessionID string) (*domain.JobListing, error) {
	s, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.buildListing(s.Jobs), nil
}

// ApplyFilter stores the filter inputs and returns the narrowed listing
func (u *jobUsecase) ApplyFilter(ctx context.Context, sessionID string, filter domain.JobFilter) (*domain.JobListing, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if err := u.validate.Struct(filter); err != nil {
		return nil, apperror.New(http.StatusBadRequest, strings.Join(validation.FormatValidationErrors(err), "; "), err)
	}

	s, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		s.Jobs.Filter = filter
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.buildListing(s.Jobs), nil
}

// ToggleSaved flips the saved flag of jobID and reports the new state
func (u *jobUsecase) ToggleSaved(ctx context.Context, sessionID string, jobID int64) (bool, *domain.Notification, error) {
	if _, ok := u.catalog.JobByID(jobID); !ok {
		return false, nil, apperror.NotFound("Job not found")
	}

	var saved bool
	_, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		saved = s.Jobs.Saved.Toggle(jobID)
		return nil
	})
	if err != nil {
		return false, nil, err
	}

	if saved {
		metrics.SavedJobToggles.WithLabelValues("saved").Inc()
		return true, domain.Success(msgJobSaved), nil
	}
	metrics.SavedJobToggles.WithLabelValues("removed").Inc()
	return false, domain.Success(msgJobRemoved), nil
}

func (u *jobUsecase) buildListing(state domain.JobState) *domain.JobListing {
	jobs := u.catalog.FilterJobs(state.Filter)
	cards := make([]domain.JobCard, 0, len(jobs))
	for _, j := range jobs {
		cards = append(cards, domain.NewJobCard(j, state.Saved.Has(j.ID)))
	}

	return &domain.JobListing{
		Jobs:              cards,
		Total:             len(cards),
		CatalogSize:       len(u.catalog.Jobs),
		SavedIDs:          state.Saved.IDs(),
		Filter:            state.Filter,
		LocationOptions:   u.catalog.LocationOptions,
		ExperienceOptions: u.catalog.ExperienceLevels,
	}
}
