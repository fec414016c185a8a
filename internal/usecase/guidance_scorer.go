package usecase

import (
	"context"
	"fmt"

	"careerai-web/internal/domain"
)

// StaticGuidanceScorer returns the catalog's fixed result for each user type.
// Answers and profile do not influence the outcome.
type StaticGuidanceScorer struct {
	catalog *domain.Catalog
}

func NewStaticGuidanceScorer(catalog *domain.Catalog) *StaticGuidanceScorer {
	return &StaticGuidanceScorer{catalog: catalog}
}

func (s *StaticGuidanceScorer) Score(ctx context.Context, userType domain.UserType, answers domain.QuizAnswerSet, profile domain.ProfessionalProfileDraft) (*domain.GuidanceResult, error) {
	traits, ok := s.catalog.Traits[userType]
	if !ok {
		return nil, fmt.Errorf("no traits configured for user type %q", userType)
	}

	basedOn := "aptitude test"
	if userType == domain.UserTypeProfessional {
		basedOn = "professional profile"
	}

	return &domain.GuidanceResult{
		UserType:    userType,
		Traits:      append([]domain.TraitScore(nil), traits...),
		Suggestions: append([]string(nil), s.catalog.CareerSuggestions[userType]...),
		BasedOn:     basedOn,
	}, nil
}
