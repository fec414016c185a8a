package usecase

import (
	"context"

	"careerai-web/internal/domain"
)

// CannedResumeAnalyzer returns the catalog's sample analysis for every file
type CannedResumeAnalyzer struct {
	catalog *domain.Catalog
}

func NewCannedResumeAnalyzer(catalog *domain.Catalog) *CannedResumeAnalyzer {
	return &CannedResumeAnalyzer{catalog: catalog}
}

func (a *CannedResumeAnalyzer) Analyze(ctx context.Context, file domain.FileHandle) (*domain.ResumeAnalysis, error) {
	return a.catalog.ResumeAnalysis.Clone(), nil
}
