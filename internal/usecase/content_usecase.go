package usecase

import (
	"context"

	"careerai-web/internal/domain"
)

type contentUsecase struct {
	catalog *domain.Catalog
}

func NewContentUsecase(catalog *domain.Catalog) domain.ContentUsecase {
	return &contentUsecase{catalog: catalog}
}

func (u *contentUsecase) Home(ctx context.Context) (*domain.HomeContent, error) {
	home := u.catalog.Home
	return &home, nil
}

func (u *contentUsecase) Dashboard(ctx context.Context) (*domain.DashboardContent, error) {
	dashboard := u.catalog.Dashboard
	return &dashboard, nil
}
