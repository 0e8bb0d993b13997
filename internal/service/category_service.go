package service

import (
	"context"
	"fmt"

	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]string, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// ListCategories returns every category label ordered by id.
func (s *categoryService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load categories")
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories: %w", ErrNotFound)
	}
	return categoryLabels(categories), nil
}
