package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	DeleteQuestion(ctx context.Context, id uint) (uint, error)
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error)
	SearchQuestions(ctx context.Context, term string) (*dto.SearchQuestionsResponse, error)
	ListQuestionsByCategory(ctx context.Context, categoryID string, page int) (*dto.CategoryQuestionsResponse, error)
}

type questionService struct {
	repo         repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	validate     *validator.Validate
}

func NewQuestionService(repo repository.QuestionRepository, categoryRepo repository.CategoryRepository) QuestionService {
	return &questionService{
		repo:         repo,
		categoryRepo: categoryRepo,
		validate:     validator.New(),
	}
}

func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	questions, err := s.page(ctx, repository.QuestionFilter{}, page)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("page %d is empty: %w", page, ErrNotFound)
	}

	total, err := s.repo.Count(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	labels := categoryLabels(categories)

	items, err := toQuestionResponses(questions)
	if err != nil {
		return nil, err
	}

	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       items,
		TotalQuestions:  total,
		Categories:      labels,
		CurrentCategory: labels,
	}, nil
}

// DeleteQuestion reports any failure to remove an existing question as ErrNotFound as well.
func (s *questionService) DeleteQuestion(ctx context.Context, id uint) (uint, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return 0, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return 0, fmt.Errorf("delete question %d: %v: %w", id, err, ErrNotFound)
	}
	log.Info().Uint("questionID", id).Msg("Question deleted")
	return id, nil
}

// CreateQuestion persists a new question and returns the given page of the full list.
// A missing field is ErrNotFound; an out-of-range difficulty or a storage failure is ErrUnprocessable.
func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			// category 0 never names a category and counts as missing
			if fe.Tag() == "required" || fe.Tag() == "ne" {
				return nil, fmt.Errorf("missing field %s: %w", fe.Field(), ErrNotFound)
			}
		}
		return nil, fmt.Errorf("invalid question: %v: %w", verrs, ErrUnprocessable)
	}

	question := model.Question{}
	if err := copier.Copy(&question, &req); err != nil {
		return nil, fmt.Errorf("map question: %v: %w", err, ErrUnprocessable)
	}
	question.Category = req.Category.String()
	question.Difficulty = int(req.Difficulty)

	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("create question: %v: %w", err, ErrUnprocessable)
	}

	questions, err := s.page(ctx, repository.QuestionFilter{}, page)
	if err != nil {
		return nil, fmt.Errorf("list after create: %v: %w", err, ErrUnprocessable)
	}
	total, err := s.repo.Count(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, fmt.Errorf("count after create: %v: %w", err, ErrUnprocessable)
	}
	items, err := toQuestionResponses(questions)
	if err != nil {
		return nil, fmt.Errorf("map questions: %v: %w", err, ErrUnprocessable)
	}

	log.Info().Uint("questionID", question.ID).Str("category", question.Category).Msg("Question created")
	return &dto.CreateQuestionResponse{
		Success:        true,
		NewID:          question.ID,
		Questions:      items,
		TotalQuestions: total,
	}, nil
}

// SearchQuestions matches term case-insensitively anywhere in the question text.
// TotalQuestions counts the whole collection, not only the matches.
func (s *questionService) SearchQuestions(ctx context.Context, term string) (*dto.SearchQuestionsResponse, error) {
	if term == "" {
		return nil, fmt.Errorf("empty search term: %w", ErrBadRequest)
	}

	matches, err := s.repo.Find(ctx, repository.QuestionFilter{SearchTerm: term}, 0, 0)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no question matches %q: %w", term, ErrNotFound)
	}

	total, err := s.repo.Count(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, err
	}

	current := make([]string, 0, len(matches))
	for _, q := range matches {
		current = append(current, q.Category)
	}
	items, err := toQuestionResponses(matches)
	if err != nil {
		return nil, err
	}

	return &dto.SearchQuestionsResponse{
		Success:         true,
		Questions:       items,
		TotalQuestions:  total,
		CurrentCategory: current,
	}, nil
}

// ListQuestionsByCategory is ErrBadRequest when the category holds no questions at all
// and ErrNotFound when only the requested page is empty.
func (s *questionService) ListQuestionsByCategory(ctx context.Context, categoryID string, page int) (*dto.CategoryQuestionsResponse, error) {
	filter := repository.QuestionFilter{Category: &categoryID}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fmt.Errorf("category %q has no questions: %w", categoryID, ErrBadRequest)
	}

	questions, err := s.page(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("category %q page %d is empty: %w", categoryID, page, ErrNotFound)
	}
	items, err := toQuestionResponses(questions)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       items,
		TotalQuestions:  total,
		CurrentCategory: categoryID,
	}, nil
}

func (s *questionService) page(ctx context.Context, filter repository.QuestionFilter, page int) ([]model.Question, error) {
	offset, ok := pageOffset(page)
	if !ok {
		return nil, nil
	}
	return s.repo.Find(ctx, filter, offset, QuestionsPerPage)
}

func toQuestionResponses(questions []model.Question) ([]dto.QuestionResponse, error) {
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		var r dto.QuestionResponse
		if err := copier.Copy(&r, &questions[i]); err != nil {
			return nil, fmt.Errorf("map question %d: %w", questions[i].ID, err)
		}
		resp = append(resp, r)
	}
	return resp, nil
}

func categoryLabels(categories []model.Category) []string {
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.Type)
	}
	return labels
}
