package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	// NextQuestion returns nil once every candidate question has already been asked.
	NextQuestion(ctx context.Context, req dto.QuizRequest) (*dto.QuestionResponse, error)
}

type quizService struct {
	repo repository.QuestionRepository
	pick func(n int) int // index in [0, n)
}

func NewQuizService(repo repository.QuestionRepository) QuizService {
	return &quizService{repo: repo, pick: rand.Intn}
}

func (s *quizService) NextQuestion(ctx context.Context, req dto.QuizRequest) (*dto.QuestionResponse, error) {
	filter := repository.QuestionFilter{ExcludeIDs: req.PreviousQuestions}
	if !req.QuizCategory.AllCategories() {
		category := req.QuizCategory.ID.String()
		filter.Category = &category
	}

	candidates, err := s.repo.Find(ctx, filter, 0, 0)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		log.Info().Int("asked", len(req.PreviousQuestions)).Msg("Quiz exhausted")
		return nil, nil
	}

	picked := candidates[s.pick(len(candidates))]
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &picked); err != nil {
		return nil, fmt.Errorf("map question %d: %w", picked.ID, err)
	}
	return &resp, nil
}
