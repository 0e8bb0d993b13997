package service

import (
	"context"
	"testing"

	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/lshigami/trivia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuestionNeverRepeats(t *testing.T) {
	ctx := context.Background()
	svc := NewQuizService(repository.NewQuestionRepository(testutil.NewDB(t, true)))

	for _, category := range []*dto.QuizCategory{nil, {ID: "1"}, {ID: "2", Type: "Art"}, {ID: "0"}} {
		var previous []uint
		seen := map[uint]bool{}
		for {
			q, err := svc.NextQuestion(ctx, dto.QuizRequest{PreviousQuestions: previous, QuizCategory: category})
			require.NoError(t, err)
			if q == nil {
				break
			}
			assert.False(t, seen[q.ID], "question %d repeated", q.ID)
			if !category.AllCategories() {
				assert.Equal(t, category.ID.String(), q.Category)
			}
			seen[q.ID] = true
			previous = append(previous, q.ID)
		}

		switch {
		case category.AllCategories():
			assert.Len(t, seen, 19)
		case category.ID == "1":
			assert.Len(t, seen, 3)
		case category.ID == "2":
			assert.Len(t, seen, 4)
		}
	}
}

func TestNextQuestionExcludesPrevious(t *testing.T) {
	ctx := context.Background()
	svc := NewQuizService(repository.NewQuestionRepository(testutil.NewDB(t, true)))

	for i := 0; i < 20; i++ {
		q, err := svc.NextQuestion(ctx, dto.QuizRequest{
			PreviousQuestions: []uint{2, 3},
			QuizCategory:      &dto.QuizCategory{ID: "1"},
		})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.NotContains(t, []uint{2, 3}, q.ID)
	}
}

func TestNextQuestionUsesPicker(t *testing.T) {
	ctx := context.Background()
	svc := &quizService{
		repo: repository.NewQuestionRepository(testutil.NewDB(t, true)),
		pick: func(n int) int { return n - 1 },
	}

	q, err := svc.NextQuestion(ctx, dto.QuizRequest{QuizCategory: &dto.QuizCategory{ID: "1"}})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, uint(18), q.ID)
	assert.Equal(t, "Blood", q.Answer)
}

func TestNextQuestionUnknownCategory(t *testing.T) {
	svc := NewQuizService(repository.NewQuestionRepository(testutil.NewDB(t, true)))

	q, err := svc.NextQuestion(context.Background(), dto.QuizRequest{QuizCategory: &dto.QuizCategory{ID: "99"}})
	require.NoError(t, err)
	assert.Nil(t, q)
}
