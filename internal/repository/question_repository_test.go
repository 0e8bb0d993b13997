package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/lshigami/trivia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestQuestionRepositoryFind(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(testutil.NewDB(t, true))

	all, err := repo.Find(ctx, repository.QuestionFilter{}, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 19)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	page, err := repo.Find(ctx, repository.QuestionFilter{}, 10, 10)
	require.NoError(t, err)
	require.Len(t, page, 9)
	assert.Equal(t, all[10].ID, page[0].ID)

	science, err := repo.Find(ctx, repository.QuestionFilter{Category: strPtr("1")}, 0, 0)
	require.NoError(t, err)
	require.Len(t, science, 3)
	for _, q := range science {
		assert.Equal(t, "1", q.Category)
	}

	rest, err := repo.Find(ctx, repository.QuestionFilter{
		Category:   strPtr("1"),
		ExcludeIDs: []uint{science[0].ID, science[1].ID},
	}, 0, 0)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, science[2].ID, rest[0].ID)
}

func TestQuestionRepositorySearch(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(testutil.NewDB(t, true))

	found, err := repo.Find(ctx, repository.QuestionFilter{SearchTerm: "TITLE"}, 0, 0)
	require.NoError(t, err)
	require.Len(t, found, 2)

	total, err := repo.Count(ctx, repository.QuestionFilter{SearchTerm: "world cup"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// LIKE wildcards in the term match literally.
	total, err = repo.Count(ctx, repository.QuestionFilter{SearchTerm: "%"})
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, repo.Create(ctx, &model.Question{Question: "What is 100% of 5?", Answer: "5", Category: "1", Difficulty: 1}))
	total, err = repo.Count(ctx, repository.QuestionFilter{SearchTerm: "100%"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestQuestionRepositorySearchNonASCII(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(testutil.NewDB(t, true))

	q := &model.Question{Question: "Ärger im Ölbad?", Answer: "Ja", Category: "5", Difficulty: 2}
	require.NoError(t, repo.Create(ctx, q))

	for _, term := range []string{"Ärger", "ärger", "ÄRGER", "im ölbad", "ÖLBAD?"} {
		found, err := repo.Find(ctx, repository.QuestionFilter{SearchTerm: term}, 0, 0)
		require.NoError(t, err, term)
		require.Len(t, found, 1, term)
		assert.Equal(t, q.ID, found[0].ID, term)
	}

	total, err := repo.Count(ctx, repository.QuestionFilter{SearchTerm: "ärgernis"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestQuestionRepositoryCreateDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(testutil.NewDB(t, false))

	q := &model.Question{Question: "Dummy Question", Answer: "Yes indeed", Category: "2", Difficulty: 3}
	require.NoError(t, repo.Create(ctx, q))
	require.NotZero(t, q.ID)

	got, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dummy Question", got.Question)

	require.NoError(t, repo.Delete(ctx, q.ID))

	_, err = repo.FindByID(ctx, q.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = repo.Delete(ctx, q.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCategoryRepositoryFindAll(t *testing.T) {
	ctx := context.Background()

	empty, err := repository.NewCategoryRepository(testutil.NewDB(t, false)).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	categories, err := repository.NewCategoryRepository(testutil.NewDB(t, true)).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "Science", categories[0].Type)
	assert.Equal(t, "Sports", categories[5].Type)
}
