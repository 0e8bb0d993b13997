package repository

import (
	"context"
	"strings"

	"github.com/lshigami/trivia/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows question queries. Zero values apply no restriction.
type QuestionFilter struct {
	Category   *string // exact match on questions.category
	SearchTerm string  // case-insensitive substring of the question text
	ExcludeIDs []uint
}

type QuestionRepository interface {
	Find(ctx context.Context, filter QuestionFilter, offset, limit int) ([]model.Question, error)
	Count(ctx context.Context, filter QuestionFilter) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	Create(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) scoped(ctx context.Context, filter QuestionFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Question{})
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if filter.SearchTerm != "" {
		q = q.Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(filter.SearchTerm)+"%")
	}
	if len(filter.ExcludeIDs) > 0 {
		q = q.Where("id NOT IN ?", filter.ExcludeIDs)
	}
	return q
}

// Find returns matching questions ordered by id. A limit <= 0 returns every match.
func (r *questionRepository) Find(ctx context.Context, filter QuestionFilter, offset, limit int) ([]model.Question, error) {
	var questions []model.Question
	q := r.scoped(ctx, filter).Order("id ASC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Count(ctx context.Context, filter QuestionFilter) (int64, error) {
	var total int64
	if err := r.scoped(ctx, filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
