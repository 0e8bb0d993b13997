package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	categorySvc service.CategoryService
	questionSvc service.QuestionService
	quizSvc     service.QuizService
}

func NewController(cSvc service.CategoryService, qSvc service.QuestionService, quizSvc service.QuizService) *Controller {
	return &Controller{
		categorySvc: cSvc,
		questionSvc: qSvc,
		quizSvc:     quizSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	categories := router.Group("/categories")
	categories.GET("", ctrl.GetCategoriesHandler)
	categories.GET("/:category_id/questions", ctrl.GetQuestionsByCategoryHandler)

	questions := router.Group("/questions")
	questions.GET("", ctrl.GetQuestionsHandler)
	questions.POST("", ctrl.CreateOrSearchQuestionsHandler) // create, or search when searchTerm is set
	questions.POST("/search", ctrl.SearchQuestionsHandler)
	questions.DELETE("/:question_id", ctrl.DeleteQuestionHandler)

	router.POST("/quizzes", ctrl.PlayQuizHandler)
}

// GetCategoriesHandler godoc
// @Summary List categories
// @Description Get the label of every category, ordered by id
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} dto.ErrorResponse "No categories"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /categories [get]
func (ctrl *Controller) GetCategoriesHandler(c *gin.Context) {
	labels, err := ctrl.categorySvc.ListCategories(c.Request.Context())
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Success: true, Categories: labels})
}

// fail maps a service error onto the failure envelope.
func (ctrl *Controller) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUnprocessable):
		status = http.StatusUnprocessableEntity
	}

	_ = c.Error(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	} else {
		log.Warn().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("Request rejected")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status))
}

func (ctrl *Controller) abort(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status))
}

// pageParam reads ?page=N. A missing or non-integer value means page 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// readJSON decodes the body into dst. empty reports a missing body or a JSON null, {} or [],
// in which case dst is left untouched.
func readJSON(c *gin.Context, dst any) (empty bool, err error) {
	raw, err := c.GetRawData()
	if err != nil {
		return false, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return true, nil
	}

	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false, err
	}
	switch v := probe.(type) {
	case nil:
		return true, nil
	case map[string]any:
		if len(v) == 0 {
			return true, nil
		}
	case []any:
		if len(v) == 0 {
			return true, nil
		}
	}
	return false, binding.JSON.BindBody(raw, dst)
}
