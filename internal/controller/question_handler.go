package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/rs/zerolog/log"
)

// GetQuestionsHandler godoc
// @Summary List questions
// @Description Get one page (10 items) of questions ordered by id, with the total count and all category labels
// @Tags questions
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse "Page is empty"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (ctrl *Controller) GetQuestionsHandler(c *gin.Context) {
	resp, err := ctrl.questionSvc.ListQuestions(c.Request.Context(), pageParam(c))
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found or could not be deleted"
// @Router /questions/{question_id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("question_id"), 10, 32)
	if err != nil {
		log.Warn().Str("question_id", c.Param("question_id")).Msg("DeleteQuestion: non-numeric id")
		ctrl.abort(c, http.StatusNotFound)
		return
	}

	deleted, err := ctrl.questionSvc.DeleteQuestion(c.Request.Context(), uint(id))
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{Success: true, DeletedQuestionID: deleted})
}

// CreateOrSearchQuestionsHandler godoc
// @Summary Create or search questions
// @Description With a non-empty searchTerm, return questions whose text contains it (case-insensitive).
// @Description Otherwise create a question from question, answer, category and difficulty.
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page of the full list returned after a create" default(1)
// @Param body body dto.QuestionsPostRequest true "Search term or new question"
// @Success 200 {object} dto.CreateQuestionResponse "Question created"
// @Success 200 {object} dto.SearchQuestionsResponse "Search results"
// @Failure 400 {object} dto.ErrorResponse "Malformed JSON"
// @Failure 404 {object} dto.ErrorResponse "Empty body, missing field or no match"
// @Failure 422 {object} dto.ErrorResponse "Question could not be stored"
// @Router /questions [post]
func (ctrl *Controller) CreateOrSearchQuestionsHandler(c *gin.Context) {
	var req dto.QuestionsPostRequest
	empty, err := readJSON(c, &req)
	if err != nil {
		log.Warn().Err(err).Msg("CreateOrSearchQuestions: Failed to bind JSON")
		ctrl.abort(c, http.StatusBadRequest)
		return
	}
	if empty {
		ctrl.abort(c, http.StatusNotFound)
		return
	}

	if req.SearchTerm != "" {
		resp, err := ctrl.questionSvc.SearchQuestions(c.Request.Context(), req.SearchTerm)
		if err != nil {
			ctrl.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := ctrl.questionSvc.CreateQuestion(c.Request.Context(), req.CreateQuestionRequest, pageParam(c))
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchQuestionsHandler godoc
// @Summary Search questions
// @Description Return questions whose text contains searchTerm (case-insensitive)
// @Tags questions
// @Accept json
// @Produce json
// @Param body body dto.SearchQuestionsRequest true "Search term"
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed JSON or empty search term"
// @Failure 404 {object} dto.ErrorResponse "No match"
// @Router /questions/search [post]
func (ctrl *Controller) SearchQuestionsHandler(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if _, err := readJSON(c, &req); err != nil {
		log.Warn().Err(err).Msg("SearchQuestions: Failed to bind JSON")
		ctrl.abort(c, http.StatusBadRequest)
		return
	}

	resp, err := ctrl.questionSvc.SearchQuestions(c.Request.Context(), req.SearchTerm)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestionsByCategoryHandler godoc
// @Summary List questions of a category
// @Description Get one page (10 items) of the questions whose category equals category_id
// @Tags categories
// @Produce json
// @Param category_id path string true "Category ID"
// @Param page query int false "Page number, starting at 1" default(1)
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Category has no questions"
// @Failure 404 {object} dto.ErrorResponse "Page is empty"
// @Router /categories/{category_id}/questions [get]
func (ctrl *Controller) GetQuestionsByCategoryHandler(c *gin.Context) {
	resp, err := ctrl.questionSvc.ListQuestionsByCategory(c.Request.Context(), c.Param("category_id"), pageParam(c))
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
