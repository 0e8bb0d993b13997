package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/rs/zerolog/log"
)

// PlayQuizHandler godoc
// @Summary Next quiz question
// @Description Pick a random question from quiz_category (all categories when absent or id 0)
// @Description that is not in previous_questions. question is null once none remain.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param body body dto.QuizRequest true "Already asked question ids and the quiz category"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed body"
// @Router /quizzes [post]
func (ctrl *Controller) PlayQuizHandler(c *gin.Context) {
	var req dto.QuizRequest
	empty, err := readJSON(c, &req)
	if err != nil || empty {
		log.Warn().Err(err).Bool("empty", empty).Msg("PlayQuiz: unusable body")
		ctrl.abort(c, http.StatusBadRequest)
		return
	}

	question, err := ctrl.quizSvc.NextQuestion(c.Request.Context(), req)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuizResponse{Success: true, Question: question})
}
