package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/config"
	"github.com/lshigami/trivia/internal/controller"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/lshigami/trivia/internal/server"
	"github.com/lshigami/trivia/internal/service"
	"github.com/lshigami/trivia/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, seed bool) *gin.Engine {
	t.Helper()
	db := testutil.NewDB(t, seed)
	questionRepo := repository.NewQuestionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	ctrl := controller.NewController(
		service.NewCategoryService(categoryRepo),
		service.NewQuestionService(questionRepo, categoryRepo),
		service.NewQuizService(questionRepo),
	)

	cfg := &config.Config{Server: config.Server{Mode: gin.TestMode}}
	router := server.NewGinEngine(cfg, prometheus.NewRegistry())
	ctrl.RegisterRoutes(router)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var data map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data), w.Body.String())
	return w, data
}

func assertFailure(t *testing.T, w *httptest.ResponseRecorder, data map[string]any, status int, message string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	assert.Equal(t, false, data["success"])
	assert.Equal(t, float64(status), data["error"])
	assert.Equal(t, message, data["message"])
}

func TestGetCategories(t *testing.T) {
	w, data := do(t, setupRouter(t, true), http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data["success"])
	assert.Len(t, data["categories"], 6)

	w, data = do(t, setupRouter(t, false), http.MethodGet, "/categories", nil)
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")
}

func TestGetQuestions(t *testing.T) {
	router := setupRouter(t, true)

	w, data := do(t, router, http.MethodGet, "/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data["success"])
	assert.Len(t, data["questions"], 10)
	assert.Greater(t, data["total_questions"].(float64), 10.0)
	assert.Len(t, data["categories"], 6)
	assert.NotNil(t, data["current_category"])

	w, data = do(t, router, http.MethodGet, "/questions?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, data["questions"], 9)

	w, data = do(t, router, http.MethodGet, "/questions?page=abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, data["questions"], 10)

	w, data = do(t, router, http.MethodGet, "/questions?page=1000", nil)
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")
}

func TestCreateThenDeleteQuestion(t *testing.T) {
	router := setupRouter(t, true)

	w, data := do(t, router, http.MethodPost, "/questions", map[string]any{
		"question":   "Dummy Question",
		"answer":     "Yes indeed",
		"category":   "2",
		"difficulty": 3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, data["success"])
	newID, ok := data["new_id"].(float64)
	require.True(t, ok)
	assert.Equal(t, 20.0, data["total_questions"])

	w, data = do(t, router, http.MethodDelete, fmt.Sprintf("/questions/%d", int(newID)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, newID, data["deleted_question_id"])

	w, data = do(t, router, http.MethodDelete, fmt.Sprintf("/questions/%d", int(newID)), nil)
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")

	w, data = do(t, router, http.MethodPost, "/questions", map[string]any{"searchTerm": "dummy"})
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")
}

func TestCreateQuestionFailures(t *testing.T) {
	router := setupRouter(t, true)

	w, data := do(t, router, http.MethodPost, "/questions", map[string]any{
		"question": "Dummy Question",
		"answer":   "Yes indeed",
		"category": "2",
	})
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")

	w, data = do(t, router, http.MethodPost, "/questions", map[string]any{
		"question": "Dummy Question", "answer": "Yes indeed", "category": 2, "difficulty": "7",
	})
	assertFailure(t, w, data, http.StatusUnprocessableEntity, "unprocessable")

	w, data = do(t, router, http.MethodPost, "/questions", map[string]any{
		"question": "Dummy Question", "answer": "Yes indeed", "category": 0, "difficulty": 3,
	})
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")

	w, data = do(t, router, http.MethodPost, "/questions", "{}")
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")

	w, data = do(t, router, http.MethodPost, "/questions", nil)
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")

	w, data = do(t, router, http.MethodPost, "/questions", "{not json")
	assertFailure(t, w, data, http.StatusBadRequest, "bad request")
}

func TestSearchQuestions(t *testing.T) {
	router := setupRouter(t, true)

	_, _ = do(t, router, http.MethodPost, "/questions", map[string]any{
		"question": "Dummy Question", "answer": "Yes indeed", "category": "2", "difficulty": 3,
	})

	for _, path := range []string{"/questions", "/questions/search"} {
		w, data := do(t, router, http.MethodPost, path, map[string]any{"searchTerm": "dummy"})
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, true, data["success"])
		require.Len(t, data["questions"], 1)
		q := data["questions"].([]any)[0].(map[string]any)
		assert.Equal(t, "Dummy Question", q["question"])
		assert.Equal(t, 20.0, data["total_questions"])
		assert.Equal(t, []any{"2"}, data["current_category"])
	}

	w, data := do(t, router, http.MethodPost, "/questions/search", map[string]any{"searchTerm": ""})
	assertFailure(t, w, data, http.StatusBadRequest, "bad request")

	_, _ = do(t, router, http.MethodPost, "/questions", map[string]any{
		"question": "Ärger im Ölbad", "answer": "Ja", "category": "5", "difficulty": 2,
	})
	for _, term := range []string{"Ärger", "ärger", "ÄRGER"} {
		w, data = do(t, router, http.MethodPost, "/questions", map[string]any{"searchTerm": term})
		require.Equal(t, http.StatusOK, w.Code, term)
		require.Len(t, data["questions"], 1, term)
		assert.Equal(t, "Ärger im Ölbad", data["questions"].([]any)[0].(map[string]any)["question"])
	}
}

func TestGetQuestionsByCategory(t *testing.T) {
	router := setupRouter(t, true)

	w, data := do(t, router, http.MethodGet, "/categories/1/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, "1", data["current_category"])
	assert.Equal(t, 3.0, data["total_questions"])
	for _, q := range data["questions"].([]any) {
		assert.Equal(t, "1", q.(map[string]any)["category"])
	}

	w, data = do(t, router, http.MethodGet, "/categories/1/questions?page=2", nil)
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")

	w, data = do(t, router, http.MethodGet, "/categories/99/questions", nil)
	assertFailure(t, w, data, http.StatusBadRequest, "bad request")
}

func TestPlayQuiz(t *testing.T) {
	router := setupRouter(t, true)

	for i := 0; i < 10; i++ {
		w, data := do(t, router, http.MethodPost, "/quizzes", map[string]any{
			"previous_questions": []int{2, 3},
			"quiz_category":      map[string]any{"type": "Science", "id": "1"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, data["success"])
		q := data["question"].(map[string]any)
		assert.NotEmpty(t, q["question"])
		assert.NotContains(t, []float64{2, 3}, q["id"])
		assert.Equal(t, "1", q["category"])
	}

	w, data := do(t, router, http.MethodPost, "/quizzes", map[string]any{"previous_questions": []int{1, 2, 5}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, []float64{1, 2, 5}, data["question"].(map[string]any)["id"])

	w, data = do(t, router, http.MethodPost, "/quizzes", map[string]any{
		"previous_questions": []int{16, 17, 18},
		"quiz_category":      map[string]any{"type": "Science", "id": 1},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data["success"])
	assert.Nil(t, data["question"])

	w, data = do(t, router, http.MethodPost, "/quizzes", "{}")
	assertFailure(t, w, data, http.StatusBadRequest, "bad request")
}

func TestRoutingErrors(t *testing.T) {
	router := setupRouter(t, true)

	w, data := do(t, router, http.MethodGet, "/categorical_questions", nil)
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")

	w, data = do(t, router, http.MethodPatch, "/categories", nil)
	assertFailure(t, w, data, http.StatusMethodNotAllowed, "method not allowed")

	w, data = do(t, router, http.MethodGet, "/questions/5", nil)
	assertFailure(t, w, data, http.StatusMethodNotAllowed, "method not allowed")

	w, data = do(t, router, http.MethodDelete, "/questions/abc", nil)
	assertFailure(t, w, data, http.StatusNotFound, "resource not found")
}

func TestCORSHeaders(t *testing.T) {
	router := setupRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/questions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}
