package dto

type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type CategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	Categories      []string           `json:"categories"`
	CurrentCategory []string           `json:"current_category"`
}

type DeleteQuestionResponse struct {
	Success           bool `json:"success"`
	DeletedQuestionID uint `json:"deleted_question_id"`
}

type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory []string           `json:"current_category"`
}

type CreateQuestionResponse struct {
	Success        bool               `json:"success"`
	NewID          uint               `json:"new_id"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
}

// QuizResponse carries a nil Question once every candidate has been asked.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	400: "bad request",
	404: "resource not found",
	405: "method not allowed",
	422: "unprocessable",
	500: "internal server error",
}

// NewErrorResponse builds the failure envelope for an HTTP status code.
func NewErrorResponse(status int) ErrorResponse {
	msg, ok := errorMessages[status]
	if !ok {
		msg = errorMessages[500]
	}
	return ErrorResponse{Success: false, Error: status, Message: msg}
}
