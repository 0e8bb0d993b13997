package dto

// QuestionsPostRequest is the body of POST /questions. A non-empty SearchTerm selects a search,
// otherwise the remaining fields describe a question to create.
type QuestionsPostRequest struct {
	SearchTerm string `json:"searchTerm"`
	CreateQuestionRequest
}

type CreateQuestionRequest struct {
	Question   string     `json:"question" validate:"required"`
	Answer     string     `json:"answer" validate:"required"`
	Category   FlexString `json:"category" validate:"required,ne=0"`
	Difficulty FlexInt    `json:"difficulty" validate:"required,min=1,max=5"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizRequest asks for the next quiz question.
type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type QuizCategory struct {
	ID   FlexString `json:"id"`
	Type string     `json:"type,omitempty"`
}

// AllCategories reports whether the category selects every question (no category, id 0 or empty).
func (c *QuizCategory) AllCategories() bool {
	return c == nil || c.ID == "" || c.ID == "0"
}
