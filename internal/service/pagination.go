package service

// QuestionsPerPage is the fixed size of every paginated question list.
const QuestionsPerPage = 10

// pageOffset returns the zero-based offset of page. ok is false for pages below 1,
// which can never hold items.
func pageOffset(page int) (offset int, ok bool) {
	if page < 1 {
		return 0, false
	}
	return (page - 1) * QuestionsPerPage, true
}
