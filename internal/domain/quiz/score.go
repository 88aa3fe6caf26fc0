package quiz

import (
	"math"
	"strings"
)

// Normalize prepares a response for comparison: leading/trailing whitespace
// is trimmed and the string is lower-cased. No other transformation is
// applied, so grading is a verbatim string match.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsCorrect reports whether a response matches the canonical answer after
// normalization. An empty response never matches a non-empty answer.
func IsCorrect(response, correctAnswer string) bool {
	return Normalize(response) == Normalize(correctAnswer)
}

// Grade counts correct answers and computes the percentage score, rounded
// to the nearest integer. Answers are matched to questions by ID; a question
// with no matching record counts as incorrect. total must be > 0.
func Grade(questions []Question, answers []Answer) (correct, score int) {
	byID := make(map[string]string, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a.Response
	}

	for _, q := range questions {
		if IsCorrect(byID[q.ID], q.CorrectAnswer) {
			correct++
		}
	}

	score = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	return correct, score
}
