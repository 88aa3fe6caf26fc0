package quiz_test

import (
	"testing"

	"github.com/studydesk/backend/internal/domain/quiz"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ampere", "ampere"},
		{"  F = ma  ", "f = ma"},
		{"\tGravity\n", "gravity"},
		{"", ""},
	}
	for _, c := range cases {
		if got := quiz.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsCorrect_IgnoresCaseAndWhitespace(t *testing.T) {
	if !quiz.IsCorrect("  AMPERE ", "Ampere") {
		t.Error("expected case- and whitespace-insensitive match")
	}
}

func TestIsCorrect_NoFuzzyMatching(t *testing.T) {
	// Grading is a verbatim comparison after normalization; near-misses
	// do not count.
	if quiz.IsCorrect("F=ma", "F = ma") {
		t.Error("expected internal whitespace to matter")
	}
	if quiz.IsCorrect("", "Gravity") {
		t.Error("expected empty response to be incorrect")
	}
}

func TestGrade_ThreeOfFiveIsSixty(t *testing.T) {
	questions := []quiz.Question{
		{ID: "q1", CorrectAnswer: "Ampere"},
		{ID: "q2", CorrectAnswer: "F = ma"},
		{ID: "q3", CorrectAnswer: "Gravity"},
		{ID: "q4", CorrectAnswer: "KE = 1/2 mv^2"},
		{ID: "q5", CorrectAnswer: "[MLT^-2]"},
	}
	answers := []quiz.Answer{
		{QuestionID: "q1", Response: "ampere"},
		{QuestionID: "q2", Response: "F = ma"},
		{QuestionID: "q3", Response: "Friction"},
		{QuestionID: "q4", Response: "  ke = 1/2 mv^2  "},
		{QuestionID: "q5"}, // left blank
	}

	correct, score := quiz.Grade(questions, answers)
	if correct != 3 {
		t.Errorf("expected 3 correct, got %d", correct)
	}
	if score != 60 {
		t.Errorf("expected score 60, got %d", score)
	}
}

func TestGrade_RoundsToNearestInteger(t *testing.T) {
	questions := []quiz.Question{
		{ID: "q1", CorrectAnswer: "a"},
		{ID: "q2", CorrectAnswer: "b"},
		{ID: "q3", CorrectAnswer: "c"},
	}

	answers := []quiz.Answer{{QuestionID: "q1", Response: "a"}}
	if _, score := quiz.Grade(questions, answers); score != 33 {
		t.Errorf("1/3 correct: expected 33, got %d", score)
	}

	answers = append(answers, quiz.Answer{QuestionID: "q2", Response: "b"})
	if _, score := quiz.Grade(questions, answers); score != 67 {
		t.Errorf("2/3 correct: expected 67, got %d", score)
	}
}

func TestGrade_MissingAnswerRecordsCountIncorrect(t *testing.T) {
	questions := []quiz.Question{
		{ID: "q1", CorrectAnswer: "a"},
		{ID: "q2", CorrectAnswer: "b"},
	}

	correct, score := quiz.Grade(questions, nil)
	if correct != 0 || score != 0 {
		t.Errorf("expected 0 correct and score 0, got %d and %d", correct, score)
	}
}
