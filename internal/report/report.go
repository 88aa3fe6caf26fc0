// Package report turns attempt history into display-ready aggregates.
// Everything here is a pure reduction over its inputs — no mutation,
// no external state.
package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/studydesk/backend/internal/domain/quiz"
)

// QuestionResult is the per-question breakdown of one attempt.
type QuestionResult struct {
	Question quiz.Question
	Response string
	Correct  bool
}

// Breakdown evaluates every question of an attempt with the same
// normalized-equality rule used for scoring.
func Breakdown(attempt *quiz.Attempt) []QuestionResult {
	responses := make(map[string]string, len(attempt.Answers))
	for _, a := range attempt.Answers {
		responses[a.QuestionID] = a.Response
	}

	results := make([]QuestionResult, len(attempt.Questions))
	for i, q := range attempt.Questions {
		resp := responses[q.ID]
		results[i] = QuestionResult{
			Question: q,
			Response: resp,
			Correct:  quiz.IsCorrect(resp, q.CorrectAnswer),
		}
	}
	return results
}

// AverageScore is the simple mean of attempt scores, rounded to the nearest
// integer. An empty history averages to 0.
func AverageScore(attempts []*quiz.Attempt) int {
	if len(attempts) == 0 {
		return 0
	}
	sum := 0
	for _, a := range attempts {
		sum += a.Score
	}
	return int(math.Round(float64(sum) / float64(len(attempts))))
}

// TrendPoint is one bar of the recent-performance chart.
type TrendPoint struct {
	Label string
	Score int
}

// Trend returns chart points for the at-most-n most recent attempts, oldest
// first. attempts is assumed to be in insertion (chronological) order.
func Trend(attempts []*quiz.Attempt, n int) []TrendPoint {
	if n < len(attempts) {
		attempts = attempts[len(attempts)-n:]
	}

	points := make([]TrendPoint, len(attempts))
	for i, a := range attempts {
		points[i] = TrendPoint{
			Label: chartLabel(a.DocumentName),
			Score: a.Score,
		}
	}
	return points
}

// chartLabel shortens a document name so it fits under a chart bar.
func chartLabel(name string) string {
	name = strings.TrimSuffix(name, ".pdf")
	if len(name) > 15 {
		return name[:15] + "..."
	}
	return name
}

// Stats is the dashboard summary computed from the full attempt history.
type Stats struct {
	TotalAttempts int
	AverageScore  int
	Strength      string // document with the highest per-document average
	Weakness      string // document with the lowest per-document average
}

// Summarize computes dashboard statistics. Strength and weakness are the
// documents with the best and worst average score across the history, and
// are empty when no attempts exist.
func Summarize(attempts []*quiz.Attempt) Stats {
	stats := Stats{
		TotalAttempts: len(attempts),
		AverageScore:  AverageScore(attempts),
	}
	if len(attempts) == 0 {
		return stats
	}

	type agg struct {
		name  string
		sum   int
		count int
	}
	perDoc := make(map[string]*agg)
	var order []string // stable iteration, first-seen order breaks ties
	for _, a := range attempts {
		d, ok := perDoc[a.DocumentID]
		if !ok {
			d = &agg{name: a.DocumentName}
			perDoc[a.DocumentID] = d
			order = append(order, a.DocumentID)
		}
		d.sum += a.Score
		d.count++
	}

	bestAvg, worstAvg := -1.0, 101.0
	for _, docID := range order {
		d := perDoc[docID]
		avg := float64(d.sum) / float64(d.count)
		if avg > bestAvg {
			bestAvg = avg
			stats.Strength = d.name
		}
		if avg < worstAvg {
			worstAvg = avg
			stats.Weakness = d.name
		}
	}
	return stats
}

// Notification is a derived activity-feed entry.
type Notification struct {
	Text string
	Time string // RFC3339 completion time of the triggering attempt
}

// Notifications derives an activity feed from the attempt history, newest
// first. One entry per attempt, plus a review reminder when the running
// average drops below 70.
func Notifications(attempts []*quiz.Attempt) []Notification {
	var feed []Notification
	for i := len(attempts) - 1; i >= 0; i-- {
		a := attempts[i]
		feed = append(feed, Notification{
			Text: fmt.Sprintf("You scored %d%% on the %q quiz.", a.Score, strings.TrimSuffix(a.DocumentName, ".pdf")),
			Time: a.CompletedAt.Format(time.RFC3339),
		})
	}

	if len(attempts) > 0 && AverageScore(attempts) < 70 {
		feed = append(feed, Notification{
			Text: "Don't forget to review your weak points.",
			Time: attempts[len(attempts)-1].CompletedAt.Format(time.RFC3339),
		})
	}
	return feed
}
