package provider

import (
	"context"
	"math/rand"
	"time"

	"github.com/studydesk/backend/internal/domain/chat"
	"github.com/studydesk/backend/internal/domain/document"
	"github.com/studydesk/backend/internal/domain/quiz"
	"github.com/studydesk/backend/internal/domain/video"
)

// Mock serves fixture questions, a canned chat answer, and canned video
// recommendations. It stands in for the real generation backend in offline
// mode and in tests. Latency simulates network delay; pass 0 for tests.
type Mock struct {
	latency time.Duration
}

var (
	_ quiz.QuestionSource = (*Mock)(nil)
	_ ChatAnswerer        = (*Mock)(nil)
	_ VideoRecommender    = (*Mock)(nil)
)

// NewMock creates a fixture-backed provider with the given simulated latency.
func NewMock(latency time.Duration) *Mock {
	return &Mock{latency: latency}
}

// sleep waits for the configured latency, or until ctx is cancelled.
func (m *Mock) sleep(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(m.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GenerateQuestions returns up to count fixture questions of the requested
// type, in random order.
func (m *Mock) GenerateQuestions(ctx context.Context, doc *document.Document, qt quiz.QuestionType, count int) ([]quiz.Question, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}

	pool, ok := mockQuestions[qt]
	if !ok {
		pool = mockQuestions[quiz.TypeMCQ]
	}

	shuffled := make([]quiz.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return shuffled, nil
}

// Ask returns a canned kinematics answer with a citation.
func (m *Mock) Ask(ctx context.Context, doc *document.Document, query string) (chat.Answer, error) {
	if err := m.sleep(ctx); err != nil {
		return chat.Answer{}, err
	}

	return chat.Answer{
		Text: "The chapter on 'Motion in a Straight Line' covers several key concepts of kinematics. " +
			"This includes the definitions and differences between position, path length, and displacement, " +
			"which are fundamental to describing motion.",
		Citation: &chat.Citation{
			PageNumber: 41,
			Quote: "Path length is a scalar quantity... whereas displacement is a vector quantity. " +
				"For example, if a car goes from a point A to a point B, and returns to A, " +
				"its path length is 2AB but displacement is zero.",
		},
	}, nil
}

// Recommend returns the canned video list.
func (m *Mock) Recommend(ctx context.Context, doc *document.Document) ([]video.Recommendation, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}

	recs := make([]video.Recommendation, len(mockVideos))
	copy(recs, mockVideos)
	return recs, nil
}

var mockQuestions = map[quiz.QuestionType][]quiz.Question{
	quiz.TypeMCQ: {
		{
			ID:            "mcq-1",
			Type:          quiz.TypeMCQ,
			Prompt:        "What is the SI unit for electric current?",
			Options:       []string{"Volt", "Ampere", "Ohm", "Watt"},
			CorrectAnswer: "Ampere",
			Explanation:   "Ampere is the base unit of electric current in the International System of Units (SI).",
		},
		{
			ID:            "mcq-2",
			Type:          quiz.TypeMCQ,
			Prompt:        "According to Newton's second law, what is the relationship between force, mass, and acceleration?",
			Options:       []string{"F = m/a", "F = ma", "F = a/m", "F = m+a"},
			CorrectAnswer: "F = ma",
			Explanation:   "Newton's second law states that the force acting on an object is equal to the mass of that object times its acceleration.",
		},
		{
			ID:            "mcq-3",
			Type:          quiz.TypeMCQ,
			Prompt:        "Which of these is a fundamental force in nature?",
			Options:       []string{"Friction", "Tension", "Gravity", "Air Resistance"},
			CorrectAnswer: "Gravity",
			Explanation:   "Gravity is one of the four fundamental forces of nature, along with the electromagnetic, strong nuclear, and weak nuclear forces.",
		},
		{
			ID:            "mcq-4",
			Type:          quiz.TypeMCQ,
			Prompt:        "What is the formula for kinetic energy?",
			Options:       []string{"KE = mgh", "KE = 1/2 mv^2", "KE = mv", "KE = 1/2 m^2v"},
			CorrectAnswer: "KE = 1/2 mv^2",
			Explanation:   "Kinetic energy is the energy an object possesses due to its motion, calculated as half of the mass times the square of its velocity.",
		},
		{
			ID:            "mcq-5",
			Type:          quiz.TypeMCQ,
			Prompt:        "The dimension of Force is:",
			Options:       []string{"[MLT^-2]", "[MLT^-1]", "[ML^2T^-2]", "[ML^2T^-1]"},
			CorrectAnswer: "[MLT^-2]",
			Explanation:   "Force = Mass x Acceleration. The dimension of mass is [M], and acceleration is [LT^-2]. Therefore, the dimension of force is [MLT^-2].",
		},
	},
	quiz.TypeSAQ: {
		{
			ID:            "saq-1",
			Type:          quiz.TypeSAQ,
			Prompt:        "Define \"inertia\" in one sentence.",
			CorrectAnswer: "Inertia is the property of matter by which it continues in its existing state of rest or uniform motion in a straight line, unless that state is changed by an external force.",
			Explanation:   "Inertia is a fundamental concept in physics, often summarized as \"an object in motion stays in motion, and an object at rest stays at rest\".",
		},
		{
			ID:            "saq-2",
			Type:          quiz.TypeSAQ,
			Prompt:        "What are the three modes of heat transfer?",
			CorrectAnswer: "Conduction, convection, and radiation.",
			Explanation:   "These are the three primary ways heat energy moves from a warmer area to a cooler one.",
		},
	},
	quiz.TypeLAQ: {
		{
			ID:            "laq-1",
			Type:          quiz.TypeLAQ,
			Prompt:        "Explain Newton's Three Laws of Motion with one real-world example for each.",
			CorrectAnswer: "First Law (Inertia): An object at rest stays at rest, an object in motion stays in motion. Example: A passenger in a car lurches forward when the car suddenly stops. Second Law (F=ma): The acceleration of an object is directly proportional to the net force and inversely proportional to its mass. Example: It is easier to push an empty shopping cart than a full one. Third Law: For every action, there is an equal and opposite reaction. Example: A rocket propels itself forward by expelling gas backward.",
			Explanation:   "These three laws form the foundation of classical mechanics and describe the relationship between an object and the forces acting upon it.",
		},
	},
}

var mockVideos = []video.Recommendation{
	{
		ID:           "yt-1",
		Title:        "Introduction to Kinematics - Motion in a Straight Line",
		Channel:      "Khan Academy",
		ThumbnailURL: "https://img.youtube.com/vi/ZM8ECpBuQeA/mqdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=ZM8ECpBuQeA",
	},
	{
		ID:           "yt-2",
		Title:        "Equations of Motion (Physics)",
		Channel:      "Physics Online",
		ThumbnailURL: "https://img.youtube.com/vi/vWYi_i_S3k8/mqdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=vWYi_i_S3k8",
	},
	{
		ID:           "yt-3",
		Title:        "Displacement, Velocity, and Acceleration",
		Channel:      "Bozeman Science",
		ThumbnailURL: "https://img.youtube.com/vi/v3-7_3-kIFg/mqdefault.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=v3-7_3-kIFg",
	},
}
