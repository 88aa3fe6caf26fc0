package provider

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/studydesk/backend/internal/domain/chat"
	"github.com/studydesk/backend/internal/domain/document"
	"github.com/studydesk/backend/internal/domain/quiz"
	"github.com/studydesk/backend/internal/id"
)

// OpenAI generates quiz questions and answers document questions through an
// OpenAI-compatible chat-completion API. Question batches come back through
// a function call so the output is structured JSON rather than free text.
type OpenAI struct {
	client *openai.Client
	model  string
}

var (
	_ quiz.QuestionSource = (*OpenAI)(nil)
	_ ChatAnswerer        = (*OpenAI)(nil)
)

// NewOpenAI creates a provider for the given API key and model.
func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

type generatedQuestion struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type generatedBatch struct {
	Questions []generatedQuestion `json:"questions"`
}

// GenerateQuestions asks the model for count questions of the requested type,
// grounded on the document text.
func (p *OpenAI) GenerateQuestions(ctx context.Context, doc *document.Document, qt quiz.QuestionType, count int) ([]quiz.Question, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert quiz question generator for study material. Generate clear, self-contained questions grounded strictly in the provided text.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildQuestionPrompt(doc, qt, count),
			},
		},
		Tools: []openai.Tool{
			{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        "submit_questions",
					Description: "Submit generated quiz questions",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"questions": map[string]interface{}{
								"type": "array",
								"items": map[string]interface{}{
									"type": "object",
									"properties": map[string]interface{}{
										"prompt": map[string]interface{}{
											"type":        "string",
											"description": "The question text",
										},
										"options": map[string]interface{}{
											"type":        "array",
											"items":       map[string]interface{}{"type": "string"},
											"description": "Exactly 4 choices; only for multiple-choice questions",
										},
										"correct_answer": map[string]interface{}{
											"type":        "string",
											"description": "The single canonical correct answer; for multiple-choice it must equal one of the options verbatim",
										},
										"explanation": map[string]interface{}{
											"type":        "string",
											"description": "Brief explanation of why the answer is correct",
										},
									},
									"required": []string{"prompt", "correct_answer", "explanation"},
								},
							},
						},
						"required": []string{"questions"},
					},
				},
			},
		},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: "submit_questions"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("question generation request failed: %w", err)
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		return nil, fmt.Errorf("model returned no tool call")
	}

	var batch generatedBatch
	args := resp.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(args), &batch); err != nil {
		return nil, fmt.Errorf("failed to parse generated questions: %w", err)
	}

	questions := make([]quiz.Question, 0, len(batch.Questions))
	for _, g := range batch.Questions {
		if g.Prompt == "" || g.CorrectAnswer == "" {
			continue
		}
		q := quiz.Question{
			ID:            id.New(),
			Type:          qt,
			Prompt:        g.Prompt,
			CorrectAnswer: g.CorrectAnswer,
			Explanation:   g.Explanation,
		}
		if qt == quiz.TypeMCQ {
			if len(g.Options) < 2 {
				continue
			}
			q.Options = g.Options
		}
		questions = append(questions, q)
		if len(questions) == count {
			break
		}
	}
	return questions, nil
}

func buildQuestionPrompt(doc *document.Document, qt quiz.QuestionType, count int) string {
	var form string
	switch qt {
	case quiz.TypeMCQ:
		form = "multiple-choice questions with exactly 4 options each"
	case quiz.TypeSAQ:
		form = "short-answer questions answerable in one sentence"
	case quiz.TypeLAQ:
		form = "long-answer questions requiring a structured explanation"
	}

	return fmt.Sprintf(`Generate %d %s based on this study material.

TITLE: %s

TEXT:
%s

Call submit_questions with the result.`, count, form, doc.Name, doc.Content)
}

// Ask answers a free-form question about the document.
func (p *OpenAI) Ask(ctx context.Context, doc *document.Document, query string) (chat.Answer, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"You are a study assistant. Answer questions using only the following material. Be concise.\n\nTITLE: %s\n\nTEXT:\n%s",
					doc.Name, doc.Content,
				),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: query,
			},
		},
	})
	if err != nil {
		return chat.Answer{}, fmt.Errorf("chat request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return chat.Answer{}, fmt.Errorf("model returned no answer")
	}

	return chat.Answer{Text: resp.Choices[0].Message.Content}, nil
}
