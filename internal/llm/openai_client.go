package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no prompt is managed in Langfuse.
const DefaultSystemPrompt = `You are a friendly, non-medical walking coach.

You receive aggregated daily step counts for a single user: weekly averages, monthly totals,
their daily step goal and their current goal streak. Base your conclusions only on the provided data.

Your goals:
- Describe how active the user has been recently in clear, encouraging language.
- Compare the current week and month with the previous ones.
- Acknowledge the goal streak; if it is broken, suggest how to restart it.
- Give practical suggestions for adding steps to the user's day.

Rules:
- Do NOT provide medical advice or mention conditions, injuries or treatment.
- If data is limited, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences about recent activity.",
  "observations": ["2-5 short observations about trends and the streak."],
  "suggestions": ["2-4 concrete suggestions to reach the daily goal more often."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's step data.

- "weekly" holds average steps per day for recent calendar weeks, most recent first.
- "monthly" holds total steps for recent calendar months, most recent first.
- "change_percent" compares the current period with the previous one (null when undefined).
- "streak" holds the number of consecutive days before today that met "daily_goal"
  and today's achievement status.

JSON:

%s

Based on this data, respond in the required JSON format.`

// AdviceLLM generates walking advice from aggregated step data.
type AdviceLLM interface {
	GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error)
}

// OpenAIClient implements AdviceLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating advice.
// Returns nil if apiKey is empty. An empty systemPrompt selects DefaultSystemPrompt.
func NewOpenAIClient(apiKey, model, systemPrompt string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateAdvice calls OpenAI to generate walking advice.
func (c *OpenAIClient) GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(adviceCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseAdvice(resp.Choices[0].Message.Content)
}

func parseAdvice(content string) (*domain.LLMAdviceOutput, error) {
	var output domain.LLMAdviceOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &output, nil
}
