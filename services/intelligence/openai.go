package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// OpenAIEngine generates text through an OpenAI chat model.
type OpenAIEngine struct {
	model model.BaseChatModel
}

func NewOpenAIEngine(ctx context.Context, apiKey, modelName string) (*OpenAIEngine, error) {
	temperature := float32(0.7)
	maxTokens := 300
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      apiKey,
		Model:       modelName,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
		Timeout:     60 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI chat model: %w", err)
	}
	return &OpenAIEngine{model: cm}, nil
}

func (e *OpenAIEngine) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	out, err := e.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("openai generate error: %w", err)
	}
	return out.Content, nil
}
