package service

import (
	"context"
	"errors"

	"github.com/sumanthd032/smartblog/internal/ai"
)

var ErrAIDisabled = errors.New("ai assistant is not configured")

// AssistantService drafts titles and summaries. A nil writer disables it.
type AssistantService struct {
	writer *ai.Writer
}

func NewAssistantService(writer *ai.Writer) *AssistantService {
	return &AssistantService{writer: writer}
}

type AIRequest struct {
	Content string `json:"content" validate:"notblank"`
}

func (s *AssistantService) Enabled() bool {
	return s.writer != nil
}

func (s *AssistantService) GenerateTitle(ctx context.Context, input AIRequest) (string, error) {
	if !s.Enabled() {
		return "", ErrAIDisabled
	}
	return s.writer.Title(ctx, input.Content)
}

func (s *AssistantService) GenerateSummary(ctx context.Context, input AIRequest) (string, error) {
	if !s.Enabled() {
		return "", ErrAIDisabled
	}
	return s.writer.Summary(ctx, input.Content)
}
