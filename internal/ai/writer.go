package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	titleInputLimit   = 1000
	summaryInputLimit = 2000
)

var (
	ErrEmptyContent  = errors.New("content is empty")
	ErrEmptyResponse = errors.New("model returned no text")
)

const titlePrompt = `Based on the following blog post content, suggest a single, compelling, and SEO-friendly title.
The title should be concise and no more than 70 characters.

Content:
---
%s
---

Suggested Title:`

const summaryPrompt = `Based on the following blog post content, generate a short, engaging summary or "TL;DR".
The summary should be around 2-3 sentences and capture the main points of the article.

Content:
---
%s
---

Summary:`

var titleCleaner = strings.NewReplacer(`"`, "", "*", "")

// Writer turns post content into suggested titles and summaries.
type Writer struct {
	model Model
}

func NewWriter(model Model) *Writer {
	return &Writer{model: model}
}

// Title suggests a title from the first 1000 characters of content.
func (w *Writer) Title(ctx context.Context, content string) (string, error) {
	out, err := w.generate(ctx, titlePrompt, content, titleInputLimit)
	if err != nil {
		return "", err
	}
	title := strings.TrimSpace(titleCleaner.Replace(out))
	if title == "" {
		return "", ErrEmptyResponse
	}
	return title, nil
}

// Summary writes a short TL;DR from the first 2000 characters of content.
func (w *Writer) Summary(ctx context.Context, content string) (string, error) {
	return w.generate(ctx, summaryPrompt, content, summaryInputLimit)
}

func (w *Writer) generate(ctx context.Context, tmpl, content string, limit int) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	out, err := w.model.Generate(ctx, fmt.Sprintf(tmpl, truncate(content, limit)))
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
