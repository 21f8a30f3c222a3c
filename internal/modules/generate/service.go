// Package generate coordinates the request intake pipeline: quota check,
// text extraction, prompt construction, model call, history persistence.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/studypal/core/internal/models"
	"github.com/studypal/core/internal/modules/extract"
	"github.com/studypal/core/internal/modules/history"
	"github.com/studypal/core/internal/modules/quota"
	"go.uber.org/zap"
)

var (
	// ErrLimitExceeded means the identity exhausted today's quota.
	ErrLimitExceeded = errors.New("daily limit exceeded")
	// ErrEmptyContent means extraction yielded no usable text.
	ErrEmptyContent = errors.New("no text content found to process")
)

const (
	previewLimit      = 500
	placeholderResult = "No response generated."
)

// Service runs the generation pipeline.
type Service struct {
	history *history.Service
	usage   quota.Store
	llm     Completer
	log     *zap.Logger
	timeout time.Duration
}

func NewService(historySvc *history.Service, usage quota.Store, llm Completer, log *zap.Logger, timeout time.Duration) *Service {
	return &Service{history: historySvc, usage: usage, llm: llm, log: log, timeout: timeout}
}

// Generate runs the full pipeline for one request and returns the model
// result plus the identity's remaining quota.
//
// The quota slot is consumed at check time: a downstream extraction or model
// failure does not refund it. No history record is written unless the model
// call succeeded.
func (s *Service) Generate(ctx context.Context, req Request, identity string) (string, int, error) {
	allowed, err := s.usage.Allow(ctx, identity)
	if err != nil {
		return "", 0, fmt.Errorf("quota check: %w", err)
	}
	if !allowed {
		return "", 0, ErrLimitExceeded
	}

	text, err := s.extractText(ctx, req)
	if err != nil {
		return "", 0, fmt.Errorf("extract: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", 0, ErrEmptyContent
	}

	systemPrompt := buildSystemPrompt(req)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := s.llm.Complete(callCtx, systemPrompt, text)
	if err != nil {
		return "", 0, fmt.Errorf("model call: %w", err)
	}
	if strings.TrimSpace(result) == "" {
		result = placeholderResult
	}

	record := models.HistoryModel{
		Type:    string(req.Mode),
		Content: preview(text),
		Result:  result,
	}
	if req.Subject != "" {
		record.Subject = &req.Subject
	}
	if req.FileName != "" {
		record.FileName = &req.FileName
	}
	if err := s.history.Create(&record); err != nil {
		return "", 0, fmt.Errorf("persist history: %w", err)
	}

	remaining, err := s.usage.Remaining(ctx, identity)
	if err != nil {
		return "", 0, fmt.Errorf("quota remaining: %w", err)
	}

	s.log.Info("generation completed",
		zap.String("mode", string(req.Mode)),
		zap.Uint("history_id", record.ID),
		zap.Int("remaining", remaining),
	)
	return result, remaining, nil
}

// Remaining reports the identity's remaining quota without consuming a slot.
func (s *Service) Remaining(ctx context.Context, identity string) (int, error) {
	return s.usage.Remaining(ctx, identity)
}

// extractText runs extraction under the service timeout. OCR and document
// parsing are CPU-heavy; the deadline keeps a pathological payload from
// pinning a request forever.
func (s *Service) extractText(ctx context.Context, req Request) (string, error) {
	extractCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		text, err := extract.Text(extractCtx, extract.Input{
			Content:  req.Content,
			FileData: req.FileData,
			FileName: req.FileName,
			FileType: req.FileType,
		})
		ch <- result{text, err}
	}()

	select {
	case <-extractCtx.Done():
		return "", extractCtx.Err()
	case r := <-ch:
		return r.text, r.err
	}
}

// preview truncates extracted text to the stored content preview size.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit])
}
