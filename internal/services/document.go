package services

//go:generate mockgen -source=document.go -destination=mock_document.go -package=services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/idea2context/internal/logger"
	"github.com/sbilibin2017/idea2context/internal/models"
)

// Completer sends a system and a user prompt to a text generation API.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GenerationObserver is told which path produced each document.
type GenerationObserver interface {
	ObserveGeneration(source models.DocumentSource)
}

// DocumentService turns an app idea into a Markdown specification.
type DocumentService struct {
	completer Completer
	timeout   time.Duration
	observer  GenerationObserver
}

// NewDocumentService creates a DocumentService.
// A nil completer means no generation API is configured and every document
// comes from the fallback template. observer may be nil.
func NewDocumentService(completer Completer, timeout time.Duration, observer GenerationObserver) *DocumentService {
	return &DocumentService{
		completer: completer,
		timeout:   timeout,
		observer:  observer,
	}
}

// DocumentFilename is the suggested download name for a platform.
func DocumentFilename(appType models.AppType) string {
	return fmt.Sprintf("%s_app_context.md", appType)
}

// Generate builds the document for idea and appType. Only malformed input
// is reported as an error; generation API failures fall back to the template.
func (s *DocumentService) Generate(ctx context.Context, idea string, appType models.AppType) (*models.Document, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" || appType == "" {
		return nil, ErrGenerateFieldsRequired
	}
	if !appType.Valid() {
		return nil, ErrInvalidAppType
	}

	doc := &models.Document{Filename: DocumentFilename(appType)}

	if s.completer == nil {
		logger.Log.Warnw("generation API key is not configured, using fallback template", "app_type", appType)
		doc.Markdown, doc.Source = FallbackDocument(idea, appType), models.SourceFallback
		s.observe(doc.Source)
		return doc, nil
	}

	content, err := s.complete(ctx, BuildPrompt(idea, appType))
	switch {
	case err != nil:
		logger.Log.Errorw("generation API call failed, using fallback template", "app_type", appType, "err", err)
		doc.Markdown, doc.Source = FallbackDocument(idea, appType), models.SourceFallback
	case strings.TrimSpace(content) == "":
		logger.Log.Warnw("generation API returned empty content, using fallback template", "app_type", appType)
		doc.Markdown, doc.Source = FallbackDocument(idea, appType), models.SourceFallback
	default:
		doc.Markdown, doc.Source = content, models.SourceModel
	}

	s.observe(doc.Source)
	return doc, nil
}

func (s *DocumentService) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.completer.Complete(ctx, SystemPrompt, prompt)
}

func (s *DocumentService) observe(source models.DocumentSource) {
	if s.observer != nil {
		s.observer.ObserveGeneration(source)
	}
}
