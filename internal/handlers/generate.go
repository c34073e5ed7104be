package handlers

//go:generate mockgen -source=generate.go -destination=mock_generate.go -package=handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/idea2context/internal/logger"
	"github.com/sbilibin2017/idea2context/internal/models"
)

// Generator defines the interface that the document service must implement.
type Generator interface {
	Generate(ctx context.Context, idea string, appType models.AppType) (*models.Document, error)
}

// NewGenerateHandler returns an HTTP handler that generates a Markdown app specification.
// @Summary Generate an app specification
// @Description Builds a Markdown specification from an idea and a platform. Falls back to a template when the generation API is unavailable.
// @Tags generate
// @Accept json
// @Produce text/markdown
// @Param generateRequest body models.GenerateRequest true "Idea and platform"
// @Success 200 {string} string "Markdown document as attachment"
// @Failure 400 {object} models.ErrorResponse "Missing idea or invalid appType"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /generate [post]
func NewGenerateHandler(svc Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GenerateRequest

		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		doc, err := svc.Generate(r.Context(), req.Idea, req.AppType)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			logger.Log.Errorw("document generation failed", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		logger.Log.Infow("document generated", "app_type", req.AppType, "source", doc.Source, "bytes", len(doc.Markdown))

		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc.Markdown))
	}
}
