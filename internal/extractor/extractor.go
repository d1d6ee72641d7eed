package extractor

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/advisory"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/apperror"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/logging"
)

// Extractor wraps an AIClient with the local validation and failure
// semantics of the extraction flow: empty input never reaches the service,
// transport and parse failures collapse into one generic advisory, and a
// model-reported error is surfaced verbatim.
type Extractor struct {
	client  AIClient
	catalog advisory.Catalog
	log     logging.Logger
}

// New creates an Extractor.
func New(client AIClient, catalog advisory.Catalog, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{
		client:  client,
		catalog: catalog,
		log:     logger,
	}
}

// Analyze runs one extraction. The returned error is always one of the
// apperror types carrying a user advisory:
//
//   - ValidationError when the input is empty after trimming (the external
//     service is never called),
//   - ExtractionError when the transport fails or the output is unparseable
//     (cause logged internally, never shown),
//   - ModelError when the model reports missing information through the
//     schema's error field.
//
// On success the result's expense amounts are sanitized: NaN, infinite and
// negative values count as zero.
func (e *Extractor) Analyze(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, &apperror.ValidationError{
			Advisory: e.catalog.MissingInput,
			Reason:   "empty analysis input",
		}
	}

	if e.client == nil {
		err := errors.New("no AI client configured")
		e.log.WithError(err).Error("Extraction request failed")
		return Result{}, &apperror.ExtractionError{
			Advisory: e.catalog.ExtractionFailed,
			Err:      err,
		}
	}

	result, err := e.client.Extract(ctx, text)
	if err != nil {
		e.log.WithError(err).Error("Extraction request failed")
		return Result{}, &apperror.ExtractionError{
			Advisory: e.catalog.ExtractionFailed,
			Err:      err,
		}
	}

	if result.Error != "" {
		e.log.WithField(logging.FieldOperation, "extract").Debug("Model reported missing information")
		return Result{}, &apperror.ModelError{Advisory: result.Error}
	}

	for i := range result.Expenses {
		result.Expenses[i].Amount = sanitizeAmount(result.Expenses[i].Amount)
	}
	if result.Income != nil {
		clean := sanitizeAmount(*result.Income)
		result.Income = &clean
	}

	e.log.WithField(logging.FieldCount, len(result.Expenses)).Info("Extraction succeeded")
	return result, nil
}

// sanitizeAmount clamps values the data model cannot hold; amounts are
// non-negative numbers.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
