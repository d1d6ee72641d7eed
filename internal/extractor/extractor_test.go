package extractor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/advisory"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/apperror"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/extractor"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/logging"
)

// mockAIClient implements extractor.AIClient for testing.
type mockAIClient struct {
	result extractor.Result
	err    error
	calls  int
}

func (m *mockAIClient) Extract(ctx context.Context, text string) (extractor.Result, error) {
	m.calls++
	return m.result, m.err
}

var _ extractor.AIClient = (*mockAIClient)(nil)

func newExtractor(client extractor.AIClient) *extractor.Extractor {
	return extractor.New(client, advisory.Default(), &logging.MockLogger{})
}

func TestAnalyze_EmptyInputNeverCallsService(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		client := &mockAIClient{}
		e := newExtractor(client)

		_, err := e.Analyze(context.Background(), input)

		require.Error(t, err)
		var validation *apperror.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, advisory.Default().MissingInput, validation.Advisory)
		assert.Zero(t, client.calls, "external service must not be called for empty input")
	}
}

func TestAnalyze_TransportErrorCollapsesToGenericAdvisory(t *testing.T) {
	cause := errors.New("connection refused")
	client := &mockAIClient{err: cause}
	e := newExtractor(client)

	_, err := e.Analyze(context.Background(), "lương 15 triệu")

	require.Error(t, err)
	var extraction *apperror.ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.Equal(t, advisory.Default().ExtractionFailed, extraction.Advisory)
	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, extraction.Advisory, "connection refused",
		"internal error details must not reach the advisory")
}

func TestAnalyze_ModelErrorSurfacedVerbatim(t *testing.T) {
	client := &mockAIClient{result: extractor.Result{Error: "Bạn chưa cho mình biết thu nhập nhé."}}
	e := newExtractor(client)

	_, err := e.Analyze(context.Background(), "tiêu nhiều lắm")

	require.Error(t, err)
	var model *apperror.ModelError
	require.ErrorAs(t, err, &model)
	assert.Equal(t, "Bạn chưa cho mình biết thu nhập nhé.", model.Advisory)
}

func TestAnalyze_NoClientConfigured(t *testing.T) {
	e := newExtractor(nil)

	_, err := e.Analyze(context.Background(), "lương 15 triệu")

	require.Error(t, err)
	var extraction *apperror.ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.Equal(t, advisory.Default().ExtractionFailed, extraction.Advisory)
}

func TestAnalyze_SuccessSanitizesAmounts(t *testing.T) {
	income := 15000000.0
	client := &mockAIClient{result: extractor.Result{
		Income: &income,
		Expenses: []extractor.Item{
			{Name: "Rent", Amount: 4000000},
			{Name: "Refund", Amount: -500},
		},
	}}
	e := newExtractor(client)

	result, err := e.Analyze(context.Background(), "lương 15 triệu, nhà 4 triệu")

	require.NoError(t, err)
	require.Len(t, result.Expenses, 2)
	assert.Equal(t, 4000000.0, result.Expenses[0].Amount)
	assert.Equal(t, 0.0, result.Expenses[1].Amount, "negative amounts count as zero")
	require.NotNil(t, result.Income)
	assert.Equal(t, 15000000.0, *result.Income)
	assert.Equal(t, 1, client.calls)
}
