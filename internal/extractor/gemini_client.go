package extractor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/logging"
)

// GeminiClient implements AIClient against the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    logging.Logger
}

// NewGeminiClient creates a Gemini-backed AIClient. The model is configured
// for JSON output constrained by the extraction schema.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema()

	return &GeminiClient{
		client: client,
		model:  model,
		log:    logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Extract sends the text to Gemini and decodes the schema-constrained JSON
// response.
func (c *GeminiClient) Extract(ctx context.Context, text string) (Result, error) {
	prompt := fmt.Sprintf(`Phân tích đoạn văn bản sau và trích xuất thông tin thu nhập và các khoản chi tiêu.
Nếu thiếu thông tin thu nhập hoặc chi tiêu, hãy trả về một thông báo lỗi nhẹ nhàng bằng tiếng Việt trong trường 'error'.

Văn bản: "%s"`, text)

	c.log.WithField(logging.FieldInputLen, len(text)).Debug("Sending extraction request to Gemini")

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Result{}, fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Result{}, fmt.Errorf("no response from Gemini API")
	}

	part, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return Result{}, fmt.Errorf("unexpected response part type %T", resp.Candidates[0].Content.Parts[0])
	}

	var result Result
	if err := json.Unmarshal([]byte(part), &result); err != nil {
		return Result{}, fmt.Errorf("could not parse model output: %w", err)
	}

	c.log.WithField(logging.FieldCount, len(result.Expenses)).Debug("Received extraction result")
	return result, nil
}

// responseSchema is the output contract: an object with a required expenses
// array; income and error are optional.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"income": {
				Type:        genai.TypeNumber,
				Description: "Tổng thu nhập (VNĐ). Nếu không có, để null hoặc 0.",
			},
			"expenses": {
				Type:        genai.TypeArray,
				Description: "Danh sách các khoản chi tiêu",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {
							Type:        genai.TypeString,
							Description: "Tên khoản chi tiêu",
						},
						"amount": {
							Type:        genai.TypeNumber,
							Description: "Số tiền chi tiêu (VNĐ)",
						},
					},
					Required: []string{"name", "amount"},
				},
			},
			"error": {
				Type:        genai.TypeString,
				Description: "Thông báo nhắc nhở nhẹ nhàng nếu thiếu thông tin thu nhập hoặc chi tiêu.",
			},
		},
		Required: []string{"expenses"},
	}
}
