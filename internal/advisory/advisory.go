// Package advisory holds the user-facing advisory messages. The defaults are
// the Vietnamese strings the assistant speaks in; a YAML file can override
// individual messages without rebuilding.
package advisory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog maps each advisory situation to the message shown to the user.
type Catalog struct {
	// MissingInput is shown when the analysis prompt is empty after trimming.
	MissingInput string `yaml:"missing_input"`
	// ExtractionFailed is the single generic message for transport failures
	// and unparseable model output.
	ExtractionFailed string `yaml:"extraction_failed"`
	// ExportMissingData is shown when income is unset or no expenses exist.
	ExportMissingData string `yaml:"export_missing_data"`
	// ExportIncomplete is shown when an expense lacks a name or an amount.
	ExportIncomplete string `yaml:"export_incomplete"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		MissingInput:      "Bạn vui lòng nhập thông tin thu nhập và chi tiêu nhé.",
		ExtractionFailed:  "Xin lỗi, mình gặp chút khó khăn khi đọc dữ liệu. Bạn thử lại nhé!",
		ExportMissingData: "Bạn ơi, hãy nhập đầy đủ thu nhập và ít nhất một khoản chi tiêu trước khi xuất file nhé!",
		ExportIncomplete:  "Hình như có khoản chi tiêu nào đó chưa có tên hoặc số tiền. Bạn kiểm tra lại giúp mình nhé!",
	}
}

// Load reads a YAML override file and merges it over the defaults. Empty
// fields in the file keep their default message.
func Load(path string) (Catalog, error) {
	catalog := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return catalog, fmt.Errorf("could not read advisory file: %w", err)
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return catalog, fmt.Errorf("could not parse advisory file: %w", err)
	}

	if override.MissingInput != "" {
		catalog.MissingInput = override.MissingInput
	}
	if override.ExtractionFailed != "" {
		catalog.ExtractionFailed = override.ExtractionFailed
	}
	if override.ExportMissingData != "" {
		catalog.ExportMissingData = override.ExportMissingData
	}
	if override.ExportIncomplete != "" {
		catalog.ExportIncomplete = override.ExportIncomplete
	}

	return catalog, nil
}
