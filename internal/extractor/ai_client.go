// Package extractor translates free-text descriptions of income and expenses
// into structured ledger data by delegating to an external language model
// with a constrained output schema.
package extractor

import "context"

// AIClient is the interface to the language-model completion service. The
// abstraction keeps the extraction flow testable without network calls and
// leaves room for other providers.
type AIClient interface {
	// Extract sends the user's free text to the model and returns the
	// structured result, or an error on transport or parse failure.
	Extract(ctx context.Context, text string) (Result, error)
}

// Result is the transient outcome of one extraction. When Error is set the
// ledger must be left unchanged and the message surfaced to the user.
type Result struct {
	Income   *float64 `json:"income,omitempty"`
	Expenses []Item   `json:"expenses"`
	Error    string   `json:"error,omitempty"`
}

// Item is one extracted expense.
type Item struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}
