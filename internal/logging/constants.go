package logging

// Standardized field names for structured logging. Using the same keys across
// components keeps the log output easy to filter.
const (
	FieldOperation  = "operation"
	FieldExpenseID  = "expense_id"
	FieldCount      = "count"
	FieldModel      = "model"
	FieldInputLen   = "input_len"
	FieldOutputFile = "output_file"
	FieldInputFile  = "input_file"
	FieldFormat     = "format"
	FieldView       = "view"
)
