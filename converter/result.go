package converter

// Result holds the output of a conversion.
type Result struct {
	Markdown string    `json:"markdown"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningSkippedOperation WarningType = "skipped_operation"
	WarningUnknownAttribute WarningType = "unknown_attribute"
	WarningIgnoredAttribute WarningType = "ignored_attribute"
	WarningEmptyLine        WarningType = "empty_line"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type WarningType `json:"type"`
	// Op is the index of the op in the ops array.
	Op      int    `json:"op"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}
