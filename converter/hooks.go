package converter

import "context"

// ConvertOptions carries optional per-conversion context.
type ConvertOptions struct {
	SourcePath string
}

// EmbedRenderHook can render embedded resource inserts during delta -> Markdown conversion.
type EmbedRenderHook func(ctx context.Context, in EmbedRenderInput) (EmbedRenderOutput, error)

// EmbedRenderInput describes an embed insert being rendered.
type EmbedRenderInput struct {
	SourcePath string
	// EmbedType is the key that identified the embed, e.g. "image".
	EmbedType string
	Source    string
	Alt       string
	// Index is the position of the op in the ops array.
	Index   int
	Payload map[string]any
	Attrs   Attributes
}

// EmbedRenderOutput contains hook-provided markdown for an embed.
type EmbedRenderOutput struct {
	Markdown string
	Handled  bool
}
