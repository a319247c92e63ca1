package converter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
)

// Converter converts delta documents to Markdown.
type Converter struct {
	config Config
}

type state struct {
	config   Config
	ctx      context.Context
	options  ConvertOptions
	out      bytes.Buffer
	warnings []Warning
	opIndex  int
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
	}, nil
}

// ToMarkdown converts a delta JSON document using the default configuration.
func ToMarkdown(delta string) (string, error) {
	conv, err := New(Config{})
	if err != nil {
		return "", err
	}

	result, err := conv.Convert([]byte(delta))
	if err != nil {
		return "", err
	}
	return result.Markdown, nil
}

// Convert takes a delta JSON document and returns Markdown.
func (c *Converter) Convert(input []byte) (Result, error) {
	return c.ConvertWithContext(context.Background(), input, ConvertOptions{})
}

// ConvertWithContext converts a delta JSON document. The context is passed to
// render hooks; conversion itself never blocks.
func (c *Converter) ConvertWithContext(ctx context.Context, input []byte, opts ConvertOptions) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	ops, err := parseEnvelope(input)
	if err != nil {
		c.config.Logger.Debug("delta envelope rejected", "source", opts.SourcePath, "error", err)
		return Result{}, err
	}

	s := &state{
		config:  c.config,
		ctx:     ctx,
		options: opts,
	}

	for i, raw := range ops {
		s.opIndex = i
		if err := s.convertOp(raw); err != nil {
			c.config.Logger.Debug("delta conversion failed", "source", opts.SourcePath, "op", i, "error", err)
			return Result{}, err
		}
	}

	c.config.Logger.Debug("delta converted",
		"source", opts.SourcePath,
		"ops", len(ops),
		"bytes", s.out.Len(),
		"warnings", len(s.warnings),
	)

	return Result{
		Markdown: s.out.String(),
		Warnings: s.warnings,
	}, nil
}

// parseEnvelope decodes the document and returns its ops array.
func parseEnvelope(input []byte) ([]any, error) {
	root, err := decodeJSON(input)
	if err != nil {
		return nil, err
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, newValueError(KindMissingOps, "", root)
	}

	rawOps, ok := obj["ops"]
	if !ok {
		return nil, newValueError(KindMalformedRoot, "", root)
	}

	ops, ok := rawOps.([]any)
	if !ok {
		return nil, newValueError(KindMalformedRoot, "", root)
	}

	return ops, nil
}

func decodeJSON(input []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, newSyntaxError(err)
	}

	// Only whitespace may follow the root value.
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, newSyntaxError(err)
		}
		return nil, newSyntaxError(errors.New("unexpected data after top-level value: " + renderToken(tok)))
	}

	return root, nil
}

func renderToken(tok json.Token) string {
	if delim, ok := tok.(json.Delim); ok {
		return delim.String()
	}
	return renderValue(tok)
}

func (s *state) convertOp(raw any) error {
	fields, ok := raw.(map[string]any)
	if !ok {
		return newValueError(KindMalformedOperation, "", raw)
	}
	op := Op(fields)

	payload, ok := op.Insert()
	if !ok {
		s.config.Logger.Debug("skipping op without insert", "op", s.opIndex)
		s.addWarning(WarningSkippedOperation, "", "operation has no insert field and was skipped")
		return nil
	}

	attrs, hasAttrs, err := op.Attributes()
	if err != nil {
		return err
	}

	return s.handleInsert(payload, attrs, hasAttrs)
}

func (s *state) addWarning(warnType WarningType, key, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:    warnType,
		Op:      s.opIndex,
		Key:     key,
		Message: message,
	})
}
