package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"

	"github.com/rgonek/delta-markdown-converter/converter"
	"github.com/rgonek/delta-markdown-converter/preview"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// job is one resolved conversion request.
type job struct {
	input        string
	path         string
	format       string
	html         bool
	inlineErrors bool
	conv         *converter.Converter
	renderer     *preview.Renderer
	logger       *slog.Logger
	stdin        io.Reader
	stdout       io.Writer
}

type jsonOutput struct {
	converter.Result
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

func run(cmd *cobra.Command, v *viper.Viper, input string) error {
	logger := newLogger(cmd, v.GetBool("verbose"))

	cfg, err := resolveConfig(v.GetString("preset"), v.GetString("embeds"), v.GetString("unknown-attributes"))
	if err != nil {
		return fmt.Errorf("invalid preset: %w", err)
	}
	cfg.Logger = logger

	conv, err := converter.New(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	format := v.GetString("format")
	if format != formatMarkdown && format != formatJSON {
		return fmt.Errorf("invalid format %q (allowed: markdown, json)", format)
	}

	j := &job{
		input:        input,
		path:         v.GetString("path"),
		format:       format,
		html:         v.GetBool("html"),
		inlineErrors: v.GetBool("inline-errors"),
		conv:         conv,
		renderer:     preview.New(preview.Options{}),
		logger:       logger,
		stdin:        cmd.InOrStdin(),
		stdout:       cmd.OutOrStdout(),
	}

	if v.GetBool("watch") {
		if input == "" || input == "-" {
			return errors.New("--watch requires an input file")
		}
		return watchFile(cmd.Context(), input, logger, func() error {
			return j.convert(cmd.Context())
		})
	}

	return j.convert(cmd.Context())
}

func (j *job) convert(ctx context.Context) error {
	data, err := j.read()
	if err != nil {
		return err
	}

	data, err = selectDelta(data, j.path)
	if err != nil {
		return err
	}

	result, err := j.conv.ConvertWithContext(ctx, data, converter.ConvertOptions{SourcePath: j.input})
	if err != nil {
		if !j.inlineErrors {
			return fmt.Errorf("converting %s: %w", j.name(), err)
		}
		if j.format == formatJSON {
			return j.writeJSON(jsonOutput{Error: err.Error()})
		}
		_, werr := fmt.Fprintln(j.stdout, err.Error())
		return werr
	}

	for _, w := range result.Warnings {
		j.logger.Warn(w.Message, "type", w.Type, "op", w.Op, "key", w.Key)
	}

	var html string
	if j.html {
		html, err = j.renderer.HTML(result.Markdown)
		if err != nil {
			return err
		}
	}

	if j.format == formatJSON {
		return j.writeJSON(jsonOutput{Result: result, HTML: html})
	}

	if j.html {
		_, err = io.WriteString(j.stdout, html)
		return err
	}
	_, err = io.WriteString(j.stdout, result.Markdown)
	return err
}

func (j *job) read() ([]byte, error) {
	if j.input == "" || j.input == "-" {
		data, err := io.ReadAll(j.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(j.input)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

func (j *job) name() string {
	if j.input == "" || j.input == "-" {
		return "stdin"
	}
	return j.input
}

func (j *job) writeJSON(out jsonOutput) error {
	enc := json.NewEncoder(j.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// selectDelta extracts the delta addressed by path. A string value is taken to
// be the delta serialized as JSON text, which is how editors usually hand it over.
func selectDelta(data []byte, path string) ([]byte, error) {
	if path == "" {
		return data, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.New("input is not valid JSON")
	}

	value := gjson.GetBytes(data, path)
	if !value.Exists() {
		return nil, fmt.Errorf("path %q not found in input", path)
	}
	if value.Type == gjson.String {
		return []byte(value.String()), nil
	}
	return []byte(value.Raw), nil
}
