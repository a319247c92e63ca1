package main

import (
	"fmt"
	"strings"

	"github.com/rgonek/delta-markdown-converter/converter"
)

const (
	presetBalanced = "balanced"
	presetStrict   = "strict"
	presetImages   = "images"
)

func presetConfig(preset string) (converter.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return converter.Config{}, nil
	case presetStrict:
		return converter.Config{
			Embeds:            converter.EmbedError,
			UnknownAttributes: converter.UnknownError,
		}, nil
	case presetImages:
		return converter.Config{
			Embeds:            converter.EmbedImage,
			UnknownAttributes: converter.UnknownWarn,
		}, nil
	default:
		return converter.Config{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict, images)", preset)
	}
}

// resolveConfig applies explicit overrides on top of a preset.
func resolveConfig(preset, embeds, unknownAttributes string) (converter.Config, error) {
	cfg, err := presetConfig(preset)
	if err != nil {
		return converter.Config{}, err
	}

	if embeds = strings.TrimSpace(embeds); embeds != "" {
		cfg.Embeds = converter.EmbedStyle(strings.ToLower(embeds))
	}
	if unknownAttributes = strings.TrimSpace(unknownAttributes); unknownAttributes != "" {
		cfg.UnknownAttributes = converter.UnknownPolicy(strings.ToLower(unknownAttributes))
	}

	return cfg, nil
}
