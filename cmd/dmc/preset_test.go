package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/delta-markdown-converter/converter"
)

func TestPresetConfig(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		cfg, err := presetConfig(presetBalanced)
		require.NoError(t, err)
		assert.Equal(t, converter.Config{}, cfg)
	})

	t.Run("empty defaults to balanced", func(t *testing.T) {
		cfg, err := presetConfig("")
		require.NoError(t, err)
		assert.Equal(t, converter.Config{}, cfg)
	})

	t.Run("strict", func(t *testing.T) {
		cfg, err := presetConfig(presetStrict)
		require.NoError(t, err)
		assert.Equal(t, converter.EmbedError, cfg.Embeds)
		assert.Equal(t, converter.UnknownError, cfg.UnknownAttributes)
	})

	t.Run("images", func(t *testing.T) {
		cfg, err := presetConfig(" Images ")
		require.NoError(t, err)
		assert.Equal(t, converter.EmbedImage, cfg.Embeds)
		assert.Equal(t, converter.UnknownWarn, cfg.UnknownAttributes)
	})
}

func TestPresetConfigInvalid(t *testing.T) {
	_, err := presetConfig("unknown")
	require.Error(t, err)
	assert.Equal(t, `unknown preset "unknown" (allowed: balanced, strict, images)`, err.Error())
}

func TestResolveConfigOverridesPreset(t *testing.T) {
	cfg, err := resolveConfig(presetStrict, "IMAGE", "")
	require.NoError(t, err)
	assert.Equal(t, converter.EmbedImage, cfg.Embeds)
	assert.Equal(t, converter.UnknownError, cfg.UnknownAttributes)

	cfg, err = resolveConfig(presetImages, "", "skip")
	require.NoError(t, err)
	assert.Equal(t, converter.EmbedImage, cfg.Embeds)
	assert.Equal(t, converter.UnknownSkip, cfg.UnknownAttributes)
}

func TestResolveConfigInvalidOverrideFailsValidation(t *testing.T) {
	cfg, err := resolveConfig(presetBalanced, "video", "")
	require.NoError(t, err)

	_, err = converter.New(cfg)
	require.Error(t, err)
	assert.Equal(t, `invalid embeds style "video"`, err.Error())
}
