package converter

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := (Config{}).applyDefaults()

	assert.Equal(t, EmbedError, cfg.Embeds)
	assert.Equal(t, UnknownSkip, cfg.UnknownAttributes)
	assert.NotNil(t, cfg.Logger)
	assert.Nil(t, cfg.EmbedHook)
}

func TestValidateValid(t *testing.T) {
	cfg := Config{
		Embeds:            EmbedImage,
		UnknownAttributes: UnknownWarn,
	}
	require.NoError(t, cfg.Validate())
}

func TestValidateInvalidEnum(t *testing.T) {
	err := (Config{Embeds: "video", UnknownAttributes: UnknownSkip}).Validate()
	require.Error(t, err)
	assert.Equal(t, `invalid embeds style "video"`, err.Error())

	err = (Config{Embeds: EmbedError, UnknownAttributes: "placeholder"}).Validate()
	require.Error(t, err)
	assert.Equal(t, `invalid unknownAttributes policy "placeholder"`, err.Error())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	conv, err := New(Config{Embeds: "inline"})
	require.Error(t, err)
	assert.Nil(t, conv)
}

func TestConfigSerialization(t *testing.T) {
	cfg := (Config{
		Embeds:            EmbedImage,
		UnknownAttributes: UnknownError,
	}).applyDefaults()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"embeds":"image","unknownAttributes":"error"}`, string(data))

	var decoded Config
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, cfg.Embeds, decoded.Embeds)
	assert.Equal(t, cfg.UnknownAttributes, decoded.UnknownAttributes)
}

func TestConfigSerializationExcludesHooks(t *testing.T) {
	cfg := (Config{
		EmbedHook: func(_ context.Context, _ EmbedRenderInput) (EmbedRenderOutput, error) {
			return EmbedRenderOutput{}, nil
		},
	}).applyDefaults()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "EmbedHook")
	assert.NotContains(t, string(data), "embedHook")
	assert.NotContains(t, string(data), "Logger")
}

func TestZeroConfigUsable(t *testing.T) {
	conv, err := New(Config{})
	require.NoError(t, err)
	require.NoError(t, conv.config.Validate())
}

func TestLoggerReceivesSkippedOperations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conv := newTestConverter(t, Config{Logger: logger})
	_, err := conv.ConvertWithContext(context.Background(), []byte(`{"ops":[{"retain":1},{"insert":"x"}]}`), ConvertOptions{SourcePath: "a.json"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "skipping op without insert")
	assert.Contains(t, out, "delta converted")
	assert.Contains(t, out, "source=a.json")
}
