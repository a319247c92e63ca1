package converter

import (
	"fmt"
	"io"
	"log/slog"
)

// EmbedStyle controls how embedded resource inserts (images) are handled.
type EmbedStyle string

const (
	// EmbedError fails the conversion with ErrUnsupportedEmbed.
	EmbedError EmbedStyle = "error"
	// EmbedImage renders image embeds as ![alt](src).
	EmbedImage EmbedStyle = "image"
)

// UnknownPolicy controls behavior for unrecognized attribute keys.
type UnknownPolicy string

const (
	UnknownError UnknownPolicy = "error"
	UnknownSkip  UnknownPolicy = "skip"
	UnknownWarn  UnknownPolicy = "warn"
)

// Config holds all converter configuration options.
type Config struct {
	Embeds            EmbedStyle      `json:"embeds,omitempty"`
	UnknownAttributes UnknownPolicy   `json:"unknownAttributes,omitempty"`
	EmbedHook         EmbedRenderHook `json:"-"`
	Logger            *slog.Logger    `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.Embeds == "" {
		c.Embeds = EmbedError
	}
	if c.UnknownAttributes == "" {
		c.UnknownAttributes = UnknownSkip
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c
}

// clone returns a copy of Config that does not share mutable state with the caller.
func (c Config) clone() Config {
	cloned := c
	cloned.EmbedHook = c.EmbedHook
	cloned.Logger = c.Logger
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.Embeds != EmbedError && c.Embeds != EmbedImage {
		return fmt.Errorf("invalid embeds style %q", c.Embeds)
	}
	if c.UnknownAttributes != UnknownError && c.UnknownAttributes != UnknownSkip && c.UnknownAttributes != UnknownWarn {
		return fmt.Errorf("invalid unknownAttributes policy %q", c.UnknownAttributes)
	}

	return nil
}
