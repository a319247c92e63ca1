package converter

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

func (s *state) applyEmbedRenderHook(input EmbedRenderInput) (EmbedRenderOutput, bool, error) {
	if s.config.EmbedHook == nil {
		return EmbedRenderOutput{}, false, nil
	}

	if err := s.checkContext(); err != nil {
		return EmbedRenderOutput{}, false, err
	}

	output, err := s.config.EmbedHook(s.ctx, input)
	if err != nil {
		return EmbedRenderOutput{}, false, fmt.Errorf("embed hook failed: %w", err)
	}

	if err := s.checkContext(); err != nil {
		return EmbedRenderOutput{}, false, err
	}

	if !output.Handled {
		return EmbedRenderOutput{}, false, nil
	}

	if err := validateEmbedRenderOutput(output); err != nil {
		return EmbedRenderOutput{}, false, fmt.Errorf("invalid embed hook output: %w", err)
	}

	return output, true, nil
}

func validateEmbedRenderOutput(output EmbedRenderOutput) error {
	if strings.TrimSpace(output.Markdown) == "" {
		return errors.New("handled embed render output requires non-empty markdown")
	}
	return nil
}

func (s *state) checkContext() error {
	if s.ctx == nil {
		return nil
	}
	return s.ctx.Err()
}

func cloneAnyMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	maps.Copy(dst, src)
	return dst
}
