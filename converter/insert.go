package converter

import (
	"bytes"
	"fmt"
	"strings"
)

// handleInsert renders one insert payload and merges it into the output.
func (s *state) handleInsert(payload any, attrs Attributes, hasAttrs bool) error {
	var fragment string

	switch v := payload.(type) {
	case string:
		fragment = v
	case map[string]any:
		rendered, err := s.renderEmbed(v, attrs)
		if err != nil {
			return err
		}
		fragment = rendered
	default:
		return newValueError(KindIncorrectInsertType, "", payload)
	}

	if !hasAttrs {
		s.out.WriteString(fragment)
		return nil
	}

	return s.applyAttributes(attrs, fragment)
}

// applyAttributes formats an attributed fragment. A bare newline carries the
// block attributes of the line it terminates, so the last line of the output
// is taken back out, terminated, formatted and written again.
func (s *state) applyAttributes(attrs Attributes, fragment string) error {
	if fragment != "\n" {
		text, err := s.transform(attrs, fragment)
		if err != nil {
			return err
		}
		s.out.WriteString(text)
		return nil
	}

	if s.out.Len() == 0 {
		// Nothing to format, but the attribute set must still be well typed.
		if _, err := s.transform(attrs, fragment); err != nil {
			return err
		}
		s.addWarning(WarningEmptyLine, "", "line attributes on a newline with no preceding text were dropped")
		return nil
	}

	start := bytes.LastIndexByte(s.out.Bytes(), '\n') + 1
	line := string(s.out.Bytes()[start:]) + "\n"

	text, err := s.transform(attrs, line)
	if err != nil {
		return err
	}

	s.out.Truncate(start)
	s.out.WriteString(text)
	return nil
}

// renderEmbed resolves an object insert. Only image embeds are recognized.
func (s *state) renderEmbed(payload map[string]any, attrs Attributes) (string, error) {
	image, ok := payload[embedImageKey]
	if !ok {
		return "", newValueError(KindIncorrectInsertType, "", payload)
	}

	src, isString := image.(string)
	alt := attrs.GetStringAttr(attrAlt, "")

	hookOutput, handled, err := s.applyEmbedRenderHook(EmbedRenderInput{
		SourcePath: s.options.SourcePath,
		EmbedType:  embedImageKey,
		Source:     src,
		Alt:        alt,
		Index:      s.opIndex,
		Payload:    cloneAnyMap(payload),
		Attrs:      Attributes(cloneAnyMap(attrs)),
	})
	if err != nil {
		return "", err
	}
	if handled {
		return hookOutput.Markdown, nil
	}

	if s.config.Embeds != EmbedImage {
		return "", newValueError(KindUnsupportedEmbed, embedImageKey, payload)
	}
	if !isString {
		return "", newValueError(KindIncorrectInsertType, "", payload)
	}

	return fmt.Sprintf("![%s](%s)", escapeAlt(alt), imageDestination(src)), nil
}

var altEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

func escapeAlt(alt string) string {
	return altEscaper.Replace(alt)
}

// imageDestination wraps sources that would break a bare link destination.
func imageDestination(src string) string {
	if strings.ContainsAny(src, " ()<>") {
		return "<" + strings.NewReplacer("<", "%3C", ">", "%3E").Replace(src) + ">"
	}
	return src
}
