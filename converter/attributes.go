package converter

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

const (
	codeFence      = "```"
	maxHeaderLevel = 4
)

// transform applies the recognized attributes to text in a fixed order:
// code-block, bold, italic, header. A true code-block wins over everything else.
func (s *state) transform(attrs Attributes, text string) (string, error) {
	if err := s.checkUnknownAttributes(attrs); err != nil {
		return "", err
	}

	if raw, ok := attrs[AttrCodeBlock]; ok {
		enabled, isBool := raw.(bool)
		if !isBool {
			return "", newValueError(KindInvalidCodeAttribute, AttrCodeBlock, raw)
		}
		if enabled {
			return codeFence + "\n" + text + codeFence, nil
		}
	}

	if raw, ok := attrs[AttrBold]; ok {
		enabled, isBool := raw.(bool)
		if !isBool {
			return "", newValueError(KindInvalidBoldAttribute, AttrBold, raw)
		}
		if enabled {
			text = "**" + text + "**"
		}
	}

	if raw, ok := attrs[AttrItalic]; ok {
		enabled, isBool := raw.(bool)
		if !isBool {
			return "", newValueError(KindInvalidItalicAttribute, AttrItalic, raw)
		}
		if enabled {
			text = "*" + text + "*"
		}
	}

	if raw, ok := attrs[AttrHeader]; ok {
		level, err := headerLevel(raw)
		if err != nil {
			return "", err
		}
		if level >= 1 && level <= maxHeaderLevel {
			text = strings.Repeat("#", int(level)) + " " + text
		} else {
			s.addWarning(WarningIgnoredAttribute, AttrHeader, fmt.Sprintf("header level %d is not rendered", level))
		}
	}

	return text, nil
}

// headerLevel accepts only non-negative integers.
func headerLevel(raw any) (uint64, error) {
	n, ok := raw.(json.Number)
	if !ok {
		return 0, newValueError(KindInvalidHeaderAttribute, AttrHeader, raw)
	}
	level, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, newValueError(KindInvalidHeaderAttribute, AttrHeader, raw)
	}
	return level, nil
}

func (s *state) checkUnknownAttributes(attrs Attributes) error {
	if s.config.UnknownAttributes == UnknownSkip {
		return nil
	}

	for _, key := range slices.Sorted(maps.Keys(attrs)) {
		if isRecognizedAttribute(key) || key == attrAlt {
			continue
		}
		if s.config.UnknownAttributes == UnknownError {
			return newValueError(KindUnknownAttribute, key, attrs[key])
		}
		s.addWarning(WarningUnknownAttribute, key, fmt.Sprintf("attribute %q is not supported and was ignored", key))
	}
	return nil
}
