package converter

// Op is a single element of a delta document's ops array.
type Op map[string]any

// Attributes is the formatting metadata attached to an insert op.
type Attributes map[string]any

// Recognized attribute keys.
const (
	AttrBold      = "bold"
	AttrItalic    = "italic"
	AttrCodeBlock = "code-block"
	AttrHeader    = "header"

	// attrAlt is only meaningful on image embeds.
	attrAlt = "alt"
)

// embedImageKey marks an insert object as an image embed.
const embedImageKey = "image"

// Insert returns the insert payload and whether the op carries one.
func (o Op) Insert() (any, bool) {
	v, ok := o["insert"]
	return v, ok
}

// Attributes returns the attribute set of the op. A present but non-object
// value is reported as a malformed attributes error.
func (o Op) Attributes() (Attributes, bool, error) {
	raw, ok := o["attributes"]
	if !ok {
		return nil, false, nil
	}
	attrs, isObject := raw.(map[string]any)
	if !isObject {
		return nil, false, newValueError(KindMalformedInsertAttributes, "", raw)
	}
	return Attributes(attrs), true, nil
}

// GetStringAttr returns a string attribute value or the fallback.
func (a Attributes) GetStringAttr(key, fallback string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return fallback
}

func isRecognizedAttribute(key string) bool {
	switch key {
	case AttrBold, AttrItalic, AttrCodeBlock, AttrHeader:
		return true
	default:
		return false
	}
}
