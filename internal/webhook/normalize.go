package webhook

import (
	"bytes"
	"encoding/json"

	"github.com/boshify/content-brief-generator/internal/domain"
)

type DecodedKind string

const (
	// DecodedOutline means the body normalized into an outline shape and
	// reconciliation may proceed.
	DecodedOutline DecodedKind = "outline"
	// DecodedRawText means the body was not structured data; the text is
	// kept for manual inspection and nothing is merged.
	DecodedRawText DecodedKind = "raw_text"
	// DecodedMalformed means the body was valid JSON but not an object in
	// any accepted wrapping; nothing is merged.
	DecodedMalformed DecodedKind = "malformed"
)

// Decoded is the tagged result of normalizing a webhook response body.
// Callers switch on Kind before touching Outline or Raw.
type Decoded struct {
	Kind    DecodedKind
	Outline *domain.IncomingOutline
	Raw     string
}

// Decode normalizes an arbitrary response body. Accepted wrappings: a plain
// object, a one-element array around an object, and an object nested one
// level under an "output" key. Missing keys are not errors; they normalize
// to blank fields or empty groups.
func Decode(body []byte) Decoded {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		// An empty reply means "no changes", which the merge already
		// expresses as an outline with no groups.
		return Decoded{Kind: DecodedOutline, Outline: emptyIncoming()}
	}

	var top interface{}
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return Decoded{Kind: DecodedRawText, Raw: string(trimmed)}
	}

	obj, ok := unwrap(top)
	if !ok {
		return Decoded{Kind: DecodedMalformed, Raw: string(trimmed)}
	}

	return Decoded{Kind: DecodedOutline, Outline: normalizeOutline(obj)}
}

func unwrap(top interface{}) (map[string]interface{}, bool) {
	if arr, ok := top.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, false
		}
		top = arr[0]
	}
	obj, ok := top.(map[string]interface{})
	if !ok {
		return nil, false
	}
	if inner, ok := obj["output"].(map[string]interface{}); ok {
		return inner, true
	}
	return obj, true
}

func emptyIncoming() *domain.IncomingOutline {
	return &domain.IncomingOutline{Groups: make(map[domain.GroupName][]domain.IncomingSection)}
}

func normalizeOutline(obj map[string]interface{}) *domain.IncomingOutline {
	in := emptyIncoming()
	in.Title = titleText(obj["H1"])

	for _, g := range domain.GroupOrder {
		arr, ok := obj[string(g)].([]interface{})
		if !ok {
			continue
		}
		sections := make([]domain.IncomingSection, 0, len(arr))
		for _, raw := range arr {
			item, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			sections = append(sections, normalizeSection(item))
		}
		in.Groups[g] = sections
	}
	return in
}

// titleText accepts both a bare string and a {"text": ...} object for H1.
func titleText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]interface{}:
		if s, ok := t["text"].(string); ok {
			return s
		}
	}
	return ""
}

func normalizeSection(item map[string]interface{}) domain.IncomingSection {
	sec := domain.IncomingSection{
		HeadingName:  stringField(item, "H2"),
		Description:  stringField(item, "Methodology"),
		HeadingLevel: domain.HeadingLevel(stringField(item, "HeadingLevel")),
		AnswerType:   domain.AnswerType(stringField(item, "Answer Type")),
		AnswerLength: domain.AnswerLength(stringField(item, "Answer Length")),
	}
	if !sec.HeadingLevel.Valid() {
		sec.HeadingLevel = domain.DefaultHeadingLevel
	}
	if !sec.AnswerType.Valid() {
		sec.AnswerType = domain.AnswerTypeAuto
	}
	if !sec.AnswerLength.Valid() {
		sec.AnswerLength = domain.AnswerLengthMedium
	}
	return sec
}

func stringField(item map[string]interface{}, key string) string {
	if s, ok := item[key].(string); ok {
		return s
	}
	return ""
}
