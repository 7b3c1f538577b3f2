package webhook

import (
	"testing"

	"github.com/boshify/content-brief-generator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PlainObject(t *testing.T) {
	body := []byte(`{
		"H1": "Widgets 101",
		"MainContent": [
			{"H2": "Intro", "Methodology": "Body", "HeadingLevel": "H4", "Answer Type": "EDA", "Answer Length": "Large"}
		],
		"SupplementaryContent": []
	}`)

	decoded := Decode(body)
	require.Equal(t, DecodedOutline, decoded.Kind)
	assert.Equal(t, "Widgets 101", decoded.Outline.Title)

	sections := decoded.Outline.Groups[domain.GroupMainContent]
	require.Len(t, sections, 1)
	assert.Equal(t, "Intro", sections[0].HeadingName)
	assert.Equal(t, "Body", sections[0].Description)
	assert.Equal(t, domain.HeadingLevelH4, sections[0].HeadingLevel)
	assert.Equal(t, domain.AnswerTypeEDA, sections[0].AnswerType)
	assert.Equal(t, domain.AnswerLengthLarge, sections[0].AnswerLength)

	assert.Empty(t, decoded.Outline.Groups[domain.GroupSupplementaryContent])
	_, present := decoded.Outline.Groups[domain.GroupContextualBorder]
	assert.False(t, present, "absent groups stay absent, not empty-but-present")
}

func TestDecode_SingleElementArray(t *testing.T) {
	body := []byte(`[{"H1": "Wrapped", "MainContent": [{"H2": "A"}]}]`)

	decoded := Decode(body)
	require.Equal(t, DecodedOutline, decoded.Kind)
	assert.Equal(t, "Wrapped", decoded.Outline.Title)
	assert.Len(t, decoded.Outline.Groups[domain.GroupMainContent], 1)
}

func TestDecode_OutputWrapper(t *testing.T) {
	body := []byte(`{"output": {"H1": "Nested", "ContextualBorder": [{"H2": "B"}]}}`)

	decoded := Decode(body)
	require.Equal(t, DecodedOutline, decoded.Kind)
	assert.Equal(t, "Nested", decoded.Outline.Title)
	assert.Len(t, decoded.Outline.Groups[domain.GroupContextualBorder], 1)
}

func TestDecode_TitleObjectForm(t *testing.T) {
	decoded := Decode([]byte(`{"H1": {"text": "Object title", "lock": true}}`))
	require.Equal(t, DecodedOutline, decoded.Kind)
	assert.Equal(t, "Object title", decoded.Outline.Title)
}

func TestDecode_MissingKeysNormalizeToDefaults(t *testing.T) {
	decoded := Decode([]byte(`{"MainContent": [{}]}`))
	require.Equal(t, DecodedOutline, decoded.Kind)

	sections := decoded.Outline.Groups[domain.GroupMainContent]
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].HeadingName)
	assert.Empty(t, sections[0].Description)
	assert.Equal(t, domain.DefaultHeadingLevel, sections[0].HeadingLevel)
	assert.Equal(t, domain.AnswerTypeAuto, sections[0].AnswerType)
	assert.Equal(t, domain.AnswerLengthMedium, sections[0].AnswerLength)
}

func TestDecode_InvalidEnumValuesFallBack(t *testing.T) {
	decoded := Decode([]byte(`{"MainContent": [{"HeadingLevel": "H9", "Answer Type": "Nonsense", "Answer Length": "Tiny"}]}`))
	require.Equal(t, DecodedOutline, decoded.Kind)

	sec := decoded.Outline.Groups[domain.GroupMainContent][0]
	assert.Equal(t, domain.DefaultHeadingLevel, sec.HeadingLevel)
	assert.Equal(t, domain.AnswerTypeAuto, sec.AnswerType)
	assert.Equal(t, domain.AnswerLengthMedium, sec.AnswerLength)
}

func TestDecode_NonJSONBodyIsRawText(t *testing.T) {
	decoded := Decode([]byte("  Execution failed at node 'Build outline'  "))
	require.Equal(t, DecodedRawText, decoded.Kind)
	assert.Equal(t, "Execution failed at node 'Build outline'", decoded.Raw)
	assert.Nil(t, decoded.Outline)
}

func TestDecode_EmptyBodyMeansNoChanges(t *testing.T) {
	decoded := Decode([]byte("  \n "))
	require.Equal(t, DecodedOutline, decoded.Kind)
	assert.Empty(t, decoded.Outline.Title)
	assert.Empty(t, decoded.Outline.Groups)
}

func TestDecode_MalformedShapes(t *testing.T) {
	for _, body := range []string{`[]`, `[1]`, `42`, `"just a JSON string"`, `[["nested"]]`} {
		decoded := Decode([]byte(body))
		assert.Equalf(t, DecodedMalformed, decoded.Kind, "body %s", body)
		assert.Nil(t, decoded.Outline)
	}
}

func TestDecode_NonObjectGroupItemsAreSkipped(t *testing.T) {
	decoded := Decode([]byte(`{"MainContent": [{"H2": "Keep"}, "drop me", 7]}`))
	require.Equal(t, DecodedOutline, decoded.Kind)

	sections := decoded.Outline.Groups[domain.GroupMainContent]
	require.Len(t, sections, 1)
	assert.Equal(t, "Keep", sections[0].HeadingName)
}
