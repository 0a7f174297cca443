package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVariant_UnmarshalLabelResolutionOrder(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedKind LabelKind
		expectedText string
	}{
		{"type wins over everything", `{"type":"T","style":"S","hook":"H","title":"X"}`, LabelType, "T"},
		{"style when no type", `{"style":"S","hook":"H","title":"X"}`, LabelStyle, "S"},
		{"hook when no style", `{"hook":"H","title":"X"}`, LabelHook, "H"},
		{"title last", `{"title":"X"}`, LabelTitle, "X"},
		{"empty type is skipped", `{"type":"","style":"S"}`, LabelStyle, "S"},
		{"no label fields", `{"content":"body"}`, LabelPositional, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Variant
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.expectedKind, v.Label.Kind)
			assert.Equal(t, tt.expectedText, v.Label.Text)
		})
	}
}

func TestVariant_UnmarshalBodyKinds(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedKind BodyKind
		expectedText string
	}{
		{"flat content", `{"content":"hello"}`, BodyFlat, "hello"},
		{"thread joined with blank lines", `{"thread":["one","two","three"]}`, BodyThread, "one\n\ntwo\n\nthree"},
		{"content wins over thread", `{"content":"flat","thread":["a","b"]}`, BodyFlat, "flat"},
		{"empty content falls back to thread", `{"content":"","thread":["a"]}`, BodyThread, "a"},
		{"nothing", `{"type":"x"}`, BodyEmpty, ""},
		{"empty thread", `{"thread":[]}`, BodyEmpty, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Variant
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.expectedKind, v.Body.Kind)
			assert.Equal(t, tt.expectedText, v.Text())
		})
	}
}

func TestVariant_DisplayLabelFallsBackToPosition(t *testing.T) {
	var v Variant
	require.NoError(t, json.Unmarshal([]byte(`{"subject":"Hi","content":"x"}`), &v))

	assert.Equal(t, "Variation 1", v.DisplayLabel(0))
	assert.Equal(t, "Variation 3", v.DisplayLabel(2))
	assert.Equal(t, "Hi", v.Subject)

	labelled := NewFlatVariant(LabelType, "Insight", "body")
	assert.Equal(t, "Insight", labelled.DisplayLabel(4))
}

func TestVariant_MarshalWritesWireShape(t *testing.T) {
	thread := NewThreadVariant(LabelHook, "hook line", []string{"a", "b"})
	data, err := json.Marshal(thread)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hook":"hook line","thread":["a","b"]}`, string(data))

	email := NewFlatVariant(LabelPositional, "", "dear reader")
	email.Subject = "Weekly"
	data, err = json.Marshal(email)
	require.NoError(t, err)
	assert.JSONEq(t, `{"subject":"Weekly","content":"dear reader"}`, string(data))
}

func TestVariant_UnmarshalRejectsWrongTypes(t *testing.T) {
	var v Variant
	err := json.Unmarshal([]byte(`{"content":42}`), &v)
	assert.Error(t, err)
}

func TestVariant_MarshalYAMLWritesWireShape(t *testing.T) {
	result := RepurposeResult{
		Success: true,
		Results: map[Platform][]Variant{
			PlatformTwitter: {NewThreadVariant(LabelHook, "hook line", []string{"a", "b"})},
		},
	}

	data, err := yaml.Marshal(result)
	require.NoError(t, err)
	assert.YAMLEq(t, `
success: true
results:
  twitter:
    - hook: hook line
      thread: [a, b]
`, string(data))
}
