package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/yaml.v3"
)

type sample struct {
	Value  string `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}

func TestWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(context.Background(), sample{Value: "12.0", Source: "extracted"}))

	var got sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "12.0", got.Value)
	assert.Equal(t, "extracted", got.Source)
}

func TestWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(context.Background(), sample{Value: "0.0.0", Source: "fallback"}))

	var got sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "0.0.0", got.Value)
	assert.Equal(t, "fallback", got.Source)
}

func TestWriterTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), sample{Value: "12.0", Source: "extracted"}))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "value")
	assert.Contains(t, out, "12.0")
	assert.Contains(t, out, "extracted")
}

func TestWriterTableNested(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	data := map[string]any{
		"cases": []sample{
			{Value: "12.0", Source: "extracted"},
			{Value: "0.0.0", Source: "fallback"},
		},
	}
	require.NoError(t, w.Serialize(context.Background(), data))

	out := buf.String()
	assert.Contains(t, out, "cases.[0].value")
	assert.Contains(t, out, "cases.[1].source")
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	require.NoError(t, w.Serialize(context.Background(), sample{Value: "5.0"}))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriterOrStdout(FormatJSON, path)

	require.NoError(t, w.Serialize(context.Background(), sample{Value: "12.0"}))
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "12.0")
}

func TestNewFileWriterOrStdoutEmptyPath(t *testing.T) {
	w := NewFileWriterOrStdout(FormatJSON, "  ")
	assert.NotNil(t, w)
	assert.NoError(t, w.Close())
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	assert.Len(t, formats, 3)
	for _, f := range formats {
		assert.False(t, Format(f).IsUnknown())
	}
}
