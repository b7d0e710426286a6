package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatIsValid(t *testing.T) {
	assert.True(t, FormatJSON.IsValid())
	assert.True(t, FormatYAML.IsValid())
	assert.False(t, Format("xml").IsValid())
	assert.False(t, Format("").IsValid())
}

func TestMarshalJSONSortedKeys(t *testing.T) {
	data := map[string][]string{
		"web1": {"1.2.3.4"},
		"1":    {"1.2.3.4"},
		"nyc1": {"1.2.3.4"},
	}

	out, err := Marshal(FormatJSON, data)
	require.NoError(t, err)

	expected := `{
  "1": [
    "1.2.3.4"
  ],
  "nyc1": [
    "1.2.3.4"
  ],
  "web1": [
    "1.2.3.4"
  ]
}`
	assert.Equal(t, expected, string(out))
}

func TestMarshalYAML(t *testing.T) {
	data := map[string][]string{"nyc1": {"1.2.3.4"}}

	out, err := Marshal(FormatYAML, data)
	require.NoError(t, err)

	restored := make(map[string][]string)
	require.NoError(t, yaml.Unmarshal(out, &restored))
	assert.Equal(t, data, restored)
}

func TestMarshalEmptyStruct(t *testing.T) {
	out, err := Marshal(FormatJSON, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}
