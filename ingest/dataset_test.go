package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataset_JSONList(t *testing.T) {
	doc := `[
		{"name": "Poodle", "traits": ["low_shedding", "curly_coat"]},
		{"name": "Beagle", "traits": ["friendly"]}
	]`

	records, err := ParseDataset([]byte(doc))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Poodle", records[0].Name)
	assert.Equal(t, []string{"low_shedding", "curly_coat"}, records[0].Traits)
}

func TestParseDataset_JSONWrapped(t *testing.T) {
	doc := `{"breeds": [{"name": "Akita", "traits": ["aloof"]}]}`

	records, err := ParseDataset([]byte(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Akita", records[0].Name)
}

func TestParseDataset_YAML(t *testing.T) {
	doc := `
breeds:
  - name: Basenji
    traits: [low_shedding, quiet]
  - name: Samoyed
    traits:
      - high_shedding
      - double_coat
`

	records, err := ParseDataset([]byte(doc))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"low_shedding", "quiet"}, records[0].Traits)
	assert.Equal(t, "Samoyed", records[1].Name)
}

func TestParseDataset_YAMLBareList(t *testing.T) {
	doc := `
- name: Pug
  traits: [small_size]
`

	records, err := ParseDataset([]byte(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Pug", records[0].Name)
}

func TestParseDataset_Malformed(t *testing.T) {
	for _, doc := range []string{`42`, `"breeds"`, `{"other": true}`, `@@@`} {
		_, err := ParseDataset([]byte(doc))
		assert.ErrorIs(t, err, ErrMalformedDataset, "doc: %s", doc)
	}
}
