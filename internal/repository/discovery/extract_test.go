package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONArray_PlainArray(t *testing.T) {
	raw := `[{"name":"A"},{"name":"B"}]`

	out, err := extractJSONArray(raw)
	assert.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestExtractJSONArray_WrappedInProse(t *testing.T) {
	raw := "Sure! Here are some products:\n```json\n[{\"name\":\"A\"}]\n```\nHope that helps."

	out, err := extractJSONArray(raw)
	assert.NoError(t, err)
	assert.Equal(t, `[{"name":"A"}]`, out)
}

func TestExtractJSONArray_NestedArrays(t *testing.T) {
	raw := `prefix [[1,2],[3,4]] suffix [5]`

	out, err := extractJSONArray(raw)
	assert.NoError(t, err)
	assert.Equal(t, `[[1,2],[3,4]]`, out)
}

func TestExtractJSONArray_BracketsInsideStrings(t *testing.T) {
	raw := `text [{"name":"Socket [EU] plug","note":"a \" quote"}] trailing`

	out, err := extractJSONArray(raw)
	assert.NoError(t, err)
	assert.Equal(t, `[{"name":"Socket [EU] plug","note":"a \" quote"}]`, out)
}

func TestExtractJSONArray_NoArray(t *testing.T) {
	_, err := extractJSONArray("no structured data here")
	assert.ErrorIs(t, err, errNoJSONArray)
}

func TestExtractJSONArray_Unbalanced(t *testing.T) {
	_, err := extractJSONArray(`starts but never ends [{"name":"A"}`)
	assert.Error(t, err)
}

func TestParseCandidates_StrictFirstThenExtraction(t *testing.T) {
	strict := `[{"name":"A","price":10,"brand":"X","category":"c"}]`
	candidates, err := parseCandidates(strict)
	assert.NoError(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, "A", candidates[0].Name)

	wrapped := "Here you go: " + strict + " enjoy!"
	candidates, err = parseCandidates(wrapped)
	assert.NoError(t, err)
	assert.Len(t, candidates, 1)

	_, err = parseCandidates("nothing useful")
	assert.Error(t, err)
}

func TestParseCandidates_MalformedEntriesSurvive(t *testing.T) {
	// entries with missing fields are kept; the search filter drops them later
	raw := `[{"name":"Good","price":10,"brand":"X","category":"c"},{"name":""}]`

	candidates, err := parseCandidates(raw)
	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.Nil(t, candidates[1].Price)
}
