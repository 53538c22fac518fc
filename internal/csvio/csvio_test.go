package csvio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	header := []string{"id", "title", "price"}
	rows := []map[string]string{
		{"id": "1", "title": "Luxury Modern Home", "price": "1299000"},
		{"id": "2", "title": "Condo, downtown", "price": "899000"},
	}

	text, err := Encode(header, rows)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "id,title,price\n"))

	decoded, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, rows[0], decoded[0])
	// Comma in a cell survives via quoting.
	assert.Equal(t, "Condo, downtown", decoded[1]["title"])
}

func TestDecodeSkipsBlankLines(t *testing.T) {
	text := "id,name\n\n1,Alice\n\n\n2,Bob\n\n"
	rows, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0]["name"])
	assert.Equal(t, "Bob", rows[1]["name"])
}

func TestDecodeShortRowsYieldEmptyCells(t *testing.T) {
	text := "id,name,email\n1,Alice\n"
	rows, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0]["name"])
	assert.Equal(t, "", rows[0]["email"])
}

func TestDecodeTrimsHeaderNames(t *testing.T) {
	text := " id , name \n1,Alice\n"
	rows, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0]["id"])
	assert.Equal(t, "Alice", rows[0]["name"])
}

func TestDecodeHeaderOnly(t *testing.T) {
	rows, err := Decode("id,name\n")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestJoinAndSplitList(t *testing.T) {
	items := []string{"https://a.test/1.jpg", "https://a.test/2.jpg"}
	cell := JoinList(items)
	assert.Equal(t, "https://a.test/1.jpg|https://a.test/2.jpg", cell)
	assert.Equal(t, items, SplitList(cell))
}

func TestSplitListDropsEmptyElements(t *testing.T) {
	assert.Empty(t, SplitList(""))
	assert.NotNil(t, SplitList(""))
	assert.Equal(t, []string{"a", "b"}, SplitList("a|  |b|"))
}

// An element containing the separator cannot round-trip: it splits
// into two on read. Documented limitation of the packed format.
func TestSplitListSeparatorInElement(t *testing.T) {
	cell := JoinList([]string{"hardwood|granite", "garage"})
	assert.Equal(t, []string{"hardwood", "granite", "garage"}, SplitList(cell))
}
