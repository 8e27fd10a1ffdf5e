package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldsCoercion(t *testing.T) {
	t.Parallel()

	f := Fields{
		"title":    "Hero",
		"empty":    "",
		"flag":     true,
		"flagText": "true",
		"price":    json.Number("12.5"),
		"count":    int32(3),
		"text":     "9.99",
		"list":     []any{"a", 1, "b"},
		"lines":    "first\n\n  second  \r\n",
	}

	assert.Equal(t, "Hero", f.String("title", "x"))
	assert.Equal(t, "x", f.String("empty", "x"))
	assert.Equal(t, "x", f.String("missing", "x"))
	assert.Equal(t, "x", f.String("count", "x"))

	assert.True(t, f.Bool("flag", false))
	assert.True(t, f.Bool("flagText", false))
	assert.False(t, f.Bool("missing", false), "missing isMain falls back to false")

	assert.InDelta(t, 12.5, f.Float("price", 0), 0.0001)
	assert.InDelta(t, 3, f.Float("count", 0), 0.0001)
	assert.InDelta(t, 9.99, f.Float("text", 0), 0.0001)
	assert.InDelta(t, 7, f.Float("title", 7), 0.0001)

	assert.Equal(t, []string{"a", "b"}, f.Strings("list"))
	assert.Equal(t, []string{"first", "second"}, f.Strings("lines"))
	assert.Equal(t, []string{}, f.Strings("missing"))
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Full HD export", "Two revisions"}, SplitLines(" Full HD export \n\n Two revisions\n"))
	assert.Empty(t, SplitLines("   \n \n"))
}
