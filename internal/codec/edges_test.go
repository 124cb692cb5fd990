package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"graphpaint/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeListParse(t *testing.T) {
	c := NewEdgeListCodec()

	t.Run("path graph", func(t *testing.T) {
		g, err := c.Parse(strings.NewReader("edge(v0, v1).\nedge(v1, v2).\n"))
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"v0", "v1", "v2"}, g.Vertices())
		assert.Equal(t, []domain.Edge{
			domain.NewEdge("v0", "v1"),
			domain.NewEdge("v1", "v2"),
		}, g.Edges())
	})

	t.Run("ignores other lines", func(t *testing.T) {
		input := strings.Join([]string{
			"% generated by clingo",
			"vertex(v0).",
			"",
			"  edge(v5, v6).",
			"edge(v0, v1).",
			"color(v0, 1).",
		}, "\n")

		g, err := c.Parse(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, []string{"v0", "v1"}, g.Vertices())
		assert.Len(t, g.Edges(), 1)
	})

	t.Run("trims tokens and trailing whitespace", func(t *testing.T) {
		g, err := c.Parse(strings.NewReader("edge( a,  b).  \r\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, g.Vertices())
	})

	t.Run("line without trailing period", func(t *testing.T) {
		g, err := c.Parse(strings.NewReader("edge(x, y)"))
		require.NoError(t, err)
		assert.True(t, g.HasEdge("y", "x"))
	})

	t.Run("lines longer than the scanner buffer", func(t *testing.T) {
		comment := "% " + strings.Repeat("x", 70*1024) + "\n"
		long := "edge(" + strings.Repeat("a", 80*1024) + ", b).\n"
		g, err := c.Parse(strings.NewReader(comment + "edge(v0, v1).\n" + long))
		require.NoError(t, err)

		assert.True(t, g.HasEdge("v0", "v1"))
		assert.True(t, g.HasEdge(strings.Repeat("a", 80*1024), "b"))
		assert.Equal(t, 4, g.Order())
	})

	t.Run("read error", func(t *testing.T) {
		_, err := c.Parse(iotest.ErrReader(errors.New("disk gone")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk gone")
	})

	t.Run("empty input", func(t *testing.T) {
		g, err := c.Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, g.Order())
	})
}

func TestEdgeListParseMalformed(t *testing.T) {
	c := NewEdgeListCodec()

	tests := []struct {
		name  string
		input string
	}{
		{"single vertex", "edge(v0)."},
		{"three vertices", "edge(v0, v1, v2)."},
		{"missing space", "edge(v0,v1)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Parse(strings.NewReader("edge(a, b).\n" + tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedEdge)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestEdgeListExport(t *testing.T) {
	c := NewEdgeListCodec()
	g, err := c.Parse(strings.NewReader("edge(v1, v0).\nedge(v1, v2).\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Export(domain.DeriveScene(g, domain.Layout{}), &buf))
	assert.Equal(t, "edge(v0, v1).\nedge(v1, v2).\n", buf.String())
}
