package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
)

func TestParseFixture(t *testing.T) {
	cases := []struct {
		desc         string
		wantV, wantE int
	}{
		{"path:5", 5, 4},
		{"cycle:4", 4, 4},
		{"STAR:3", 3, 2},
		{"complete:4", 4, 6},
		{"grid:2x3", 6, 7},
		{" random:6:1 ", 6, 15},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			ctor, err := builder.ParseFixture(tc.desc)
			require.NoError(t, err)
			g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestParseFixture_Rejects(t *testing.T) {
	for _, desc := range []string{"", "path", "path:x", "grid:3", "grid:ax2", "random:5", "random:5:p", "tree:4", "cycle:3:1"} {
		_, err := builder.ParseFixture(desc)
		assert.ErrorIs(t, err, builder.ErrUnknownFixture, desc)
	}
}

func TestParseFixture_SizeCheckedByConstructor(t *testing.T) {
	ctor, err := builder.ParseFixture("cycle:2")
	require.NoError(t, err)
	_, err = builder.BuildGraph(nil, nil, ctor)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}
