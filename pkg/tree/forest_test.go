package tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForest_Regenerate(t *testing.T) {
	cfg := testConfig()
	f := NewForest(cfg, rand.New(rand.NewSource(5)))

	require.Len(t, f.Trees(), 1)
	first := f.Trees()[0]

	cfg.ProbNext = 0
	f.Regenerate(cfg)

	require.Len(t, f.Trees(), 1)
	second := f.Trees()[0]
	assert.NotSame(t, first, second)
	assert.Equal(t, 0.0, f.Config().ProbNext)
	assert.Equal(t, 2, second.Depth())

	// Nothing from the previous generation is reachable from the new one.
	second.Walk(func(n *Node, _ int) {
		first.Walk(func(old *Node, _ int) {
			assert.NotSame(t, old, n)
		})
	})
}

func TestForest_DrawDebugFlag(t *testing.T) {
	cfg := testConfig()
	cfg.ProbNext = 0
	cfg.MinLeaves, cfg.MaxLeaves = 2, 2

	f := NewForest(cfg, rand.New(rand.NewSource(9)))

	r := &recorder{}
	f.Draw(r, Origin(100, 100))
	assert.Len(t, r.shapes, 3)

	cfg.Debug = true
	f.Regenerate(cfg)

	r = &recorder{}
	f.Draw(r, Origin(100, 100))
	require.Len(t, r.shapes, 6)
	assert.Equal(t, cfg.DebugColor, r.shapes[1].stroke)

	// The trunk starts at the bottom center and grows up the screen.
	trunk := r.shapes[0].points
	assertXY(t, Origin(100, 100), trunk[0].Plus(trunk[1]).Divide(2))
	assert.Less(t, trunk[2].Y, 100.0)
}
