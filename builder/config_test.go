package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
}

func TestNewBuilderConfig_LastOptionWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSymbolIDs(), WithExcelColumnIDs())
	assert.Equal(t, "AB", cfg.idFn(27))

	cfg = newBuilderConfig(WithSymbolIDs(), WithDefaultIDs())
	assert.Equal(t, "3", cfg.idFn(3))

	cfg = newBuilderConfig(WithConstantWeight(2), WithConstantWeight(5))
	assert.Equal(t, 5.0, cfg.weightFn(nil))
}

func TestNewBuilderConfig_RandSources(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithRand(r))
	assert.Same(t, r, c.rng)
}
