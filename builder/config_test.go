// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
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
	assert.Equal(t, DefaultTopicKey, cfg.topicKey)
	assert.Equal(t, TopicSecondHalf, cfg.topicFn("Strozzi"))
	assert.Zero(t, cfg.edgeWeight(false))
	assert.Equal(t, DefaultEdgeWeight, cfg.edgeWeight(true))
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithLetterIDs(), WithSymbNumb("v"), WithTopicKey(""), WithConstantWeight(3))
	assert.Equal(t, "v2", cfg.idFn(2))
	assert.Equal(t, DefaultTopicKey, cfg.topicKey)
	assert.Equal(t, 3.0, cfg.edgeWeight(true))

	cfg = newBuilderConfig(WithSymbNumb("v"), WithLetterIDs(), WithTopicKey("sentiment"))
	assert.Equal(t, "c", cfg.idFn(2))
	assert.Equal(t, "sentiment", cfg.topicKey)
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithWeightFn(nil) })
	assert.Panics(t, func() { WithTopicFn(nil) })
	assert.Panics(t, func() { ConstantWeightFn(-1) })
	assert.Panics(t, func() { UniformWeightFn(2, 1) })
	assert.Panics(t, func() { LetterIDFn(26) })
}

func TestUniformWeightFn_SeededAndBounded(t *testing.T) {
	t.Parallel()

	fn := UniformWeightFn(2, 5)
	a := rand.New(rand.NewSource(1))
	b := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		wa, wb := fn(a), fn(b)
		assert.Equal(t, wa, wb)
		assert.GreaterOrEqual(t, wa, 2.0)
		assert.Less(t, wa, 5.0)
	}
	assert.Equal(t, DefaultEdgeWeight, fn(nil))
	assert.Equal(t, 4.0, UniformWeightFn(4, 4)(a))
}
