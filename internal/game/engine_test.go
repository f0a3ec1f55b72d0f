package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkGame(label string, nums ...int) Game {
	return Game{Type: TypeA, Label: label, Numbers: nums}
}

// A reference set with a pool rich enough to satisfy the distribution
// rules for Type B recombinations.
func testRefs() []Game {
	return []Game{
		mkGame("Janine", 3, 8, 11, 14, 16, 29),
		mkGame("Giselle", 6, 30, 32, 33, 40, 60),
		mkGame("Paulo", 5, 17, 22, 38, 41, 57),
	}
}

func TestNewGeneratorPools(t *testing.T) {
	gen, err := NewGenerator(testRefs())
	require.NoError(t, err)

	known := gen.Known()
	unknown := gen.Unknown()
	assert.Len(t, known, 18)
	assert.Len(t, unknown, 60-18)

	inKnown := map[int]bool{}
	for _, n := range known {
		inKnown[n] = true
	}
	for _, n := range unknown {
		assert.False(t, inKnown[n], "number %d in both pools", n)
	}
}

func TestNewGeneratorValidation(t *testing.T) {
	_, err := NewGenerator(nil)
	assert.Error(t, err, "empty reference set must be rejected")

	_, err = NewGenerator([]Game{mkGame("", 1, 2, 3, 4, 5)})
	assert.Error(t, err, "structurally invalid reference must be rejected")

	dup := []Game{
		mkGame("a", 3, 8, 11, 14, 16, 29),
		mkGame("b", 3, 8, 11, 14, 16, 29),
	}
	_, err = NewGenerator(dup)
	assert.Error(t, err, "duplicate reference games must be rejected")
}

func TestGenerateMultiplierRange(t *testing.T) {
	gen, err := NewGenerator(testRefs())
	require.NoError(t, err)

	for _, m := range []int{0, -1, 6} {
		_, err := gen.Generate(m)
		assert.Error(t, err, "multiplier %d must be rejected", m)
	}
}

func TestGenerateProperties(t *testing.T) {
	refs := testRefs()
	gen, err := NewGenerator(refs)
	require.NoError(t, err)

	games, err := gen.Generate(5)
	require.NoError(t, err)

	// 3 refs × multiplier 5 = 15 total; 75% of 15 minus the 3 pass-through
	// games = 8 Type B; the remainder is 4 Type C.
	require.Len(t, games, 15)

	counts := map[Type]int{}
	seen := map[string]bool{}
	known := map[int]bool{}
	for _, n := range gen.Known() {
		known[n] = true
	}

	for i, g := range games {
		require.NoError(t, CheckNumbers(g.Numbers), "game %d", i)
		assert.False(t, seen[g.Key()], "duplicate game %s", g.Key())
		seen[g.Key()] = true
		counts[g.Type]++

		switch g.Type {
		case TypeA:
			continue
		case TypeB:
			for _, n := range g.Numbers {
				assert.True(t, known[n], "type B game %d holds unknown number %d", i, n)
			}
		case TypeC:
			fromKnown := 0
			for _, n := range g.Numbers {
				if known[n] {
					fromKnown++
				}
			}
			assert.GreaterOrEqual(t, fromKnown, 1, "type C game %d", i)
			assert.LessOrEqual(t, fromKnown, 2, "type C game %d", i)
		}
		assert.NoError(t, CheckDistribution(g.Numbers), "game %d", i)
		assert.NotEmpty(t, g.ID, "generated game %d has no ID", i)
	}

	assert.Equal(t, 3, counts[TypeA])
	assert.Equal(t, 8, counts[TypeB])
	assert.Equal(t, 4, counts[TypeC])

	// Pass-through games are the references, unchanged and in order.
	for i, ref := range refs {
		assert.Equal(t, ref.Numbers, games[i].Numbers)
		assert.Equal(t, ref.Label, games[i].Label)
		assert.Equal(t, TypeA, games[i].Type)
	}
}

// At multiplier 1 the Type B quota is negative (clamped to zero), but the
// raw value still feeds the Type C count, so a 2-game reference set yields
// 2 pass-through games plus one exploratory one.
func TestGenerateMultiplierOne(t *testing.T) {
	refs := []Game{
		mkGame("A", 1, 2, 3, 4, 5, 6),
		mkGame("B", 10, 20, 30, 40, 50, 60),
	}
	gen, err := NewGenerator(refs)
	require.NoError(t, err)

	games, err := gen.Generate(1)
	require.NoError(t, err)
	require.Len(t, games, 3)

	assert.Equal(t, TypeA, games[0].Type)
	assert.Equal(t, TypeA, games[1].Type)
	assert.Equal(t, TypeC, games[2].Type)
	assert.NoError(t, CheckDistribution(games[2].Numbers))
}

// A single reference game leaves only one possible Type B combination (the
// reference itself, which is always a duplicate), so a high multiplier must
// surface exhaustion instead of hanging or emitting invalid games.
func TestGenerateExhausted(t *testing.T) {
	refs := []Game{mkGame("solo", 1, 10, 22, 35, 47, 59)}
	gen, err := NewGenerator(refs)
	require.NoError(t, err)

	_, err = gen.Generate(5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExhausted), "want ErrExhausted, got %v", err)
}
