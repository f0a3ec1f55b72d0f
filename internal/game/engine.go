// internal/game/engine.go
//
// Generation engine for derived Mega-Sena combinations.
// Responsibilities:
//   - Classify the number pool from the reference games (known vs unknown).
//   - Pass reference games through unchanged as Type A.
//   - Produce Type B games by recombining numbers from the known pool.
//   - Produce Type C games mixing 1-2 known numbers with unseen ones.
//   - Enforce distribution rules, global uniqueness, and a retry ceiling.
//
// Notes:
//   - A Generator owns its own random source; construct one per submission
//     so concurrent requests share no state.
//   - Rejection sampling is bounded: a candidate slot that cannot be filled
//     within maxAttempts surfaces ErrExhausted instead of spinning.

package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

const (
	// MinMultiplier and MaxMultiplier bound the user-selectable scale factor.
	MinMultiplier = 1
	MaxMultiplier = 5

	// typeBShare of the multiplier-scaled total is produced as Type B;
	// what remains after the pass-through games becomes Type C.
	typeBShare = 0.75

	// maxAttempts bounds the rejection-sampling loop per requested game.
	maxAttempts = 10000
)

// ErrExhausted reports that rejection sampling could not produce a valid
// unique candidate within the attempt ceiling, which usually means the
// reference pool is too small for the requested multiplier. Callers may retry with a
// lower multiplier or more reference games.
var ErrExhausted = errors.New("combination pool exhausted")

// Generator derives new combinations from a fixed reference set.
type Generator struct {
	refs    []Game
	known   []int // distinct numbers present in the reference games, sorted
	unknown []int // [MinNumber,MaxNumber] minus known, sorted
	rng     *rand.Rand
}

// NewGenerator validates the reference set, classifies the number pool, and
// seeds the generator's private random source. The reference set must be
// non-empty, each game structurally valid, and free of duplicate games
// (a duplicate reference would break the global-uniqueness invariant of
// the output).
func NewGenerator(refs []Game) (*Generator, error) {
	if len(refs) == 0 {
		return nil, errors.New("reference set is empty")
	}
	seen := make(map[string]struct{}, len(refs))
	knownSet := make(map[int]struct{})
	for i := range refs {
		// Canonical order, so Key comparisons hold for unsorted input.
		slices.Sort(refs[i].Numbers)
		if err := CheckNumbers(refs[i].Numbers); err != nil {
			return nil, fmt.Errorf("reference game %d: %w", i+1, err)
		}
		k := refs[i].Key()
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("duplicate reference game: %s", k)
		}
		seen[k] = struct{}{}
		for _, n := range refs[i].Numbers {
			knownSet[n] = struct{}{}
		}
	}

	g := &Generator{
		refs: refs,
		// Seeded from the process-global auto-seeded source; no caller
		// seed is exposed and reproducibility is not guaranteed.
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for n := MinNumber; n <= MaxNumber; n++ {
		if _, ok := knownSet[n]; ok {
			g.known = append(g.known, n)
		} else {
			g.unknown = append(g.unknown, n)
		}
	}
	return g, nil
}

// Known returns the distinct numbers appearing across the reference games.
func (g *Generator) Known() []int { return slices.Clone(g.known) }

// Unknown returns the numbers absent from every reference game.
func (g *Generator) Unknown() []int { return slices.Clone(g.unknown) }

// Generate runs one full pass: the Type A pass-through followed by Type B
// and Type C sampling. The multiplier scales the requested total
// (len(refs) × multiplier); roughly 75% of the generated remainder is
// Type B and the rest Type C.
func (g *Generator) Generate(multiplier int) ([]Game, error) {
	if multiplier < MinMultiplier || multiplier > MaxMultiplier {
		return nil, fmt.Errorf("multiplier must be between %d and %d, got %d", MinMultiplier, MaxMultiplier, multiplier)
	}

	total := len(g.refs) * multiplier
	numB := int(float64(total)*typeBShare) - len(g.refs)
	// numB goes negative when the multiplier barely covers the reference
	// set; the raw value still feeds the Type C count before clamping.
	numC := total - len(g.refs) - numB
	if numB < 0 {
		numB = 0
	}
	if numC < 0 {
		numC = 0
	}

	out := make([]Game, 0, len(g.refs)+numB+numC)
	seen := make(map[string]struct{}, cap(out))
	for _, ref := range g.refs {
		ref.Type = TypeA
		seen[ref.Key()] = struct{}{}
		out = append(out, ref)
	}

	for i := 0; i < numB; i++ {
		gm, err := g.sample(TypeB, seen, g.drawTypeB)
		if err != nil {
			return nil, fmt.Errorf("type B game %d of %d: %w", i+1, numB, err)
		}
		out = append(out, gm)
	}
	for i := 0; i < numC; i++ {
		gm, err := g.sample(TypeC, seen, g.drawTypeC)
		if err != nil {
			return nil, fmt.Errorf("type C game %d of %d: %w", i+1, numC, err)
		}
		out = append(out, gm)
	}
	return out, nil
}

// sample retries draw until a candidate passes the distribution rules and
// is unique across everything produced so far, up to maxAttempts. A draw
// reporting ok=false means the pool is structurally too small and retrying
// cannot help.
func (g *Generator) sample(t Type, seen map[string]struct{}, draw func() ([]int, bool)) (Game, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		nums, ok := draw()
		if !ok {
			break
		}
		if CheckDistribution(nums) != nil {
			continue
		}
		gm := Game{Type: t, Numbers: nums}
		if _, dup := seen[gm.Key()]; dup {
			continue
		}
		seen[gm.Key()] = struct{}{}
		gm.ID = NewID()
		return gm, nil
	}
	return Game{}, ErrExhausted
}

// drawTypeB samples 6 distinct numbers from the known pool.
func (g *Generator) drawTypeB() ([]int, bool) {
	if len(g.known) < GameSize {
		return nil, false
	}
	nums := g.sampleDistinct(g.known, GameSize)
	slices.Sort(nums)
	return nums, true
}

// drawTypeC samples 1-2 numbers from the known pool and fills the rest
// from the unknown pool. The pools are disjoint, so distinctness holds by
// construction.
func (g *Generator) drawTypeC() ([]int, bool) {
	if len(g.unknown) < GameSize-2 {
		return nil, false
	}
	base := 1 + g.rng.IntN(2)
	if len(g.unknown) < GameSize-base {
		base = GameSize - len(g.unknown)
	}
	nums := g.sampleDistinct(g.known, base)
	nums = append(nums, g.sampleDistinct(g.unknown, GameSize-base)...)
	slices.Sort(nums)
	return nums, true
}

// sampleDistinct draws k values from pool without replacement via a
// partial Fisher-Yates shuffle over a copy. Callers guarantee k ≤ len(pool).
func (g *Generator) sampleDistinct(pool []int, k int) []int {
	tmp := slices.Clone(pool)
	for i := 0; i < k; i++ {
		j := i + g.rng.IntN(len(tmp)-i)
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}
	return tmp[:k:k]
}
