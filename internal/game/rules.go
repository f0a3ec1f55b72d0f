// internal/game/rules.go
//
// Validation for candidate combinations.
// Two layers:
//   - CheckNumbers: structural rules every game must satisfy
//     (exactly 6 distinct numbers, all within [1,60]).
//   - CheckDistribution: heuristic distribution rules applied to
//     generated (Type B/C) candidates only.

package game

import "fmt"

const (
	// GameSize is the number of picks in one Mega-Sena game.
	GameSize = 6
	// MinNumber and MaxNumber bound the pickable range.
	MinNumber = 1
	MaxNumber = 60

	lowCutoff = 30 // numbers in [1,30] count as "low"
	minLow    = 2
	maxLow    = 4

	maxPerDecade   = 3
	maxPerTerminal = 2
)

// CheckNumbers validates the structural invariants: exactly GameSize
// distinct numbers, each within [MinNumber, MaxNumber].
func CheckNumbers(nums []int) error {
	if len(nums) != GameSize {
		return fmt.Errorf("a game must contain exactly %d numbers, got %d", GameSize, len(nums))
	}
	seen := make(map[int]struct{}, GameSize)
	for _, n := range nums {
		if n < MinNumber || n > MaxNumber {
			return fmt.Errorf("number %d is outside the range %d-%d", n, MinNumber, MaxNumber)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("number %d is repeated", n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// CheckDistribution applies the heuristic distribution rules:
//   - between minLow and maxLow numbers in [1,30] (the high count follows);
//   - at most maxPerDecade numbers in the same decade bucket;
//   - at most maxPerTerminal numbers sharing a terminal digit.
//
// Decade buckets are value/10, anchored at the tens digit, so 60 occupies
// its own bucket; this only loosens the per-decade cap at the top of the
// range.
//
// Assumes nums already passed CheckNumbers.
func CheckDistribution(nums []int) error {
	low := 0
	var decades [MaxNumber/10 + 1]int
	var terminals [10]int
	for _, n := range nums {
		if n <= lowCutoff {
			low++
		}
		decades[n/10]++
		terminals[n%10]++
	}
	if low < minLow || low > maxLow {
		return fmt.Errorf("a game must have between %d and %d low numbers (1-%d), got %d", minLow, maxLow, lowCutoff, low)
	}
	for d, c := range decades {
		if c > maxPerDecade {
			return fmt.Errorf("more than %d numbers in decade %d", maxPerDecade, d)
		}
	}
	for t, c := range terminals {
		if c > maxPerTerminal {
			return fmt.Errorf("more than %d numbers ending in %d", maxPerTerminal, t)
		}
	}
	return nil
}
