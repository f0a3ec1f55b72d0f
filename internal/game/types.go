// internal/game/types.go
//
// Core type definitions for the Mega-Sena combination generator.
// Defines:
//   - Type: origin tag for a game (A: reference pass-through, B: pool
//     recombination, C: novel-number exploration).
//   - Game: one 6-number combination plus label/ID metadata.
//   - Run: the outcome of a single generation pass (all games + cost).

package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type tags the origin of a game in a run's output.
// Possible values:
//   - "A": reference game supplied by a bettor, passed through unchanged.
//   - "B": recombination of numbers already present in the reference set.
//   - "C": exploration mixing 1-2 known numbers with unseen ones.
type Type string

const (
	TypeA Type = "A"
	TypeB Type = "B"
	TypeC Type = "C"
)

// Game holds one 6-number combination.
type Game struct {
	ID      string `json:"id,omitempty"`    // compact hex identifier (B/C only)
	Type    Type   `json:"type"`            // A, B or C
	Label   string `json:"label,omitempty"` // bettor name from the reference line (A only)
	Numbers []int  `json:"numbers"`         // 6 distinct values in [1,60], sorted ascending
}

// Key returns the canonical identity of the combination: the sorted numbers
// rendered as a single string. Two games with the same numbers collide on
// Key regardless of type or label; uniqueness checks use this.
func (g *Game) Key() string {
	return formatNumbers(g.Numbers)
}

// Line renders the game in the downloadable-file format:
//
//	A 03 08 11 14 16 29 (Janine)
//	B 05 12 23 31 44 58 (9f2c4a1d0b7e6f45)
//
// Type-A games carry the bettor label; B/C games carry their generated ID.
// A Type-A game with no label gets no parenthesised suffix.
func (g *Game) Line() string {
	suffix := g.Label
	if g.Type != TypeA {
		suffix = g.ID
	}
	if suffix == "" {
		return string(g.Type) + " " + formatNumbers(g.Numbers)
	}
	return string(g.Type) + " " + formatNumbers(g.Numbers) + " (" + suffix + ")"
}

// formatNumbers renders numbers two-digit zero-padded, space-separated,
// matching the reference input format.
func formatNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, " ")
}

// Run is the outcome of a single generation pass. Runs are immutable once
// produced; a new submission always creates a new Run.
type Run struct {
	ID         string          `json:"id"`
	CreatedAt  time.Time       `json:"createdAt"`
	Multiplier int             `json:"multiplier"`
	Games      []Game          `json:"games"`
	Cost       decimal.Decimal `json:"cost"` // total bet cost in BRL
}

// File renders the whole run as the downloadable text file, one game per line.
func (r *Run) File() string {
	lines := make([]string, len(r.Games))
	for i := range r.Games {
		lines[i] = r.Games[i].Line()
	}
	return strings.Join(lines, "\n")
}

// NewID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func NewID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
