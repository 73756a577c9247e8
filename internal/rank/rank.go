// Package rank maps puzzle progress to named milestones.
//
// Two parallel tier tables exist: the standard table and an easier one used by
// the kids difficulty. Each tier covers the half-open fraction interval
// [Lower, Upper) of guessed points over possible points; the top tier also
// absorbs every fraction at or above its lower bound.
package rank

import (
	"fmt"
	"math"
)

// Rank is a named progress milestone, ordered from lowest to highest.
type Rank int

const (
	Beginner Rank = iota
	GoodStart
	MovingUp
	Good
	Solid
	Nice
	Great
	Amazing
	Genius
)

var names = [...]string{
	Beginner:  "Beginner",
	GoodStart: "Good Start",
	MovingUp:  "Moving Up",
	Good:      "Good",
	Solid:     "Solid",
	Nice:      "Nice",
	Great:     "Great",
	Amazing:   "Amazing",
	Genius:    "Genius",
}

func (r Rank) String() string {
	if r < Beginner || r > Genius {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return names[r]
}

// MarshalText renders the display name, so JSON carries "Good Start" rather than 1.
func (r Rank) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText accepts a display name as produced by MarshalText.
func (r *Rank) UnmarshalText(b []byte) error {
	for i, n := range names {
		if n == string(b) {
			*r = Rank(i)
			return nil
		}
	}
	return fmt.Errorf("rank: unknown name %q", b)
}

// Tier binds a Rank to its fraction interval.
type Tier struct {
	Rank  Rank
	Lower float64
	Upper float64
}

var standardTiers = []Tier{
	{Beginner, 0.00, 0.02},
	{GoodStart, 0.02, 0.05},
	{MovingUp, 0.05, 0.08},
	{Good, 0.08, 0.15},
	{Solid, 0.15, 0.25},
	{Nice, 0.25, 0.40},
	{Great, 0.40, 0.50},
	{Amazing, 0.50, 0.70},
	{Genius, 0.70, 1.00},
}

var kidsTiers = []Tier{
	{Beginner, 0.00, 0.02},
	{GoodStart, 0.02, 0.04},
	{MovingUp, 0.04, 0.06},
	{Good, 0.06, 0.10},
	{Solid, 0.10, 0.15},
	{Nice, 0.15, 0.25},
	{Great, 0.25, 0.35},
	{Amazing, 0.35, 0.50},
	{Genius, 0.50, 1.00},
}

// Table returns the tier table for the mode. Callers must not modify it.
func Table(easy bool) []Tier {
	if easy {
		return kidsTiers
	}
	return standardTiers
}

// For returns the rank earned by guessed out of possible points.
func For(guessed, possible int, easy bool) Rank {
	if possible <= 0 || guessed <= 0 {
		return Beginner
	}
	return forFraction(float64(guessed)/float64(possible), Table(easy))
}

func forFraction(frac float64, tiers []Tier) Rank {
	top := tiers[len(tiers)-1]
	if frac >= top.Lower {
		return top.Rank
	}
	for _, t := range tiers {
		if frac >= t.Lower && frac < t.Upper {
			return t.Rank
		}
	}
	panic(fmt.Sprintf("rank: no tier covers fraction %v", frac))
}

// Threshold is the absolute point total at which a rank begins.
type Threshold struct {
	Rank   Rank `json:"rank"`
	Points int  `json:"points"`
}

// Thresholds converts the tier table into point totals for possible points,
// for progress-bar tick marks.
func Thresholds(possible int, easy bool) []Threshold {
	tiers := Table(easy)
	out := make([]Threshold, len(tiers))
	for i, t := range tiers {
		out[i] = Threshold{Rank: t.Rank, Points: int(math.Floor(float64(possible) * t.Lower))}
	}
	return out
}

// Next returns the rank after r and the points still needed to reach it.
// At the top rank ok is false.
func Next(guessed, possible int, easy bool) (next Rank, need int, ok bool) {
	cur := For(guessed, possible, easy)
	if cur == Genius {
		return Genius, 0, false
	}
	for _, t := range Table(easy) {
		if t.Rank == cur+1 {
			need = int(math.Ceil(float64(possible)*t.Lower)) - guessed
			if need < 1 {
				need = 1
			}
			return t.Rank, need, true
		}
	}
	return cur, 0, false
}
