// Package puzzles serves the bundled puzzle catalog: quiz-style challenges
// with fixed correct answers and point rewards. The catalog is static
// reference data; which puzzles a user has solved lives in the store.
package puzzles

import (
	"math"
	"math/rand"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/errs"
)

// Puzzle is one bundled challenge.
type Puzzle struct {
	ID          int                  `json:"id"`
	Type        constants.PuzzleType `json:"type"`
	Title       string               `json:"title"`
	Difficulty  constants.Difficulty `json:"difficulty"`
	Description string               `json:"description"`
	Question    string               `json:"question"`
	Options     []string             `json:"options"`
	Answer      int                  `json:"answer"`
	Explanation string               `json:"explanation"`
	Reward      int                  `json:"reward"`
}

// Result is the outcome of answering a puzzle. Reward is the full point
// value on a correct answer and 30% (floored) otherwise; the caller only
// pays out on Correct.
type Result struct {
	Correct     bool
	Explanation string
	Reward      int
}

// All returns the full catalog.
func All() []Puzzle {
	return catalog
}

// ByID looks up a puzzle.
func ByID(id int) (Puzzle, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Puzzle{}, errs.ErrNotFound
}

// ByType filters the catalog by puzzle type.
func ByType(t constants.PuzzleType) []Puzzle {
	var out []Puzzle
	for _, p := range catalog {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// ByDifficulty filters the catalog by difficulty.
func ByDifficulty(d constants.Difficulty) []Puzzle {
	var out []Puzzle
	for _, p := range catalog {
		if p.Difficulty == d {
			out = append(out, p)
		}
	}
	return out
}

// OfTheDay returns the featured puzzle for the given date. The index is the
// day of year modulo the catalog length, so the pick is stable within a
// calendar day and a pure function of the date.
func OfTheDay(t time.Time) Puzzle {
	return catalog[t.YearDay()%len(catalog)]
}

// DailyChallenge returns the bonus challenge for the given date, rotating on
// a different cycle than the puzzle of the day.
func DailyChallenge(t time.Time) Puzzle {
	return catalog[(t.YearDay()*7)%len(catalog)]
}

// Random returns an arbitrary puzzle from the catalog.
func Random() Puzzle {
	return catalog[rand.Intn(len(catalog))]
}

// Verify checks a selected option against the stored answer. An unknown
// puzzle ID yields a not-found result with Correct forced false.
func Verify(id, selected int) (Result, error) {
	p, err := ByID(id)
	if err != nil {
		return Result{Correct: false, Explanation: "Puzzle not found"}, err
	}
	if selected == p.Answer {
		return Result{Correct: true, Explanation: p.Explanation, Reward: p.Reward}, nil
	}
	return Result{
		Correct:     false,
		Explanation: p.Explanation,
		Reward:      int(math.Floor(float64(p.Reward) * constants.ConsolationRatio)),
	}, nil
}

// CatalogStats summarizes the catalog by type and difficulty.
type CatalogStats struct {
	Total        int
	ByType       map[constants.PuzzleType]int
	ByDifficulty map[constants.Difficulty]int
	TotalReward  int
}

// Stats returns catalog-wide counts and the summed reward pool.
func Stats() CatalogStats {
	cs := CatalogStats{
		ByType:       make(map[constants.PuzzleType]int),
		ByDifficulty: make(map[constants.Difficulty]int),
	}
	for _, p := range catalog {
		cs.Total++
		cs.ByType[p.Type]++
		cs.ByDifficulty[p.Difficulty]++
		cs.TotalReward += p.Reward
	}
	return cs
}
