// Package puzzles implements the puzzle commands: featured picks, catalog
// listing, and answering for reward points.
package puzzles

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/errs"
	"github.com/julianstephens/habitkit/internal/puzzles"
)

type PuzzleCmd struct {
	Today     TodayCmd     `cmd:"" help:"Show the puzzle of the day."`
	Challenge ChallengeCmd `cmd:"" help:"Show today's bonus challenge."`
	List      ListCmd      `cmd:"" help:"List the puzzle catalog."`
	Answer    AnswerCmd    `cmd:"" help:"Answer a puzzle by ID."`
	Stats     StatsCmd     `cmd:"" help:"Show catalog statistics."`
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	printPuzzle(puzzles.OfTheDay(time.Now()))
	return nil
}

type ChallengeCmd struct{}

func (c *ChallengeCmd) Run(ctx *cli.Context) error {
	printPuzzle(puzzles.DailyChallenge(time.Now()))
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var solved map[int]bool
	if user, err := ctx.Store.CurrentUser(); err == nil && user != nil {
		solved = make(map[int]bool)
		for _, id := range ctx.Store.SolvedPuzzles(user.ID) {
			solved[id] = true
		}
	}

	for _, p := range puzzles.All() {
		marker := " "
		if solved[p.ID] {
			marker = "x"
		}
		fmt.Printf("[%s] %2d. %-20s %-7s %-6s %d XP\n",
			marker, p.ID, p.Title, p.Type, p.Difficulty, p.Reward)
	}
	return nil
}

type AnswerCmd struct {
	ID     int `arg:"" help:"Puzzle ID."`
	Option int `arg:"" help:"Selected option number (1-based)."`
}

func (c *AnswerCmd) Run(ctx *cli.Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	for _, id := range ctx.Store.SolvedPuzzles(user.ID) {
		if id == c.ID {
			fmt.Println("You already solved this puzzle.")
			return nil
		}
	}

	result, err := puzzles.Verify(c.ID, c.Option-1)
	if errors.Is(err, errs.ErrNotFound) {
		return fmt.Errorf("puzzle %d not found", c.ID)
	}
	if err != nil {
		return err
	}

	if !result.Correct {
		fmt.Printf("Wrong answer.\n\n%s\n", result.Explanation)
		return nil
	}

	if err := ctx.Store.MarkPuzzleSolved(user.ID, c.ID); err != nil {
		return err
	}
	updated, err := ctx.Store.AddPoints(user.ID, result.Reward)
	if err != nil {
		return err
	}

	fmt.Printf("Correct! +%d XP (now %d points, level %d)\n\n%s\n",
		result.Reward, updated.Points, updated.Level(), result.Explanation)
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	cs := puzzles.Stats()
	fmt.Printf("Catalog: %d puzzles, %d XP total\n\n", cs.Total, cs.TotalReward)
	fmt.Println("By type:")
	for t, n := range cs.ByType {
		fmt.Printf("  %-8s %d\n", t, n)
	}
	fmt.Println("By difficulty:")
	for d, n := range cs.ByDifficulty {
		fmt.Printf("  %-8s %d\n", d, n)
	}
	return nil
}

func printPuzzle(p puzzles.Puzzle) {
	fmt.Printf("#%d %s (%s, %s) - %d XP\n\n", p.ID, p.Title, p.Type, p.Difficulty, p.Reward)
	fmt.Println(p.Description)
	fmt.Printf("\n%s\n\n", p.Question)
	for i, option := range p.Options {
		fmt.Printf("  %d) %s\n", i+1, option)
	}
	fmt.Printf("\nAnswer with: habitkit puzzle answer %d <option>\n", p.ID)
}
