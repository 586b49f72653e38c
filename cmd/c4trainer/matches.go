package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"sync"

	"github.com/janpfeifer/connectGo/internal/dataset"
	"github.com/janpfeifer/connectGo/internal/matches"
	"github.com/janpfeifer/connectGo/internal/ui/cli"
	"github.com/pkg/errors"
)

var (
	flagNumMatches  = flag.Int("num_matches", 100, "Number of matches to play.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagSwap       = flag.Bool("swap", true, "Alternate which configuration plays first.")
	flagWinnerOnly = flag.Bool("winner_only", true, "When generating a dataset, only keep the moves of the winner "+
		"of each match. Moves of drawn matches are always kept.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print the boards of each finished match. "+
		"Very verbose, and you probably want to set -parallelism=1.")
)

var (
	stepUI   = cli.New(true, false)
	muStepUI sync.Mutex
)

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}

// runMatches between -config and -config2, printing the progress.
func runMatches(ctx context.Context) (*matches.Results, error) {
	parallelism := getParallelism()
	printUpdate := func(results *matches.Results) {
		fmt.Printf("\r\tRunning matches (parallelism=%d): %5d of %d finished (%d/%d/%d A-Wins/B-Wins/Draws) in %s\x1b[0K",
			parallelism, len(results.Matches), *flagNumMatches,
			results.Wins[0], results.Wins[1], results.Draws, results.Elapsed)
	}
	printUpdate(&matches.Results{})
	results, err := matches.RunMany(ctx, matches.Config{
		NumMatches:     *flagNumMatches,
		Parallelism:    parallelism,
		PlayersConfigs: [2]string{*flagAIConfig, *flagAIConfig2},
		Swap:           *flagSwap,
		OnMatch: func(m *matches.Match, results *matches.Results) {
			printUpdate(results)
			if *flagPrintSteps {
				printMatch(m)
			}
		},
	})
	fmt.Println()
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return results, nil
	}
	if err != nil {
		return nil, err
	}
	fmt.Printf("\t- A=%q, B=%q\n", *flagAIConfig, *flagAIConfig2)
	fmt.Printf("\t- %s\n", results)
	return results, nil
}

func printMatch(m *matches.Match) {
	muStepUI.Lock()
	defer muStepUI.Unlock()
	fmt.Printf("\n\nMatch #%d: %s vs %s\n", m.Number, m.Players[0], m.Players[1])
	for ii, col := range m.Moves {
		fmt.Printf("\tmove #%d: %s plays %s\n", ii+1, m.Boards[ii].NextPlayer(), col)
	}
	stepUI.PrintBoard(m.FinalBoard())
	stepUI.PrintWinner(m.FinalBoard())
	fmt.Println("------------------")
}

// generate plays the matches and saves their moves to -dataset.
func generate(ctx context.Context) error {
	results, err := runMatches(ctx)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return nil
	}
	records := results.Records(*flagWinnerOnly)
	if err := dataset.Save(*flagDataset, records); err != nil {
		return errors.WithMessage(err, "saving generated dataset")
	}
	fmt.Printf("\t- %d records saved to %q\n", len(records), *flagDataset)
	return nil
}
