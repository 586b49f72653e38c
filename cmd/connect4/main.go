// connect4 plays Connect-4 on the terminal: human vs AI, human vs human (-hotseat) or AI vs AI (-watch).
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/connectGo/internal/players"
	_ "github.com/janpfeifer/connectGo/internal/players/default"
	"github.com/janpfeifer/connectGo/internal/profilers"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/janpfeifer/connectGo/internal/ui/cli"
	"github.com/janpfeifer/connectGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagHotseat  = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch    = flag.Bool("watch", false, "Watch mode: AI vs AI playing")
	flagFirst    = flag.String("first", "", "Who plays first: human or ai. Default is random.")
	flagAIConfig = flag.String("config", "mcts-timed",
		"AI configuration against which to play: a preset name (see -presets) or a configuration string like \"minimax,max_depth=4\"")
	flagAIConfig2 = flag.String("config2", "versus-minimax", "Second AI configuration, if playing AI vs AI with -watch")
	flagPresets   = flag.Bool("presets", false, "List the AI presets and exit.")
	flagStart     = flag.String("start", "", "Start from the given encoded board (see Board.Encode), instead of an empty board.")
	flagColor     = flag.Bool("color", true, "Use colors in the terminal.")
	flagClear     = flag.Bool("clear", false, "Clear the screen before printing the board.")
	flagDelay     = flag.Duration("delay", 500*time.Millisecond, "Delay between AI moves when watching AI vs AI.")
	flagQuiet     = flag.Bool("quiet", false, "Quiet mode for when watching AI play, only the moves and the last board position are printed.")

	// aiPlayers: if nil, it's a human playing.
	aiPlayers = [2]players.Player{nil, nil}

	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagPresets {
		printPresets()
		return
	}

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()
	must.M(profilers.Setup(globalCtx))
	defer profilers.OnQuit()

	createPlayers()
	board := NewBoard()
	if *flagStart != "" {
		board = must.M1(ParseBoard(*flagStart))
	}
	ui := cli.New(*flagColor, *flagClear)

	// Loop over match.
	for !board.IsFinished() {
		if globalCtx.Err() != nil {
			fmt.Println("Interrupted.")
			return
		}
		piece := board.NextPlayer()
		aiPlayer := aiPlayers[piece-PlayerOne]
		if aiPlayer == nil {
			ui.Print(board)
			col, err := ui.ReadColumn(board)
			if errors.Is(err, cli.ErrQuit) {
				fmt.Println("Bye!")
				return
			}
			if err != nil {
				klog.Exitf("Failed to run match: %+v", err)
			}
			board = board.Act(col, piece)
			continue
		}

		// AI plays.
		if !*flagQuiet {
			ui.Print(board)
		}
		s := spinning.New(globalCtx, fmt.Sprintf("\t%s (%s) thinking", ui.PlayerString(piece), aiPlayer))
		col := aiPlayer.Play(board)
		s.Done()
		if !board.IsValid(col) {
			exceptions.Panicf("AI %s played an invalid column %s on board:\n%s", aiPlayer, col, board)
		}
		fmt.Printf("\t%s (%s) plays %s\n", ui.PlayerString(piece), aiPlayer, col)
		board = board.Act(col, piece)
		if *flagWatch && *flagDelay > 0 {
			time.Sleep(*flagDelay)
		}
	}

	ui.Print(board)
	ui.PrintWinner(board)
}

// createPlayers in aiPlayers.
func createPlayers() {
	if *flagHotseat && *flagWatch {
		klog.Exitf("-hotseat and -watch cannot be used together")
	}
	if *flagHotseat {
		// Both players are human, nothing to do.
		return
	}
	if *flagWatch {
		aiPlayers[0] = must.M1(players.New(*flagAIConfig, PlayerOne))
		aiPlayers[1] = must.M1(players.New(*flagAIConfig2, PlayerTwo))
		return
	}

	var aiIdx int
	switch strings.ToLower(*flagFirst) {
	case "human":
		aiIdx = 1
	case "ai":
		aiIdx = 0
	case "":
		aiIdx = rand.IntN(2)
	default:
		klog.Exitf("invalid -first=%q, only valid values are \"human\" or \"ai\"", *flagFirst)
	}
	aiPlayers[aiIdx] = must.M1(players.New(*flagAIConfig, Players[aiIdx]))
	fmt.Printf("AI %s plays as %s\n", aiPlayers[aiIdx], Players[aiIdx])
}

func printPresets() {
	_, _ = fmt.Fprintln(os.Stdout, "AI presets (use with -config or -config2):")
	for _, preset := range players.Presets {
		_, _ = fmt.Fprintf(os.Stdout, "  %-16s %-26s %s\n", preset.Name, preset.Config, preset.Description)
	}
}
