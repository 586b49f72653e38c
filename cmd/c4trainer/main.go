// c4trainer plays AI vs AI matches to generate move datasets, trains the id3 move predictor on them,
// and runs tournaments between AI configurations.
//
// Modes (flag -mode):
//
//   - generate: plays -num_matches between -config and -config2, and saves the moves played to -dataset.
//   - train: trains an id3 model on -dataset, and reports its accuracy on a held-out fraction of it.
//   - tournament: plays -num_matches between -config and -config2 and reports the results.
package main

import (
	"context"
	"flag"
	"time"

	_ "github.com/janpfeifer/connectGo/internal/players/default"
	"github.com/janpfeifer/connectGo/internal/profilers"
	"github.com/janpfeifer/connectGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

// Flags
var (
	flagMode     = flag.String("mode", "tournament", "One of \"generate\", \"train\" or \"tournament\".")
	flagAIConfig = flag.String("config", "mcts-medium",
		"First AI configuration: a preset name or a configuration string like \"minimax,max_depth=4\".")
	flagAIConfig2 = flag.String("config2", "versus-minimax", "Second AI configuration.")
	flagDataset   = flag.String("dataset", "moves.parquet",
		"Dataset file to write (generate) or read (train). Format is given by the extension: .csv or .parquet.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()
	must.M(profilers.Setup(globalCtx))
	defer profilers.OnQuit()

	switch *flagMode {
	case "generate":
		must.M(generate(globalCtx))
	case "train":
		must.M(train())
	case "tournament":
		must.M1(runMatches(globalCtx))
	default:
		klog.Exitf("invalid -mode=%q, valid values are \"generate\", \"train\" or \"tournament\"", *flagMode)
	}
}
