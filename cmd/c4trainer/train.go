package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/janpfeifer/connectGo/internal/dataset"
	"github.com/janpfeifer/connectGo/internal/searchers"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagTestFraction = flag.Float64("test_fraction", 0.1, "Fraction of the dataset held out to measure the accuracy of the model.")
	flagSeed         = flag.Uint64("seed", 0, "Seed used to split the dataset. If 0, a random split is used.")
	flagPrintTree    = flag.Bool("print_tree", false, "Print the trained decision tree.")
)

// train an id3 model on -dataset and report its accuracy.
func train() error {
	records, err := dataset.Load(*flagDataset)
	if err != nil {
		return err
	}
	if *flagTestFraction < 0 || *flagTestFraction >= 1 {
		return errors.Errorf("-test_fraction=%g must be in the range [0, 1)", *flagTestFraction)
	}
	rng := searchers.NewRand()
	if *flagSeed != 0 {
		rng = searchers.NewSeededRand(*flagSeed)
	}
	trainRecords, testRecords := dataset.Split(records, *flagTestFraction, rng)
	fmt.Printf("Dataset %q: %d records, %d for training and %d for testing\n",
		*flagDataset, len(records), len(trainRecords), len(testRecords))

	start := time.Now()
	model, err := dataset.Train(trainRecords)
	if err != nil {
		return err
	}
	fmt.Printf("\t- Trained in %s on %d attributes: depth %d, %d leaves\n",
		time.Since(start), len(model.Attributes()), model.Depth(), model.NumLeaves())
	if *flagPrintTree {
		fmt.Println(model)
	}

	evaluation, err := dataset.Evaluate(model, trainRecords)
	if err != nil {
		return err
	}
	fmt.Printf("\t- Train: %s\n", evaluation)
	if len(testRecords) > 0 {
		evaluation, err = dataset.Evaluate(model, testRecords)
		if err != nil {
			return err
		}
		fmt.Printf("\t- Test: %s\n", evaluation)
	}
	klog.V(1).Infof("Model trained with %d rows, on target %q", model.NumRows(), model.Target())
	return nil
}
