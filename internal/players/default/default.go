// Package _default registers the default searchers that can be included in any
// front-end for connectGo.
//
// It includes the greedy, minimax, MCTS, random and id3 (trained decision tree) searchers.
package _default

import (
	"sync"

	"github.com/janpfeifer/connectGo/internal/ai/id3"
	"github.com/janpfeifer/connectGo/internal/dataset"
	"github.com/janpfeifer/connectGo/internal/parameters"
	"github.com/janpfeifer/connectGo/internal/players"
	"github.com/janpfeifer/connectGo/internal/searchers"
	"github.com/janpfeifer/connectGo/internal/searchers/greedy"
	"github.com/janpfeifer/connectGo/internal/searchers/mcts"
	"github.com/janpfeifer/connectGo/internal/searchers/minimax"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func init() {
	players.RegisterSearcher(greedy.NewFromParams)
	players.RegisterSearcher(minimax.NewFromParams)
	players.RegisterSearcher(mcts.NewFromParams)
	players.RegisterSearcher(NewRandomFromParams)
	players.RegisterSearcher(NewID3FromParams)
}

// NewRandomFromParams creates a searchers.Random if the "random" parameter is set, otherwise returns nil.
//
// Parameters:
//
//   - random (bool): selects this searcher.
//   - seed (int): optional seed, for reproducible matches.
func NewRandomFromParams(_ Piece, params parameters.Params) (searchers.Searcher, error) {
	isRandom, err := parameters.PopParamOr(params, "random", false)
	if err != nil || !isRandom {
		return nil, err
	}
	_, hasSeed := params["seed"]
	seed, err := parameters.PopParamOr(params, "seed", 0)
	if err != nil {
		return nil, err
	}
	if hasSeed {
		return searchers.NewRandom(searchers.NewSeededRand(uint64(seed))), nil
	}
	return searchers.NewRandom(nil), nil
}

var (
	muModels sync.Mutex
	models   = make(map[string]*id3.TrainedModel)
)

// NewID3FromParams creates an id3.Predictor if the "id3" parameter is set, otherwise returns nil.
//
// Parameters:
//
//   - id3 (bool): selects this searcher.
//   - dataset (string): path to the dataset (.csv or .parquet) to train the decision tree on. Required.
//
// The tree trained for each dataset path is kept and shared by all players created afterwards.
func NewID3FromParams(_ Piece, params parameters.Params) (searchers.Searcher, error) {
	isID3, err := parameters.PopParamOr(params, "id3", false)
	if err != nil || !isID3 {
		return nil, err
	}
	path, err := parameters.PopParamOr(params, "dataset", "")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New("id3 requires a dataset, e.g. \"id3,dataset=moves.csv\"")
	}
	model, err := trainedModel(path)
	if err != nil {
		return nil, err
	}
	return id3.NewPredictor(model), nil
}

func trainedModel(path string) (*id3.TrainedModel, error) {
	muModels.Lock()
	defer muModels.Unlock()
	if model, found := models[path]; found {
		return model, nil
	}
	records, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	model, err := dataset.Train(records)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to train id3 on %q", path)
	}
	klog.Infof("Trained id3 on %q: %d rows, depth=%d, %d leaves", path, model.NumRows(), model.Depth(), model.NumLeaves())
	models[path] = model
	return model, nil
}
