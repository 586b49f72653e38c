package minimax

import (
	"github.com/janpfeifer/connectGo/internal/parameters"
	"github.com/janpfeifer/connectGo/internal/searchers"
	. "github.com/janpfeifer/connectGo/internal/state"
)

// NewFromParams creates a minimax searcher if the "minimax" parameter is set, otherwise returns nil.
//
// Parameters:
//
//   - minimax (bool): selects this searcher.
//   - max_depth (int): max depth in plies, defaults to DefaultMaxDepth.
func NewFromParams(player Piece, params parameters.Params) (searchers.Searcher, error) {
	isMinimax, err := parameters.PopParamOr(params, "minimax", false)
	if err != nil || !isMinimax {
		return nil, err
	}
	maxDepth, err := parameters.PopParamOr(params, "max_depth", DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	return New().WithPlayer(player).WithMaxDepth(maxDepth), nil
}
