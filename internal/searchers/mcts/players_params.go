package mcts

import (
	"github.com/janpfeifer/connectGo/internal/parameters"
	"github.com/janpfeifer/connectGo/internal/searchers"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/pkg/errors"
)

// NewFromParams creates an MCTS searcher if the "mcts" parameter is set, otherwise returns nil.
//
// Parameters:
//
//   - mcts (bool): selects this searcher.
//   - max_time (time.Duration): time budget per move, e.g. "max_time=1s". Defaults to DefaultMaxTime
//     if max_traverses is not given.
//   - max_traverses (int): number of iterations per move. If given alone the search is count-bounded.
//     If both are given, the search stops at whichever limit is reached first.
func NewFromParams(player Piece, params parameters.Params) (searchers.Searcher, error) {
	isMCTS, err := parameters.PopParamOr(params, "mcts", false)
	if err != nil || !isMCTS {
		return nil, err
	}
	s := New().WithPlayer(player)
	_, hasTime := params["max_time"]
	_, hasTraverses := params["max_traverses"]
	maxTime, err := parameters.PopParamOr(params, "max_time", DefaultMaxTime)
	if err != nil {
		return nil, err
	}
	maxTraverses, err := parameters.PopParamOr(params, "max_traverses", 0)
	if err != nil {
		return nil, err
	}
	if maxTime < 0 || maxTraverses < 0 {
		return nil, errors.Errorf("mcts limits can't be negative, got max_time=%s, max_traverses=%d", maxTime, maxTraverses)
	}
	switch {
	case hasTraverses && !hasTime:
		s.WithMaxTraverses(maxTraverses)
	case hasTraverses && hasTime:
		s.maxTime, s.maxTraverses = maxTime, maxTraverses
	default:
		s.WithMaxTime(maxTime)
	}
	return s, nil
}
