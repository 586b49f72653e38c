package greedy

import (
	"github.com/janpfeifer/connectGo/internal/parameters"
	"github.com/janpfeifer/connectGo/internal/searchers"
	. "github.com/janpfeifer/connectGo/internal/state"
)

// NewFromParams creates a greedy searcher if the "greedy" parameter is set, otherwise returns nil.
//
// Parameters:
//
//   - greedy (bool): selects this searcher.
//   - level (int): selects the leveled variant with the given level.
func NewFromParams(player Piece, params parameters.Params) (searchers.Searcher, error) {
	isGreedy, err := parameters.PopParamOr(params, "greedy", false)
	if err != nil || !isGreedy {
		return nil, err
	}
	s := New().WithPlayer(player)
	if _, found := params["level"]; found {
		level, err := parameters.PopParamOr(params, "level", 0)
		if err != nil {
			return nil, err
		}
		s.WithLevel(level)
	}
	return s, nil
}
