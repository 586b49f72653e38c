// Package searchers defines the interface of the move selection strategies, and the shared
// randomness used for tie-breaks and fallbacks.
//
// Implementations live in the sub-packages: greedy, minimax and mcts. The decision tree
// predictor is in ai/id3.
package searchers

import (
	. "github.com/janpfeifer/connectGo/internal/state"
)

// Searcher is the interface that any of the move selection algorithms must adhere to.
//
// Searchers are configured with the piece they play for, and never modify the board given:
// every hypothetical move is played on a copy. Implementations in this repository are safe for
// concurrent use on different boards.
type Searcher interface {
	// Search returns the column to play, or NoMove if the board has no legal columns.
	Search(board Board) Column

	// String returns a short description of the searcher and its configuration, used in logs.
	String() string
}
