// Package players provides a factory of AI players from configuration strings.
// It also allows searcher providers to register themselves, see package players/default.
package players

import (
	"strings"

	"github.com/janpfeifer/connectGo/internal/generics"
	"github.com/janpfeifer/connectGo/internal/parameters"
	"github.com/janpfeifer/connectGo/internal/searchers"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the column chosen for the board, or NoMove if the board is full.
	Play(board Board) Column

	// Piece the player plays with.
	Piece() Piece

	// String describes the player for logging and the UI.
	String() string
}

// SearcherBuilder creates a searcher playing with the given piece if its keyword is in params,
// consuming the parameters it uses. It returns nil (and no error) if params selects another searcher.
type SearcherBuilder func(player Piece, params parameters.Params) (searchers.Searcher, error)

// RegisteredSearchers is the list of searcher builders tried by New, in order of registration.
var RegisteredSearchers []SearcherBuilder

// RegisterSearcher makes a searcher available to New. It is usually called from init functions.
func RegisterSearcher(builder SearcherBuilder) {
	RegisteredSearchers = append(RegisteredSearchers, builder)
}

// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
// UI built.
var DefaultPlayerConfig = "mcts,max_time=1s"

// SearcherPlayer is an AI player backed by a searchers.Searcher. It implements Player.
type SearcherPlayer struct {
	Searcher searchers.Searcher
	piece    Piece
}

// Assert that SearcherPlayer is a Player.
var _ Player = (*SearcherPlayer)(nil)

// New creates a new AI player for piece given the configuration string.
//
// Args:
//
//   - config: a comma-separated list of parameters with optional values associated. Exactly one searcher
//     keyword (e.g. "greedy", "minimax" or "mcts") must be given, followed by its options.
//     E.g.: "minimax,max_depth=4". It can also be the name of one of the Presets, e.g. "minimax-hard".
//     If empty, the default is given by DefaultPlayerConfig.
//
// More details on the config are dependent on the searcher used. Parameters not used by the selected
// searcher are reported as an error.
func New(config string, piece Piece) (*SearcherPlayer, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	if preset, found := FindPreset(config); found {
		config = preset.Config
	}
	if !piece.IsPlayer() {
		return nil, errors.Errorf("invalid piece %s for an AI player", piece)
	}
	if len(RegisteredSearchers) == 0 {
		return nil, errors.New("no registered searchers. Perhaps you need to import _ \"github.com/janpfeifer/connectGo/internal/players/default\" to your binary ?")
	}
	params := parameters.NewFromConfigString(config)

	player := &SearcherPlayer{piece: piece}
	for _, builder := range RegisteredSearchers {
		s, err := builder(piece, params)
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to create AI player from %q", config)
		}
		if s == nil {
			// Not this searcher.
			continue
		}
		if player.Searcher != nil {
			return nil, errors.Errorf("multiple searchers defined in parameters %q", config)
		}
		player.Searcher = s
	}
	if player.Searcher == nil {
		return nil, errors.Errorf("no searchers defined in parameters %q", config)
	}

	// Check that all parameters were processed.
	if len(params) > 0 {
		return nil, errors.Errorf("unknown AI parameters \"%s\" passed in %q",
			strings.Join(generics.SortedKeysSlice(params), "\", \""), config)
	}
	return player, nil
}

// Play implements the Player interface: it chooses a column given a Board.
func (p *SearcherPlayer) Play(board Board) Column {
	col := p.Searcher.Search(board)
	if klog.V(1).Enabled() {
		klog.Infof("Move #%d: AI %s playing %s", board.CountPieces()+1, p.Searcher, col)
	}
	return col
}

// Piece implements Player.
func (p *SearcherPlayer) Piece() Piece {
	return p.piece
}

// String implements Player.
func (p *SearcherPlayer) String() string {
	return p.Searcher.String()
}
