package players

import "strings"

// Preset is a named AI configuration, as offered in the game menus.
type Preset struct {
	Name, Description, Config string
}

// Presets are the difficulty levels of each AI family, and the configurations used when AIs play
// each other. Preset names never collide with searcher keywords.
var Presets = []Preset{
	{"greedy-easy", "greedy search, level 1", "greedy,level=1"},
	{"greedy-medium", "greedy search, level 2", "greedy,level=2"},
	{"greedy-hard", "greedy search, level 3", "greedy,level=3"},
	{"minimax-easy", "minimax with alpha-beta pruning, depth 2", "minimax,max_depth=2"},
	{"minimax-medium", "minimax with alpha-beta pruning, depth 4", "minimax,max_depth=4"},
	{"minimax-hard", "minimax with alpha-beta pruning, depth 6", "minimax,max_depth=6"},
	{"mcts-easy", "Monte Carlo tree search, 30 traverses", "mcts,max_traverses=30"},
	{"mcts-medium", "Monte Carlo tree search, 100 traverses", "mcts,max_traverses=100"},
	{"mcts-hard", "Monte Carlo tree search, 500 traverses", "mcts,max_traverses=500"},
	{"mcts-timed", "Monte Carlo tree search, 1 second per move", "mcts,max_time=1s"},
	{"versus-mcts", "AI vs AI: Monte Carlo tree search, 1 second per move", "mcts,max_time=1s"},
	{"versus-minimax", "AI vs AI: minimax with alpha-beta pruning, depth 4", "minimax,max_depth=4"},
	{"versus-greedy", "AI vs AI: greedy search, level 4", "greedy,level=4"},
}

// FindPreset returns the preset with the given name, case-insensitive.
func FindPreset(name string) (Preset, bool) {
	for _, preset := range Presets {
		if strings.EqualFold(preset.Name, name) {
			return preset, true
		}
	}
	return Preset{}, false
}
