package tictactoe

// Analysis gathers every query about a board in one value.
type Analysis struct {
	Player        Player   `json:"player"`
	Winner        Player   `json:"winner"`
	Terminal      bool     `json:"terminal"`
	Utility       int      `json:"utility"`
	Value         int      `json:"value"`
	LegalActions  []Action `json:"legal_actions"`
	OptimalAction *Action  `json:"optimal_action,omitempty"`
}

// Analyze runs every board query and, for boards still in play, the search.
func Analyze(board Board) Analysis {
	analysis := Analysis{
		Player:       board.CurrentPlayer(),
		Winner:       board.Winner(),
		Terminal:     board.IsTerminal(),
		Utility:      board.Utility(),
		Value:        Value(board),
		LegalActions: board.LegalActions(),
	}

	if !analysis.Terminal {
		if action, err := OptimalAction(board); err == nil {
			analysis.OptimalAction = &action
		}
	}

	return analysis
}
