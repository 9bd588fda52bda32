package tictactoe

const Size = 3

// Cell is the state of a single square.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

// Player is derived from the marks on a board and never stored on it.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerX
	PlayerO
)

// Action names the cell to mark. It only makes sense relative to a board.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a 3x3 grid addressed by [row][col]. It is a value: assigning or
// passing a Board copies it, so transitions never alias the input.
type Board [Size][Size]Cell

// lines lists every row, column and diagonal in the order Winner checks them.
var lines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// InitialState returns the empty starting board.
func InitialState() Board {
	return Board{}
}

// Mark returns the cell a player writes on the board.
func (that Player) Mark() Cell {
	switch that {
	case PlayerX:
		return MarkX
	case PlayerO:
		return MarkO
	default:
		return Empty
	}
}

// Opponent returns the other player, or NoPlayer for NoPlayer.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return NoPlayer
	}
}

// Player returns the owner of a mark.
func (that Cell) Player() Player {
	switch that {
	case MarkX:
		return PlayerX
	case MarkO:
		return PlayerO
	default:
		return NoPlayer
	}
}

// InBounds reports whether the action addresses a cell of the grid.
func (that Action) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// At returns the cell under the action. The action must be in bounds.
func (that Board) At(action Action) Cell {
	return that[action.Row][action.Col]
}

// IsEmpty reports whether no cell has been marked yet.
func (that Board) IsEmpty() bool {
	return that == Board{}
}

func (that Board) counts() (int, int) {
	var numX, numO int
	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case MarkX:
				numX++
			case MarkO:
				numO++
			}
		}
	}

	return numX, numO
}

// CurrentPlayer returns the player to move. Terminal boards have no player
// to move and report NoPlayer, whatever the mark counts say.
func (that Board) CurrentPlayer() Player {
	if that.IsTerminal() {
		return NoPlayer
	}

	numX, numO := that.counts()
	if numX > numO {
		return PlayerO
	}

	return PlayerX
}

// LegalActions returns every empty cell in row-major order.
func (that Board) LegalActions() []Action {
	actions := make([]Action, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				actions = append(actions, Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Winner returns the player owning a complete line, or NoPlayer.
func (that Board) Winner() Player {
	for _, line := range lines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != Empty && a == b && b == c {
			return a.Player()
		}
	}

	return NoPlayer
}

// IsFull reports whether every cell is marked.
func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// IsTerminal reports whether the game has ended by a win or a full board.
func (that Board) IsTerminal() bool {
	return that.Winner() != NoPlayer || that.IsFull()
}

// Utility scores the board from X's point of view: 1 for an X win, -1 for
// an O win and 0 otherwise, including boards still in play.
func (that Board) Utility() int {
	switch that.Winner() {
	case PlayerX:
		return 1
	case PlayerO:
		return -1
	default:
		return 0
	}
}
