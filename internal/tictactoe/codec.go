package tictactoe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidBoard = errors.New("invalid board")

// String renders the player as its mark, or an empty string for NoPlayer.
func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// ParsePlayer accepts "X" or "O" in either case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return NoPlayer, fmt.Errorf("unknown player %q", s)
	}
}

func (that Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Player) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal player: %w", err)
	}

	if s == "" {
		*that = NoPlayer
		return nil
	}

	player, err := ParsePlayer(s)
	if err != nil {
		return err
	}

	*that = player

	return nil
}

func (that Cell) String() string {
	return that.Player().String()
}

func (that Cell) rune() rune {
	switch that {
	case MarkX:
		return 'X'
	case MarkO:
		return 'O'
	default:
		return '.'
	}
}

// String renders the board as nine row-major characters: X, O or '.'.
func (that Board) String() string {
	var sb strings.Builder
	for _, row := range that {
		for _, cell := range row {
			sb.WriteRune(cell.rune())
		}
	}

	return sb.String()
}

// ParseBoard reads nine row-major cells. X and O (any case) are marks;
// '.', '-' and '_' are empty cells. Whitespace and '/' may separate rows.
func ParseBoard(s string) (Board, error) {
	var (
		board Board
		n     int
	)

	for _, r := range s {
		var cell Cell

		switch r {
		case ' ', '\t', '\n', '\r', '/':
			continue
		case 'X', 'x':
			cell = MarkX
		case 'O', 'o':
			cell = MarkO
		case '.', '-', '_':
			cell = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidBoard, r)
		}

		if n >= Size*Size {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, Size*Size)
		}

		board[n/Size][n%Size] = cell
		n++
	}

	if n != Size*Size {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, n, Size*Size)
	}

	return board, nil
}

// MarshalJSON encodes the board as a 3x3 array of "X", "O" and "".
func (that Board) MarshalJSON() ([]byte, error) {
	var grid [Size][Size]string
	for row := range Size {
		for col := range Size {
			grid[row][col] = that[row][col].String()
		}
	}

	return json.Marshal(grid)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var grid [][]string
	if err := json.Unmarshal(data, &grid); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	if len(grid) != Size {
		return fmt.Errorf("%w: got %d rows, want %d", ErrInvalidBoard, len(grid), Size)
	}

	var board Board
	for row, cells := range grid {
		if len(cells) != Size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, row, len(cells), Size)
		}

		for col, value := range cells {
			if value == "" {
				continue
			}

			player, err := ParsePlayer(value)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
			}

			board[row][col] = player.Mark()
		}
	}

	*that = board

	return nil
}
