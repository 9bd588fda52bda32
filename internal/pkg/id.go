package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const gameIDLimit = 99999999

// GenerateGameID - generates a numeric identifier for a game session.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(gameIDLimit))
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return fmt.Sprintf("%08d", n.Int64()), nil
}
