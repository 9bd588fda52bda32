package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	// When: generating an id
	id, err := GenerateGameID()

	// Then: it is an eight digit string
	require.NoError(t, err)
	assert.Regexp(t, `^\d{8}$`, id)
}
