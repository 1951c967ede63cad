package ocean

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 320.0, cfg.CenterX())
	assert.Equal(t, 320.0, cfg.CenterY())
	assert.False(t, cfg.ClampAmbientVolume)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileSize = math.Inf(1)
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidTileSize)
	assert.Contains(t, err.Error(), "+Inf")
}
