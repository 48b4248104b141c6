package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FootSpaReservation/pkg/types"
)

func TestOccupancyGrid(t *testing.T) {
	labels := []types.TimeString{"10:00", "10:05"}
	grid := NewOccupancyGrid(labels, SeatCount)

	require.Len(t, grid.Rows, SeatCount)
	assert.Equal(t, 1, grid.Rows[0].Seat)
	assert.Equal(t, 12, grid.Rows[11].Seat)

	grid.Row(3).Cells[1] = "Kim"

	assert.Equal(t, "Kim", grid.Cell(3, "10:05"))
	assert.Equal(t, "", grid.Cell(3, "10:00"))
	assert.Equal(t, "", grid.Cell(3, "11:00"))
	assert.Equal(t, "", grid.Cell(13, "10:05"))
	assert.Nil(t, grid.Row(0))

	assert.InDelta(t, 100.0/24.0, grid.OccupancyRate(), 1e-9)
}

func TestOccupancyGrid_Empty(t *testing.T) {
	grid := NewOccupancyGrid(nil, 0)
	assert.Equal(t, 0.0, grid.OccupancyRate())
}
