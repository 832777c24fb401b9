package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastytwist-api/models"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		current models.OrderStatus
		want    models.OrderStatus
		wantErr bool
	}{
		{"processing advances to shipped", models.StatusProcessing, models.StatusShipped, false},
		{"shipped advances to delivered", models.StatusShipped, models.StatusDelivered, false},
		{"cancelled stays cancelled", models.StatusCancelled, models.StatusCancelled, false},
		{"delivered is terminal", models.StatusDelivered, "", true},
		{"unknown status rejected", models.OrderStatus("pending"), "", true},
		{"empty status rejected", models.OrderStatus(""), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.current)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(models.StatusProcessing))
	assert.True(t, CanCancel(models.StatusShipped))
	assert.False(t, CanCancel(models.StatusDelivered))
	assert.False(t, CanCancel(models.StatusCancelled))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.StatusProcessing))
	assert.False(t, IsTerminal(models.StatusShipped))
	assert.True(t, IsTerminal(models.StatusDelivered))
	assert.True(t, IsTerminal(models.StatusCancelled))
}
