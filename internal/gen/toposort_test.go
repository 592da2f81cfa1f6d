package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSort_Order(t *testing.T) {
	order, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return nil
		case 2:
			return []int{1}
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, order)
}

func TestTopoSort_KeepsIndexOrderWhenFree(t *testing.T) {
	order, err := topoSort(4, func(int) []int { return nil })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestTopoSort_Cycle(t *testing.T) {
	_, err := topoSort(2, func(i int) []int {
		if i == 0 {
			return []int{1}
		}

		return []int{0}
	})
	require.ErrorIs(t, err, ErrCycle)
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, err := topoSort(1, func(int) []int { return []int{3} })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestTopoSort_Empty(t *testing.T) {
	order, err := topoSort(0, nil)
	require.NoError(t, err)
	assert.Empty(t, order)
}
