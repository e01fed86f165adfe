package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_CommitScenario(t *testing.T) {
	cart := entities.NewCart()
	cart.AddItem(entities.ServiceWashing, "shirts")
	cart.AddItem(entities.ServiceWashing, "shirts")
	cart.AddItem(entities.ServiceWashing, "trousers")

	assert.Equal(t, 3, cart.TotalCount())

	line, err := cart.Commit()
	require.NoError(t, err)
	assert.NotEmpty(t, line.ID)
	assert.Equal(t, entities.ServiceWashing, line.ServiceType)
	assert.Equal(t, map[string]int{"shirts": 2, "trousers": 1}, line.Counts)

	assert.Equal(t, 0, cart.TotalCount())
	assert.Empty(t, cart.Selection())
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, 3, cart.LineTotal())
}

func TestCart_CommitEmptySelection(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(c *entities.Cart)
	}{
		{name: "nothing selected", setup: func(*entities.Cart) {}},
		{
			name: "added then removed",
			setup: func(c *entities.Cart) {
				c.AddItem(entities.ServiceWashing, "shirts")
				c.RemoveItem(entities.ServiceWashing, "shirts")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cart := entities.NewCart()
			tc.setup(cart)

			_, err := cart.Commit()
			assert.ErrorIs(t, err, entities.ErrEmptySelection)
			assert.Empty(t, cart.Lines())
		})
	}
}

func TestCart_RemoveItemNeverNegative(t *testing.T) {
	cart := entities.NewCart()
	cart.RemoveItem(entities.ServiceWashing, "shirts")
	assert.Equal(t, 0, cart.TotalCount())

	cart.AddItem(entities.ServiceWashing, "jeans")
	cart.RemoveItem(entities.ServiceWashing, "jeans")
	cart.RemoveItem(entities.ServiceWashing, "jeans")
	assert.Equal(t, 0, cart.TotalCount())

	cart.AddItem(entities.ServiceWashing, "jeans")
	cart.RemoveItem(entities.ServiceIronAndWashing, "jeans")
	assert.Equal(t, 1, cart.TotalCount())
}

func TestCart_SwitchingServiceDropsSelection(t *testing.T) {
	cart := entities.NewCart()
	cart.AddItem(entities.ServiceWashing, "shirts")
	cart.AddItem(entities.ServiceIronAndWashing, "sarees")

	assert.Equal(t, entities.ServiceIronAndWashing, cart.ActiveService())
	assert.Equal(t, map[string]int{"sarees": 1}, cart.Selection())
}

func TestCart_RemoveLine(t *testing.T) {
	cart := entities.NewCart()
	cart.AddItem(entities.ServiceWashing, "shirts")
	first, err := cart.Commit()
	require.NoError(t, err)

	cart.AddItem(entities.ServiceIronAndWashing, "bedsheets")
	cart.AddItem(entities.ServiceIronAndWashing, "bedsheets")
	second, err := cart.Commit()
	require.NoError(t, err)

	assert.True(t, cart.RemoveLine(first.ID))
	assert.False(t, cart.RemoveLine(first.ID))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, second, lines[0])

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCart_LinesAreSnapshots(t *testing.T) {
	cart := entities.NewCart()
	cart.AddItem(entities.ServiceWashing, "tops")
	line, err := cart.Commit()
	require.NoError(t, err)

	line.Counts["tops"] = 100
	cart.Lines()[0].Counts["tops"] = 50

	assert.Equal(t, 1, cart.Lines()[0].Counts["tops"])
}
