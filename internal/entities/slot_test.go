package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_FullSlot(t *testing.T) {
	slot := entities.Slot{Label: "6:30 PM", TotalCapacity: 20, BookedCount: 20}

	assert.False(t, slot.IsAvailable())
	assert.Equal(t, 0, slot.Remaining())

	err := slot.Reserve()
	assert.ErrorIs(t, err, entities.ErrSlotFull)
	assert.Equal(t, 20, slot.BookedCount)
}

func TestSlot_ReserveNeverExceedsCapacity(t *testing.T) {
	for capacity := 1; capacity <= 5; capacity++ {
		for booked := 0; booked <= capacity; booked++ {
			slot := entities.Slot{Label: "slot", TotalCapacity: capacity, BookedCount: booked}
			for range capacity + 3 {
				_ = slot.Reserve()
				require.LessOrEqual(t, slot.BookedCount, slot.TotalCapacity)
				require.Equal(t, slot.Remaining() == 0, !slot.IsAvailable())
			}
			assert.Equal(t, capacity, slot.BookedCount)
		}
	}
}

func TestSlot_RemainingNeverNegative(t *testing.T) {
	slot := entities.Slot{Label: "broken", TotalCapacity: 5, BookedCount: 7}
	assert.Equal(t, 0, slot.Remaining())
	assert.False(t, slot.IsAvailable())
}

func TestSlotTracker(t *testing.T) {
	tracker := entities.NewSlotTracker([]entities.Slot{
		{Label: "11:00 AM", TotalCapacity: 20, BookedCount: 15},
		{Label: "3:00 PM", TotalCapacity: 20, BookedCount: 8},
		{Label: "6:30 PM", TotalCapacity: 20, BookedCount: 20},
		{Label: "3:00 PM", TotalCapacity: 99, BookedCount: 0},
	})

	t.Run("keeps load order and drops duplicate labels", func(t *testing.T) {
		want := []entities.Slot{
			{Label: "11:00 AM", TotalCapacity: 20, BookedCount: 15},
			{Label: "3:00 PM", TotalCapacity: 20, BookedCount: 8},
			{Label: "6:30 PM", TotalCapacity: 20, BookedCount: 20},
		}
		if diff := cmp.Diff(want, tracker.Slots()); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("availability", func(t *testing.T) {
		assert.True(t, tracker.IsAvailable("11:00 AM"))
		assert.False(t, tracker.IsAvailable("6:30 PM"))
		assert.False(t, tracker.IsAvailable("9:00 PM"))
		assert.Equal(t, 5, tracker.Remaining("11:00 AM"))
		assert.Equal(t, 0, tracker.Remaining("9:00 PM"))
	})

	t.Run("reserve", func(t *testing.T) {
		require.NoError(t, tracker.Reserve("3:00 PM"))
		slot, err := tracker.Get("3:00 PM")
		require.NoError(t, err)
		assert.Equal(t, 9, slot.BookedCount)

		assert.ErrorIs(t, tracker.Reserve("6:30 PM"), entities.ErrSlotFull)
		assert.ErrorIs(t, tracker.Reserve("9:00 PM"), entities.ErrSlotNotFound)
	})
}
