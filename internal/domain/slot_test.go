package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_StandardGrid(t *testing.T) {
	slots := GenerateSlots(UnitStandard.SlotDurationMinutes())

	require.Len(t, slots, 16)
	assert.Equal(t, "09:00 - 09:30", slots[0].Label())
	// Последние 20 минут окна не вмещают полный 30-минутный слот
	assert.Equal(t, "16:30 - 17:00", slots[len(slots)-1].Label())
}

func TestGenerateSlots_QuickGrid(t *testing.T) {
	slots := GenerateSlots(UnitQuick.SlotDurationMinutes())

	require.Len(t, slots, 25)
	assert.Equal(t, "09:00 - 09:20", slots[0].Label())
	assert.Equal(t, "17:00 - 17:20", slots[len(slots)-1].Label())
}

func TestGenerateSlots_NoOverlapAndOrdered(t *testing.T) {
	for _, unit := range []InterviewUnit{UnitStandard, UnitQuick} {
		slots := GenerateSlots(unit.SlotDurationMinutes())

		for i, s := range slots {
			assert.Equal(t, unit.SlotDurationMinutes(), s.DurationMinutes())
			assert.LessOrEqual(t, s.End, EventEndMinutes)

			if i > 0 {
				// Слоты стыкуются без пересечений и зазоров
				assert.Equal(t, slots[i-1].End, s.Start)
			}
		}
	}
}

func TestGenerateSlots_DropsPartialFinalSlot(t *testing.T) {
	// Окно 500 минут не делится на 45: последний неполный слот отбрасывается
	slots := GenerateSlots(45)

	require.NotEmpty(t, slots)
	last := slots[len(slots)-1]
	assert.LessOrEqual(t, last.End, EventEndMinutes)
	assert.Greater(t, last.End+45, EventEndMinutes)
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	assert.Nil(t, GenerateSlots(0))
	assert.Nil(t, GenerateSlots(-30))
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, IsValidSlot(UnitStandard, "09:00 - 09:30"))
	assert.True(t, IsValidSlot(UnitQuick, "09:00 - 09:20"))
	assert.True(t, IsValidSlot(UnitStandard, "16:30 - 17:00"))
	// Недостижимо из 09:00 шагом в 30 минут
	assert.False(t, IsValidSlot(UnitStandard, "16:50 - 17:20"))

	// Точная строка: без пробелов вокруг дефиса слот не распознаётся
	assert.False(t, IsValidSlot(UnitStandard, "09:00-09:30"))
	// Слот другой сетки
	assert.False(t, IsValidSlot(UnitStandard, "09:00 - 09:20"))
	// За границей окна
	assert.False(t, IsValidSlot(UnitStandard, "17:20 - 17:50"))
	assert.False(t, IsValidSlot(UnitStandard, ""))
}

func TestSlotsForUnit_ReturnsCopy(t *testing.T) {
	first := SlotsForUnit(UnitStandard)
	first[0] = TimeSlot{Start: 0, End: 0}

	second := SlotsForUnit(UnitStandard)
	assert.Equal(t, "09:00 - 09:30", second[0].Label())
}

func TestSlotLabels_MatchesGrid(t *testing.T) {
	labels := SlotLabels(UnitQuick)

	require.Len(t, labels, 25)
	for _, label := range labels {
		assert.True(t, IsValidSlot(UnitQuick, label))
	}
}
