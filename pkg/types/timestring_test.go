package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString(" 09:05 ")
	require.NoError(t, err)
	assert.Equal(t, "09:05", ts.String())

	for _, invalid := range []string{"", "9:5", "24:00", "12:60", "12-30", "ab:cd"} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", invalid)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("09:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 540, minutes)

	minutes, err = TimeString("17:20").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1040, minutes)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("09:00"), NewTimeStringFromMinutes(540))
	assert.Equal(t, TimeString("17:20"), NewTimeStringFromMinutes(1040))
	assert.Equal(t, TimeString("00:05"), NewTimeStringFromMinutes(5))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	_, err = TimeString("23:50").AddMinutes(20)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("09:30").IsAfter("09:00"))
}

func TestNewTimeString_FromTime(t *testing.T) {
	moment := time.Date(2025, 11, 26, 9, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}
