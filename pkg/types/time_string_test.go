package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00:00")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("13:45:00")
	m, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, m)

	// Секунды отбрасываются
	ts = TimeString("13:45:59")
	m, err = ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, m)

	_, err = TimeString("garbage").Minutes()
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	a := TimeString("08:00:00")
	b := TimeString("09:00:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.True(t, a.Equal(TimeString("08:00:00")))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:30:00")

	res, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15:00"), res)

	res, err = ts.AddMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, ts, res)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, TimeString("14:00:00"), ts)

	require.NoError(t, ts.Scan([]byte("15:00:00")))
	assert.Equal(t, TimeString("15:00:00"), ts)

	assert.Error(t, ts.Scan(42))
}
