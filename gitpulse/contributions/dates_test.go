package contributions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, 10, day.Day())

	for _, bad := range []string{"", "10/03/2024", "2024-3-10", "2024-03-10T00:00:00Z", "yesterday"} {
		_, err := ParseDay(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange("2024-03-10", "2024-03-12"))
	assert.NoError(t, ValidateRange("2024-03-10", "2024-03-10"), "equal dates denote a single-day range")
	assert.ErrorIs(t, ValidateRange("2024-03-12", "2024-03-10"), ErrInvalidRange)
	assert.ErrorIs(t, ValidateRange("bad", "2024-03-10"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateRange("2024-03-10", "bad"), ErrInvalidDate)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, []string{"2024-03-10"}, DaysBetween("2024-03-10", "2024-03-10"))

	assert.Equal(t, []string{
		"2024-02-27",
		"2024-02-28",
		"2024-02-29", // leap day
		"2024-03-01",
		"2024-03-02",
	}, DaysBetween("2024-02-27", "2024-03-02"))
}
