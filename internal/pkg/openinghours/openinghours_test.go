package openinghours

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("Standard Business Hours", func(t *testing.T) {
		tr, err := Parse("8:00 am - 5:00 pm")

		assert.NoError(t, err)
		assert.Equal(t, 8, tr.OpenHour)
		assert.Equal(t, 17, tr.CloseHour)
	})

	t.Run("PM Hours Map Into Afternoon", func(t *testing.T) {
		cases := map[string]TimeRange{
			"1:00 pm - 11:00 pm":  {OpenHour: 13, CloseHour: 23},
			"9:30 am - 6:15 pm":   {OpenHour: 9, CloseHour: 18},
			"10:00 am - 12:00 pm": {OpenHour: 10, CloseHour: 12},
		}

		for text, expected := range cases {
			tr, err := Parse(text)
			assert.NoError(t, err, text)
			assert.Equal(t, expected, tr, text)
		}
	})

	t.Run("Noon Stays Twelve", func(t *testing.T) {
		tr, err := Parse("8:00 am - 12:00 pm")

		assert.NoError(t, err)
		assert.Equal(t, 12, tr.CloseHour)
	})

	t.Run("Midnight Keeps Source Behavior", func(t *testing.T) {
		// "12:00 am" is kept as hour 12, matching what the mobile
		// clients have always done with this field.
		tr, err := Parse("12:00 am - 5:00 pm")

		assert.NoError(t, err)
		assert.Equal(t, 12, tr.OpenHour)
	})

	t.Run("Case And Spacing Are Tolerated", func(t *testing.T) {
		tr, err := Parse("8:00AM - 5:00PM")

		assert.NoError(t, err)
		assert.Equal(t, TimeRange{OpenHour: 8, CloseHour: 17}, tr)
	})

	t.Run("Minutes Are Discarded", func(t *testing.T) {
		tr, err := Parse("8:59 am - 5:01 pm")

		assert.NoError(t, err)
		assert.Equal(t, TimeRange{OpenHour: 8, CloseHour: 17}, tr)
	})

	t.Run("Malformed Inputs", func(t *testing.T) {
		malformed := []string{
			"garbage",
			"",
			"8:00 am",
			"8:00 am - 5:00 pm - 9:00 pm",
			"8:00 - 5:00",
			"25:00 am - 5:00 pm",
			"8:0 am - 5:00 pm",
			"eight am - five pm",
		}

		for _, text := range malformed {
			_, err := Parse(text)
			assert.ErrorIs(t, err, ErrMalformed, text)
		}
	})

	t.Run("Inverted Range Parses", func(t *testing.T) {
		// Overnight-looking ranges are a parse success; the evaluator
		// treats them as never open.
		tr, err := Parse("10:00 pm - 2:00 am")

		assert.NoError(t, err)
		assert.Equal(t, TimeRange{OpenHour: 22, CloseHour: 2}, tr)
	})
}

func TestTimeRangeIsOpenAt(t *testing.T) {
	t.Run("Open Within Range", func(t *testing.T) {
		tr := TimeRange{OpenHour: 8, CloseHour: 17}

		assert.True(t, tr.IsOpenAt(10))
		assert.True(t, tr.IsOpenAt(8))
		assert.True(t, tr.IsOpenAt(16))
	})

	t.Run("Closed Outside Range", func(t *testing.T) {
		tr := TimeRange{OpenHour: 8, CloseHour: 17}

		assert.False(t, tr.IsOpenAt(7))
		assert.False(t, tr.IsOpenAt(17))
		assert.False(t, tr.IsOpenAt(18))
		assert.False(t, tr.IsOpenAt(0))
		assert.False(t, tr.IsOpenAt(23))
	})

	t.Run("Inverted Range Never Open", func(t *testing.T) {
		tr := TimeRange{OpenHour: 22, CloseHour: 2}

		for hour := 0; hour < 24; hour++ {
			assert.False(t, tr.IsOpenAt(hour), "hour %d", hour)
		}
	})

	t.Run("Empty Range Never Open", func(t *testing.T) {
		tr := TimeRange{OpenHour: 9, CloseHour: 9}

		for hour := 0; hour < 24; hour++ {
			assert.False(t, tr.IsOpenAt(hour), "hour %d", hour)
		}
	})

	t.Run("Scenario Eight To Five", func(t *testing.T) {
		tr, err := Parse("8:00 am - 5:00 pm")
		assert.NoError(t, err)

		assert.True(t, tr.IsOpenAt(10))
		assert.False(t, tr.IsOpenAt(18))
		assert.False(t, tr.IsOpenAt(7))
	})
}
