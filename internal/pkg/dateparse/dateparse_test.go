//go:build unit

package dateparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParser_Parse(t *testing.T) {
	now := time.Date(2030, 3, 10, 14, 30, 0, 0, time.UTC)
	p := New()

	cases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{name: "iso", text: "2030-04-01", want: "2030-04-01", ok: true},
		{name: "iso inside text", text: "the 2030-04-01 please", want: "2030-04-01", ok: true},
		{name: "month first slash", text: "04/05/2030", want: "2030-04-05", ok: true},
		{name: "day first when month impossible", text: "25/12/2030", want: "2030-12-25", ok: true},
		{name: "two digit year", text: "12-25-31", want: "2031-12-25", ok: true},
		{name: "invalid calendar date", text: "02/30/2030", ok: false},
		{name: "tomorrow", text: "tomorrow", want: "2030-03-11", ok: true},
		{name: "today", text: "Today", want: "2030-03-10", ok: true},
		{name: "yesterday", text: "yesterday", want: "2030-03-09", ok: true},
		{name: "next week", text: "next week", want: "2030-03-17", ok: true},
		{name: "next month", text: "next month", want: "2030-04-10", ok: true},
		{name: "ordinal later this month", text: "the 15th", want: "2030-03-15", ok: true},
		{name: "ordinal already passed", text: "the 5th", want: "2030-04-05", ok: true},
		{name: "ordinal today rolls over", text: "the 10th please", want: "2030-04-10", ok: true},
		{name: "ordinal with month", text: "5th of April", want: "2030-04-05", ok: true},
		{name: "ordinal with passed month", text: "3rd March", want: "2031-03-03", ok: true},
		{name: "ordinal impossible in month", text: "the 31st of February", ok: false},
		{name: "empty", text: "  ", ok: false},
		{name: "no date", text: "my wife", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := p.Parse(tc.text, now)

			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got.Format("2006-01-02"))
				assert.Equal(t, 0, got.Hour())
			}
		})
	}
}

func TestParser_Parse_Weekday(t *testing.T) {
	now := time.Date(2030, 3, 10, 9, 0, 0, 0, time.UTC) // Sunday
	p := New()

	got, ok := p.Parse("next friday", now)

	assert.True(t, ok)
	assert.Equal(t, time.Friday, got.Weekday())
	assert.True(t, got.After(now))
}

func TestParser_Parse_OrdinalSkipsShortMonths(t *testing.T) {
	now := time.Date(2030, 1, 31, 9, 0, 0, 0, time.UTC)
	p := New()

	got, ok := p.Parse("the 30th", now)

	assert.True(t, ok)
	assert.Equal(t, "2030-03-30", got.Format("2006-01-02"))
}

func TestParser_Parse_ClockTimeOnly(t *testing.T) {
	now := time.Date(2030, 3, 10, 9, 0, 0, 0, time.UTC)
	p := New()

	_, ok := p.Parse("a haircut at 3pm", now)

	assert.False(t, ok)
}
