package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "04-01-2024", DisplayDate("2024-01-04"))
	assert.Equal(t, "31-12-2023", DisplayDate("2023-12-31"))

	// Unparseable input passes through unchanged
	assert.Equal(t, "", DisplayDate(""))
	assert.Equal(t, "tomorrow", DisplayDate("tomorrow"))
	assert.Equal(t, "04/01/2024", DisplayDate("04/01/2024"))
}

func TestToIST(t *testing.T) {
	utc := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ist := ToIST(utc)
	assert.Equal(t, "2024-01-01 05:30:00", ist.Format(DateTimeLayout))
}

func TestToday(t *testing.T) {
	today := Today()
	_, err := time.Parse(DateLayout, today)
	assert.NoError(t, err)
}
