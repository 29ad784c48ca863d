package library_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-loans-go/library"
)

func Test_CalculateFine(t *testing.T) {
	dueAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		returnedAt := dueAt.Add(d)
		return &returnedAt
	}

	testCases := []struct {
		name       string
		returnedAt *time.Time
		expected   float64
	}{
		{name: "not returned yet", returnedAt: nil, expected: 0},
		{name: "returned before due date", returnedAt: at(-48 * time.Hour), expected: 0},
		{name: "returned exactly at due date", returnedAt: at(0), expected: 0},
		{name: "returned less than one day late", returnedAt: at(23 * time.Hour), expected: 0},
		{name: "returned exactly one day late", returnedAt: at(24 * time.Hour), expected: 1},
		{name: "returned three and a half days late", returnedAt: at(84 * time.Hour), expected: 3},
		{name: "returned thirty days late", returnedAt: at(30 * 24 * time.Hour), expected: 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			fine := library.CalculateFine(dueAt, tc.returnedAt)

			// assert
			assert.Equal(t, tc.expected, fine)
			assert.Equal(t, int(tc.expected), library.WholeDaysLate(dueAt, tc.returnedAt))
		})
	}
}

func Test_CalculateFine_IsNeverNegative(t *testing.T) {
	// arrange
	dueAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	returnedAt := dueAt.Add(-365 * 24 * time.Hour)

	// act
	fine := library.CalculateFine(dueAt, &returnedAt)

	// assert
	assert.GreaterOrEqual(t, fine, 0.0)
}

func Test_FormatFine(t *testing.T) {
	assert.Equal(t, "3", library.FormatFine(3.0))
	assert.Equal(t, "2.5", library.FormatFine(2.5))
	assert.Equal(t, "0", library.FormatFine(0))
}
