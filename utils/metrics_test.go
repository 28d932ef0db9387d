package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMR(t *testing.T) {
	bmr, err := CalculateBMR(70, 175, 30, "male")
	require.NoError(t, err)
	assert.InDelta(t, 1648.75, bmr, 0.001)

	bmr, err = CalculateBMR(60, 165, 25, "female")
	require.NoError(t, err)
	// 600 + 1031.25 - 125 - 161
	assert.InDelta(t, 1345.25, bmr, 0.001)
}

func TestCalculateBMRValidation(t *testing.T) {
	_, err := CalculateBMR(0, 175, 30, "male")
	assert.Error(t, err)

	_, err = CalculateBMR(70, -1, 30, "male")
	assert.Error(t, err)

	_, err = CalculateBMR(70, 175, 30, "other")
	assert.Error(t, err)
}

func TestCalculateAge(t *testing.T) {
	birth := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	// Day before the birthday the year is not complete yet.
	assert.Equal(t, 29, CalculateAge(birth, time.Date(2020, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, CalculateAge(birth, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, CalculateAge(birth, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.857, bmi, 0.001)
	assert.Equal(t, "Normal weight", BMICategory(bmi))

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local)
	night := time.Date(2024, 3, 10, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

	assert.True(t, SameCalendarDay(morning, night))
	assert.False(t, SameCalendarDay(night, nextDay))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, 1))
	assert.Equal(t, 29, DaysInMonth(2024, 2)) // leap year
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 30, DaysInMonth(2024, 4))
	assert.Equal(t, 31, DaysInMonth(2024, 12))
}
