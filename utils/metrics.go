package utils

import (
	"errors"
	"time"
)

// CalculateAge returns whole years elapsed between birthDate and now. A
// birthday not yet reached this year does not count as a completed year.
func CalculateAge(birthDate, now time.Time) int {
	if birthDate.After(now) {
		birthDate, now = now, birthDate
	}
	years := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}
	return years
}

// CalculateBMR implements Mifflin-St Jeor:
// 10×weight + 6.25×height − 5×age, +5 for males, −161 for females.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, errors.New("weight and height must be positive")
	}
	if gender != "male" && gender != "female" {
		return 0, errors.New("gender must be male or female")
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// SameCalendarDay compares local calendar dates, ignoring time of day.
func SameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DaysInMonth returns the real day count for the month/year (month 1–12).
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()
}
