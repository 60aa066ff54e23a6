package controllers

import (
	"testing"
	"time"

	"resto/models"
)

func TestStartOfDayKeysAllZonesToTheSameInstant(t *testing.T) {
	buenosAires := time.FixedZone("ART", -3*60*60)
	localEvening := time.Date(2024, time.March, 4, 21, 30, 0, 0, buenosAires)

	parsed, err := time.Parse("2006-01-02", "2024-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !startOfDay(localEvening).Equal(parsed) {
		t.Errorf("local timestamp and parsed request date must key to the same day: %v vs %v",
			startOfDay(localEvening), parsed)
	}
	if !startOfDay(localEvening).Equal(startOfDay(parsed)) {
		t.Errorf("normalization must be idempotent across zones: %v vs %v",
			startOfDay(localEvening), startOfDay(parsed))
	}
}

func TestExpectedTimesStayInTheCallersZone(t *testing.T) {
	buenosAires := time.FixedZone("ART", -3*60*60)
	employee := models.Employee{ExpectedCheckIn: "09:00", ExpectedCheckOut: "17:00"}

	now := time.Date(2024, time.March, 4, 9, 30, 0, 0, buenosAires)
	expectedIn, expectedOut := expectedTimesFor(employee, now)

	if expectedIn.Location() != buenosAires || expectedOut.Location() != buenosAires {
		t.Error("expected times must be anchored in the caller's zone")
	}
	if got := now.Sub(expectedIn); got != 30*time.Minute {
		t.Errorf("expected 30 late minutes against a 09:00 check-in, got %v", got)
	}
	if expectedOut.Hour() != 17 || expectedOut.Minute() != 0 {
		t.Errorf("unexpected check-out anchor %v", expectedOut)
	}
}

func TestExpectedTimesFallBackOnBadFormat(t *testing.T) {
	employee := models.Employee{ExpectedCheckIn: "not-a-time", ExpectedCheckOut: ""}
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	expectedIn, expectedOut := expectedTimesFor(employee, date)

	if expectedIn.Hour() != 9 {
		t.Errorf("expected 09:00 fallback, got %v", expectedIn)
	}
	if expectedOut.Hour() != 17 {
		t.Errorf("expected 17:00 fallback, got %v", expectedOut)
	}
}
