package domain

import "strconv"

// FirstYear is the first Advent of Code event.
const FirstYear = 2015

// LatestYear is the most recent Advent of Code event. Bumped once a year when
// the new event opens.
const LatestYear = 2025

// Day range for every event.
const (
	FirstDay = 1
	LastDay  = 25
)

// Validate checks that (year, day) identifies a real puzzle.
func Validate(year, day int) error {
	if year < FirstYear || year > LatestYear {
		return &BadIdentifierError{Field: "year", Value: strconv.Itoa(year), Min: FirstYear, Max: LatestYear}
	}
	if day < FirstDay || day > LastDay {
		return &BadIdentifierError{Field: "day", Value: strconv.Itoa(day), Min: FirstDay, Max: LastDay}
	}
	return nil
}

// ValidateLevel checks that level names one of the two puzzle parts.
func ValidateLevel(level int) error {
	if level != 1 && level != 2 {
		return &BadIdentifierError{Field: "level", Value: strconv.Itoa(level), Min: 1, Max: 2}
	}
	return nil
}

// ParseIdent converts decimal-string forms of year and day and validates the
// result. Conversion is strict: anything but a plain decimal number is
// rejected with the same error the range check produces.
func ParseIdent(year, day string) (int, int, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0, 0, &BadIdentifierError{Field: "year", Value: year, Min: FirstYear, Max: LatestYear}
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return 0, 0, &BadIdentifierError{Field: "day", Value: day, Min: FirstDay, Max: LastDay}
	}
	if err := Validate(y, d); err != nil {
		return 0, 0, err
	}
	return y, d, nil
}
