// Package saledate computes the anchor date of a recurring yearly sale.
package saledate

import (
	"time"
)

// Rule describes a sale date as the Week-th occurrence of Weekday in
// Month, e.g. the 4th Friday of November.
type Rule struct {
	Month   time.Month
	Week    int
	Weekday time.Weekday
}

// BlackFriday is the default rule: the fourth Friday of November.
var BlackFriday = Rule{Month: time.November, Week: 4, Weekday: time.Friday}

// Next returns the next occurrence of the rule's date strictly after the
// reference date. If ref falls exactly on the sale date it counts as
// already passed and the result rolls to the following year. The result
// is midnight UTC; only ref's calendar date matters.
func Next(ref time.Time, rule Rule) time.Time {
	refDate := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	candidate := InYear(ref.Year(), rule)
	if !refDate.Before(candidate) {
		candidate = InYear(ref.Year()+1, rule)
	}

	return candidate
}

// InYear returns the rule's date for the given year at midnight UTC.
func InYear(year int, rule Rule) time.Time {
	first := time.Date(year, rule.Month, 1, 0, 0, 0, 0, time.UTC)

	// Days from the 1st to the first occurrence of the weekday.
	offset := (int(rule.Weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + 7*(rule.Week-1)

	return time.Date(year, rule.Month, day, 0, 0, 0, 0, time.UTC)
}
