package entity

import "time"

// Employee is a directory record. DatePosted is assigned by the store at
// creation and is immutable; listings order by it descending.
type Employee struct {
	ID         int64
	Email      string
	Name       string
	Address    string
	City       string
	State      string
	Zip        string
	Phone      string
	DatePosted time.Time
}

// USStates is the fixed set of state abbreviations accepted by the
// employee form.
var USStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE",
	"FL", "GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA",
	"ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD",
	"TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// IsUSState reports whether s is a member of USStates.
func IsUSState(s string) bool {
	for _, st := range USStates {
		if st == s {
			return true
		}
	}
	return false
}
