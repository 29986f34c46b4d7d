package model

// DurationUnit is a calendar unit referenced in a message
type DurationUnit string

const (
	UnitDays   DurationUnit = "days"
	UnitWeeks  DurationUnit = "weeks"
	UnitMonths DurationUnit = "months"
	UnitYears  DurationUnit = "years"
)

// DurationSet holds the per-unit counts extracted from a message. A
// message may reference several units at once ("2 mois et 3 jours").
type DurationSet map[DurationUnit]int

// TotalDays converts the set to days using fixed approximations
// (30-day months, 365-day years). The conversion is deliberately not
// calendar-exact.
func (d DurationSet) TotalDays() int {
	total := d[UnitDays]
	total += d[UnitWeeks] * 7
	total += d[UnitMonths] * 30
	total += d[UnitYears] * 365
	return total
}
