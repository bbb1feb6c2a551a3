package kernel

import "time"

// AddBusinessDays advances t by the given number of business days,
// skipping Saturdays and Sundays. The calculation is applied one day at a
// time: each step moves one calendar day forward, and a step landing on a
// weekend rolls on to the following Monday. A non-positive days value
// returns t unchanged.
//
// Used for production scheduling: the production start date is the next
// business day after manufacturer selection, and the estimated completion
// date a fixed number of business days after that.
func AddBusinessDays(t time.Time, days int) time.Time {
	for i := 0; i < days; i++ {
		t = t.AddDate(0, 0, 1)
		for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
			t = t.AddDate(0, 0, 1)
		}
	}
	return t
}
