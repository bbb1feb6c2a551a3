package order

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// ProductionSchedule derives the production dates written when payment is
// verified. Lead and duration are counted in business days, skipping
// weekends.
type ProductionSchedule struct {
	StartLeadDays int
	DurationDays  int
}

// DefaultProductionSchedule returns the standard schedule: production
// starts the next business day and is estimated to take three business
// days from the start.
func DefaultProductionSchedule() ProductionSchedule {
	return ProductionSchedule{StartLeadDays: 1, DurationDays: 3}
}

// Validate checks that lead and duration are positive.
func (s ProductionSchedule) Validate() error {
	if s.StartLeadDays < 1 || s.StartLeadDays > 30 {
		return errs.NewValueIsOutOfRangeError("startLeadDays", s.StartLeadDays, 1, 30)
	}
	if s.DurationDays < 1 || s.DurationDays > 90 {
		return errs.NewValueIsOutOfRangeError("durationDays", s.DurationDays, 1, 90)
	}
	return nil
}

// StartDate returns the production start date counted from now.
func (s ProductionSchedule) StartDate(now time.Time) time.Time {
	return kernel.AddBusinessDays(now, s.StartLeadDays)
}

// EstimatedEndDate returns the estimated completion date counted from the
// start date.
func (s ProductionSchedule) EstimatedEndDate(start time.Time) time.Time {
	return kernel.AddBusinessDays(start, s.DurationDays)
}
