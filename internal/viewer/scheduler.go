package viewer

import "time"

// Scheduler decides when the astronomical models are due for a resample.
// Planet rotation and sun elevation change on very different timescales, so
// each has its own interval. Elapsed-time comparison keeps the schedule
// correct under variable or dropped frames.
type Scheduler struct {
	RotationInterval time.Duration
	SunInterval      time.Duration

	lastRotation time.Time
	lastSun      time.Time
}

// NewScheduler returns a scheduler with the given resample intervals.
func NewScheduler(rotation, sun time.Duration) *Scheduler {
	return &Scheduler{
		RotationInterval: rotation,
		SunInterval:      sun,
	}
}

// Due reports which models should be resampled at now and records the
// resample time for those that are. The first call reports both due.
func (s *Scheduler) Due(now time.Time) (rotation, sun bool) {
	if s.lastRotation.IsZero() || now.Sub(s.lastRotation) >= s.RotationInterval {
		s.lastRotation = now
		rotation = true
	}
	if s.lastSun.IsZero() || now.Sub(s.lastSun) >= s.SunInterval {
		s.lastSun = now
		sun = true
	}
	return rotation, sun
}

// Force marks both models due on the next call to Due.
func (s *Scheduler) Force() {
	s.lastRotation = time.Time{}
	s.lastSun = time.Time{}
}
