// Package schedule computes when a user's campaigns are due and optionally
// dispatches the due ones from an in-process ticker. Campaigns in a
// schedule run one per hour: the Nth entry fires at the stored launch time
// plus N hours, in the user's own timezone.
package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"leadflow/internal/core/domain"
)

// SlotClock returns the wall-clock hour and minute at which the idx-th
// campaign of the schedule fires, in the schedule's own timezone.
func SlotClock(s domain.Schedule, idx int) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s.LaunchTime)
	if err != nil {
		return 0, 0, fmt.Errorf("bad launch time %q: %w", s.LaunchTime, err)
	}
	return (t.Hour() + idx) % 24, t.Minute(), nil
}

// Due returns the campaign whose slot matches the current minute in the
// schedule's timezone, if any. Hour-granularity slots mean at most one
// campaign is due per minute.
func Due(s domain.Schedule, now time.Time) (uuid.UUID, bool) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return uuid.Nil, false
	}
	local := now.In(loc)
	for i, id := range s.CampaignIDs {
		hour, minute, err := SlotClock(s, i)
		if err != nil {
			return uuid.Nil, false
		}
		if local.Hour() == hour && local.Minute() == minute {
			return id, true
		}
	}
	return uuid.Nil, false
}
