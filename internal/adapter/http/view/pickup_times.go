package view

import "time"

type PickupOption struct {
	Value string // RFC 3339, posted back as pickup_time
	Label string
}

// PickupTimes generates the pickup windows offered on the delivery/pickup
// form. The clock is injectable so tests get stable output.
type PickupTimes struct {
	now func() time.Time
}

func NewPickupTimes() PickupTimes {
	return PickupTimes{now: time.Now}
}

func NewPickupTimesAt(now func() time.Time) PickupTimes {
	return PickupTimes{now: now}
}

// Options lists pickup windows for the next four days, starting tomorrow,
// three slots per day.
func (p PickupTimes) Options() []PickupOption {
	var opts []PickupOption
	hours := []int{11, 14, 17}

	day := p.now().UTC().Truncate(24 * time.Hour)
	for d := 1; d <= 4; d++ {
		date := day.AddDate(0, 0, d)
		for _, h := range hours {
			slot := time.Date(date.Year(), date.Month(), date.Day(), h, 0, 0, 0, time.UTC)
			opts = append(opts, PickupOption{
				Value: slot.Format(time.RFC3339),
				Label: slot.Format("Mon, Jan 2 at 3:04 PM"),
			})
		}
	}
	return opts
}
