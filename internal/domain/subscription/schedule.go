package subscription

import "time"

// Delivery is one planned drop-off in a subscription's monthly schedule
type Delivery struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Boxes int    `json:"boxes"`
}

// windowDays is the forward planning horizon, the reference day inclusive
const windowDays = 31

var weekdays = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

// ScheduleDeliveries spreads a month's boxes over the preferred weekday's
// occurrences within the next 31 days starting at ref. Each delivery gets
// boxes/n, and the first boxes%n dates carry one extra so the total always
// equals boxesPerMonth and earlier dates never receive fewer boxes than
// later ones. "Any Day", an unknown day name, or a non-positive box count
// yields an empty schedule.
func ScheduleDeliveries(preferredDay string, boxesPerMonth int, ref time.Time) []Delivery {
	if preferredDay == "" || preferredDay == "Any Day" {
		return nil
	}
	target, ok := weekdays[preferredDay]
	if !ok {
		return nil
	}

	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	var dates []time.Time
	for i := 0; i < windowDays; i++ {
		d := day.AddDate(0, 0, i)
		if d.Weekday() == target {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 || boxesPerMonth <= 0 {
		return nil
	}

	base := boxesPerMonth / len(dates)
	remainder := boxesPerMonth % len(dates)

	schedule := make([]Delivery, 0, len(dates))
	for i, d := range dates {
		boxes := base
		if i < remainder {
			boxes++
		}
		schedule = append(schedule, Delivery{
			Date:  d.Format("2006-01-02"),
			Day:   preferredDay,
			Boxes: boxes,
		})
	}
	return schedule
}
