// Package calendar computes the month grid for the calendar page. The week
// starts on Monday: weekday indexes are Monday=0..Sunday=6, converted from
// Go's Sunday-first numbering. Labels use the app's fixed Russian locale.
package calendar

import (
	"fmt"
	"time"
)

// Weekdays are the column headers, Monday first.
var Weekdays = [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

var monthNames = [12]string{
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

// Month is a displayed year/month pair. Day-of-month is not tracked.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(at time.Time) Month {
	return Month{Year: at.Year(), Month: at.Month()}
}

func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DayCount accounts for leap years via the zeroth day of the next month.
func (m Month) DayCount() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Navigate moves by whole months and normalizes across year boundaries, so
// December +1 lands in January of the next year.
func (m Month) Navigate(direction int) Month {
	return MonthOf(m.First().AddDate(0, direction, 0))
}

// Days returns the grid cells for the month: one nil placeholder per column
// before the 1st (Monday-first), then one entry per calendar day.
func (m Month) Days() []*time.Time {
	lead := WeekdayIndex(m.First())
	days := make([]*time.Time, 0, lead+m.DayCount())
	for i := 0; i < lead; i++ {
		days = append(days, nil)
	}
	for day := 1; day <= m.DayCount(); day++ {
		d := time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
		days = append(days, &d)
	}
	return days
}

func (m Month) Title() string {
	return fmt.Sprintf("%s %d", monthNames[m.Month-1], m.Year)
}

// WeekdayIndex maps a date onto the Monday-first column index.
func WeekdayIndex(at time.Time) int {
	return (int(at.Weekday()) + 6) % 7
}
