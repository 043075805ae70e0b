package task

import "time"

// Suggestion is the fixed advice shown next to a task.
type Suggestion string

const (
	SuggestionOverdue  Suggestion = "Overdue! Do this now!"
	SuggestionToday    Suggestion = "Due today! Prioritize this."
	SuggestionSoon     Suggestion = "Due soon. Plan accordingly."
	SuggestionUpcoming Suggestion = "Upcoming task. Keep it on your radar."
)

// Urgency is the band a deadline falls into relative to today.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyToday    Urgency = "today"
	UrgencySoon     Urgency = "soon"
	UrgencyUpcoming Urgency = "upcoming"
)

// SoonWindowDays is the last day delta still classified as soon.
const SoonWindowDays = 3

const secondsPerDay = 24 * 60 * 60

var suggestions = map[Urgency]Suggestion{
	UrgencyOverdue:  SuggestionOverdue,
	UrgencyToday:    SuggestionToday,
	UrgencySoon:     SuggestionSoon,
	UrgencyUpcoming: SuggestionUpcoming,
}

// Classify returns the suggestion for deadline as seen from today.
func Classify(deadline, today time.Time) Suggestion {
	return ClassifyUrgency(deadline, today).Suggestion()
}

// ClassifyUrgency buckets deadline into an Urgency band relative to today.
func ClassifyUrgency(deadline, today time.Time) Urgency {
	days := DaysUntil(deadline, today)
	switch {
	case days < 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyToday
	case days <= SoonWindowDays:
		return UrgencySoon
	default:
		return UrgencyUpcoming
	}
}

// DaysUntil is the whole number of calendar days from today to deadline.
// Only the Y/M/D of each value count; clock time and zone offsets are ignored.
func DaysUntil(deadline, today time.Time) int {
	d := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int((d.Unix() - t.Unix()) / secondsPerDay)
}

// Suggestion returns the message for u.
func (u Urgency) Suggestion() Suggestion {
	return suggestions[u]
}

func (s Suggestion) String() string { return string(s) }
