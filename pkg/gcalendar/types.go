package gcalendar

import "time"

const (
	DefaultCalendarID = "primary"
	DefaultTokenPath  = "token.json"
)

// AllDayEventRequest is the input for CreateAllDayEvent.
type AllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time // only Y/M/D is used
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     time.Time
}
