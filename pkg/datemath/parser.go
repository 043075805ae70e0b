package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser resolves wall-clock instants to calendar dates in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string.
// An empty string or "Local" selects the host's local zone.
func NewParser(timezone string) (*Parser, error) {
	tz := strings.TrimSpace(timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return &Parser{location: time.Local}, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar date of now in the parser's timezone,
// as midnight UTC so it compares directly with stored deadlines.
func (p *Parser) Today(now time.Time) time.Time {
	local := p.startOfDay(now)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
