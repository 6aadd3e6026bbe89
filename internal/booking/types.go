package booking

import "time"

// DateFormat is the wire format the reservation site uses for dates.
const DateFormat = "2006-01-02"

// Slot is a bookable time unit on one court for one day.
//
// AvailableFromUTC is the instant after which the site allows booking the
// slot; the grid encodes it as a unix timestamp on the slot's table row.
type Slot struct {
	ResourceID       string    `json:"resource_id"`
	StartTime        string    `json:"start_time"` // HH:MM, court-local
	AvailableFromUTC time.Time `json:"available_from_utc"`
}

// Reservation is a confirmed booking as listed on the user's
// future-reservations page. Path is the server-assigned reservation link,
// used verbatim to build the cancel URL.
type Reservation struct {
	Path      string
	Date      string
	Weekday   string
	StartTime string
	Court     string
	CreatedOn string
}

// PendingBooking is a booking request that fell outside the advance-booking
// window and is parked until a sweep finds it eligible.
type PendingBooking struct {
	Date string `json:"date"` // DateFormat
	Slot Slot   `json:"slot"`
}

// Outcome is the human-facing result of a reserve or cancel attempt. The
// site reports failures as prose, so callers get a message rather than a
// structured error code. StartTime/EndTime are set only on a successful
// reservation. Deferred marks a request that was queued instead of booked.
type Outcome struct {
	Success   bool
	Deferred  bool
	Message   string
	StartTime string
	EndTime   string
}

// DaysUntil returns the whole calendar days from now's date to date,
// ignoring clock time on both sides.
func DaysUntil(now time.Time, date time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
