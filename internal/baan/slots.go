package baan

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/example/baan-scheduler/internal/booking"
)

// ListSlots fetches the day grid and returns its free slots. A transport
// error or non-200 status means "no slots today", not an error: the grid
// page legitimately 404s for days the site is not serving yet.
//
// A cell is free when its td carries type="free". The display time and the
// bookability timestamp live on the parent row; rows without a utc attribute
// are non-actionable and skipped. The site marks a slot reservable by giving
// it a utc instant still ahead of the current time, so only those are kept.
func (s *Session) ListSlots(ctx context.Context, date string) ([]booking.Slot, error) {
	if _, err := time.Parse(booking.DateFormat, date); err != nil {
		return nil, err
	}
	status, body, err := s.do(ctx, http.MethodGet, "/reservations/"+date+"/sport/"+s.c.sportID, nil)
	if err != nil || status != http.StatusOK {
		return nil, nil
	}
	doc, err := parseDoc(body)
	if err != nil {
		return nil, nil
	}

	now := float64(s.c.clock.Now().UTC().UnixNano()) / float64(time.Second)
	var slots []booking.Slot
	doc.Find(`td[type="free"]`).Each(func(_ int, td *goquery.Selection) {
		row := td.ParentsFiltered("tr").First()
		utc, ok := row.Attr("utc")
		if !ok {
			return
		}
		epoch, err := strconv.ParseFloat(utc, 64)
		if err != nil || epoch <= now {
			return
		}
		id, _ := td.Attr("slot")
		start, _ := row.Attr("data-time")
		sec, frac := int64(epoch), epoch-float64(int64(epoch))
		slots = append(slots, booking.Slot{
			ResourceID:       id,
			StartTime:        start,
			AvailableFromUTC: time.Unix(sec, int64(frac*float64(time.Second))).UTC(),
		})
	})
	return slots, nil
}
