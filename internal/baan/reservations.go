package baan

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/example/baan-scheduler/internal/booking"
)

// ListReservations scrapes the user's future-reservations page. Rows whose
// first cell carries no reservation link are decorative and skipped.
func (s *Session) ListReservations(ctx context.Context) ([]booking.Reservation, error) {
	status, body, err := s.do(ctx, http.MethodGet, "/user/future", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("listing reservations failed (status=%d)", status)
	}
	doc, err := parseDoc(body)
	if err != nil {
		return nil, err
	}

	var out []booking.Reservation
	doc.Find("table.oneBorder tr.odd, table.oneBorder tr.even").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 6 {
			return
		}
		path, ok := cols.Eq(0).Find("a.ajaxlink").First().Attr("href")
		if !ok {
			return
		}
		out = append(out, booking.Reservation{
			Path:      path,
			Date:      text(cols.Eq(0)),
			Weekday:   text(cols.Eq(1)),
			StartTime: text(cols.Eq(2)),
			Court:     text(cols.Eq(3)),
			CreatedOn: text(cols.Eq(4)),
		})
	})
	return out, nil
}

func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
