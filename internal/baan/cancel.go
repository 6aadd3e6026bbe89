package baan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/example/baan-scheduler/internal/booking"
)

// Cancel removes an existing reservation. reservationPath is the link
// harvested from the future-reservations list. Like reserving, cancelling
// is token-gated: fetch the cancel page, extract the token, post it back
// with a confirmation flag. A page without a token is reported distinctly
// from an HTTP failure so batch callers can tell the two apart.
func (s *Session) Cancel(ctx context.Context, reservationPath string) booking.Outcome {
	cancelPath := reservationPath + "/cancel"
	status, body, err := s.do(ctx, http.MethodGet, cancelPath, nil)
	if err != nil {
		return booking.Outcome{Message: fmt.Sprintf("Failed to initiate cancellation: %v", err)}
	}
	if status != http.StatusOK {
		return booking.Outcome{Message: fmt.Sprintf("Failed to initiate cancellation! Status code: %d", status)}
	}

	doc, err := parseDoc(body)
	if err != nil {
		return booking.Outcome{Message: fmt.Sprintf("Failed to cancel reservation: %v", err)}
	}
	token, err := formToken(doc)
	if err != nil {
		return booking.Outcome{Message: "Failed to cancel reservation: " + err.Error()}
	}

	form := url.Values{
		"_token":    {token},
		"confirmed": {"1"},
	}
	status, _, err = s.do(ctx, http.MethodPost, cancelPath, form)
	if err != nil {
		return booking.Outcome{Message: fmt.Sprintf("Failed to cancel reservation: %v", err)}
	}
	if status != http.StatusOK {
		return booking.Outcome{Message: fmt.Sprintf("Failed to cancel reservation! Status code: %d", status)}
	}
	return booking.Outcome{Success: true, Message: "Reservation cancelled successfully."}
}
