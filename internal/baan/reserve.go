package baan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/example/baan-scheduler/internal/booking"
)

const defaultEndTime = "22:45"

// Reserve books one slot for one date. The protocol is two-phase: fetch the
// per-slot reservation form to harvest the anti-forgery token and the form's
// default field values, then replay them to the confirmation endpoint with
// the two player ids. The confirmation response is JSON whose message field
// contains "success" exactly when the booking went through; everything else,
// including transport failures on either phase, comes back as a failed
// Outcome with a prose message.
func (s *Session) Reserve(ctx context.Context, slot booking.Slot, date string) booking.Outcome {
	makePath := "/reservations/make/" + slot.ResourceID + "/" + strconv.FormatInt(slot.AvailableFromUTC.Unix(), 10)
	status, body, err := s.do(ctx, http.MethodGet, makePath, nil)
	if err != nil {
		return booking.Outcome{Message: fmt.Sprintf("Reservation failed: %v", err)}
	}
	if status != http.StatusOK {
		return booking.Outcome{Message: fmt.Sprintf("Reservation failed! Status code: %d", status)}
	}

	doc, err := parseDoc(body)
	if err != nil {
		return booking.Outcome{Message: fmt.Sprintf("Reservation failed: %v", err)}
	}
	token, err := formToken(doc)
	if err != nil {
		return booking.Outcome{Message: "Reservation failed: " + err.Error()}
	}

	startTime := inputValue(doc, "start_time", slot.StartTime)
	endTime := firstOptionValue(doc, "end_time", defaultEndTime)
	form := url.Values{
		"_token":      {token},
		"resource_id": {slot.ResourceID},
		"date":        {date},
		"start_time":  {startTime},
		"end_time":    {endTime},
		"confirmed":   {inputValue(doc, "confirmed", "1")},
		"notes":       {inputValue(doc, "notes", "")},
		"players[1]":  {s.c.players.One},
		"players[2]":  {s.c.players.Two},
	}

	status, body, err = s.do(ctx, http.MethodPost, "/reservations/confirm", form)
	if err != nil {
		return booking.Outcome{Message: fmt.Sprintf("Reservation failed: %v", err)}
	}
	if status != http.StatusOK {
		return booking.Outcome{Message: fmt.Sprintf("Reservation failed! Status code: %d", status)}
	}

	var res struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return booking.Outcome{Message: "Reservation failed: unexpected response format."}
	}
	if !strings.Contains(res.Message, "success") {
		return booking.Outcome{Message: "Reservation failed: " + res.Message}
	}
	return booking.Outcome{
		Success:   true,
		Message:   "Reservation successful!",
		StartTime: startTime,
		EndTime:   endTime,
	}
}
