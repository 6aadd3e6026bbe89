// Package baan is a client for the Baanreserveren court-booking site. The
// site has no API: every operation is a scripted walk through the pages a
// browser would load, so requests carry a fixed AJAX header bundle and form
// submissions replay the anti-forgery token scraped from the page markup.
package baan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/example/baan-scheduler/internal/clock"
)

var ErrLoginFailed = errors.New("login failed")

type Credentials struct {
	Username string
	Password string
}

// Players are the two member ids submitted with every reservation.
type Players struct {
	One string
	Two string
}

type Client struct {
	baseURL string
	creds   Credentials
	players Players
	sportID string
	timeout time.Duration
	clock   clock.Clock
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithClock(cl clock.Clock) Option {
	return func(c *Client) { c.clock = cl }
}

func New(baseURL string, creds Credentials, players Players, sportID string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		players: players,
		sportID: sportID,
		timeout: 15 * time.Second,
		clock:   clock.NewSystem(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session is one authenticated connection: a cookie jar the login response
// populated plus the header bundle the site expects. Sessions are cheap and
// single-use; callers create one per top-level operation and discard it.
type Session struct {
	c  *Client
	hc *http.Client
}

// Login performs the site's form login. Success is decided solely by the
// HTTP status of the response; no retry is attempted here, retry policy
// belongs to the caller.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	s := &Session{c: c, hc: &http.Client{Jar: jar, Timeout: c.timeout}}

	form := url.Values{
		"goto":     {"/reservations"},
		"username": {c.creds.Username},
		"password": {c.creds.Password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	s.setHeaders(req)
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("Referer", c.baseURL+"/?reason=LOGGED_IN&goto=%2Freservations")

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w (status=%d)", ErrLoginFailed, res.StatusCode)
	}
	return s, nil
}

// setHeaders applies the bundle that makes requests look like the site's own
// in-browser AJAX calls; the service rejects requests without it.
func (s *Session) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.6478.57 Safari/537.36")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Ajax", "1")
	req.Header.Set("Referer", s.c.baseURL+"/reservations")
	req.Header.Set("Accept", "text/javascript, text/html, application/xml, text/xml, */*")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
}

// do runs one request on the session and returns status and body. form may
// be nil for GETs.
func (s *Session) do(ctx context.Context, method, path string, form url.Values) (int, []byte, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, s.c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	s.setHeaders(req)

	res, err := s.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, err
	}
	return res.StatusCode, b, nil
}
