package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"alerts_review/internal/models"
	"alerts_review/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", defaultInterval},
		{"interval_string_valid", "/ws?interval=2s", 2 * time.Second},
		{"interval_ms_valid", "/ws?interval_ms=750", 750 * time.Millisecond},
		{"interval_too_small", "/ws?interval=100ms", defaultInterval},
		{"interval_too_large", "/ws?interval=2m", defaultInterval},
		{"interval_ms_too_large", "/ws?interval_ms=90000", defaultInterval},
		{"interval_invalid_string", "/ws?interval=bogus", defaultInterval},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", defaultInterval},
		{"both_present_interval_wins", "/ws?interval=3s&interval_ms=750", 3 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=800", 800 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialReview(t *testing.T, s *service.Service, caseID, token string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(newTestRouter(s))
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws/cases/" + caseID
	q := u.Query()
	q.Set("token", token)
	q.Set("interval_ms", "500")
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWebSocket_ReviewStream_InitialAndPeriodic(t *testing.T) {
	rev := &mockReviewer{review: service.CaseReview{
		Case:                models.Case{CaseID: "c-1", Status: models.StatusOpen, BodyType: models.BodyPool},
		SlowHeatingDetected: true,
		Banner:              "slow",
	}}
	s := newTestService()
	s.Reviewer = rev

	conn := dialReview(t, s, "c-1", testToken)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != wsTypeReview || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var got service.CaseReview
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("unmarshal review: %v", err)
	}
	if got.Case.CaseID != "c-1" || !got.SlowHeatingDetected {
		t.Fatalf("unexpected review: %+v", got)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != wsTypeReview {
		t.Fatalf("expected type=review, got %+v", env)
	}
}

func TestWebSocket_MissingCase_SendsErrorAndCloses(t *testing.T) {
	s := newTestService()
	s.Reviewer = &mockReviewer{err: service.ErrCaseNotFound}

	conn := dialReview(t, s, "nope", testToken)

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != wsTypeError || env.Error != errCaseNotFound {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}

func TestWebSocket_TransientErrorKeepsStreaming(t *testing.T) {
	rev := &mockReviewer{err: errors.New("db busy")}
	s := newTestService()
	s.Reviewer = rev

	conn := dialReview(t, s, "c-1", testToken)

	for i := 0; i < 2; i++ {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if env.Type != wsTypeError || env.Error != errGetReview {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	}
}

func TestWebSocket_RejectsBadToken(t *testing.T) {
	s := &service.Service{
		Authorization: &mockAuth{parseErr: errors.New("expired")},
		Reviewer:      &mockReviewer{},
	}
	srv := httptest.NewServer(newTestRouter(s))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws/cases/c-1"
	u.RawQuery = "token=bad"

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	_, resp, err := dialer.Dial(u.String(), nil)
	if err == nil {
		t.Fatalf("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %+v", resp)
	}
}
