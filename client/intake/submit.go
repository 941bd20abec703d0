package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pageit/pageit-forms/pkg/respond"
)

// Sender delivers an assembled submission and reports the server's verdict.
type Sender interface {
	Send(ctx context.Context, contentType string, body io.Reader) (respond.Result, error)
}

// HTTPSender posts submissions to the referral endpoint.
type HTTPSender struct {
	BaseURL string
	Client  *http.Client
}

// Send posts the body to BaseURL/api/referral and decodes the result
// envelope. Non-JSON responses surface as errors.
func (s *HTTPSender) Send(ctx context.Context, contentType string, body io.Reader) (respond.Result, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/referral", body)
	if err != nil {
		return respond.Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := client.Do(req)
	if err != nil {
		return respond.Result{}, fmt.Errorf("post referral: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var res respond.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return respond.Result{}, fmt.Errorf("decode response: %w", err)
	}
	return res, nil
}

// Submit assembles and delivers the current form state. At most one submit
// runs at a time; a second call while one is in flight returns
// ErrSubmitInFlight immediately.
//
// On a success verdict the lead fields are cleared and, when remember is on,
// the referrer and payout sections are written to the profile store. On a
// failure verdict or transport error every entered value is preserved so the
// user can correct and resubmit.
func (f *Form) Submit(ctx context.Context) (respond.Result, error) {
	if f.sender == nil {
		return respond.Result{}, ErrNoSender
	}

	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return respond.Result{}, ErrSubmitInFlight
	}
	f.inFlight = true
	snapshot := f.state
	snapshot.Lead.Links = append([]string(nil), f.state.Lead.Links...)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight = false
		f.mu.Unlock()
	}()

	contentType, body, err := f.buildPayload(snapshot)
	if err != nil {
		return respond.Result{}, err
	}

	res, err := f.sender.Send(ctx, contentType, body)
	if err != nil {
		return respond.Result{}, err
	}
	if !res.OK {
		return res, nil
	}

	f.mu.Lock()
	f.state.Lead = Lead{}
	f.state.Lookup = LookupIdle
	f.mu.Unlock()

	if snapshot.Remember && f.store != nil {
		if err := f.store.SaveReferrer(ctx, snapshot.Referrer); err != nil {
			f.log.Warn("referrer profile not saved", "error", err)
		}
		if err := f.store.SavePayout(ctx, snapshot.Payout); err != nil {
			f.log.Warn("payout account not saved", "error", err)
		}
	}
	return res, nil
}
