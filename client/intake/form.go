package intake

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/pageit/pageit-forms/pkg/phone"
	"github.com/pageit/pageit-forms/pkg/postal"
	"github.com/pageit/pageit-forms/pkg/profilestore"
)

var (
	// ErrSubmitInFlight is returned by Submit while a previous submission is
	// still running. The form keeps at most one request in flight.
	ErrSubmitInFlight = errors.New("intake.errors.submit_in_flight")

	// ErrNoSender is returned by Submit when the form was built without a
	// submission transport.
	ErrNoSender = errors.New("intake.errors.no_sender")

	// ErrTooManyLinks is returned by AddLink once the link list is full.
	ErrTooManyLinks = errors.New("intake.errors.too_many_links")
)

// LookupStatus tracks the postal lookup lifecycle.
type LookupStatus int

const (
	LookupIdle LookupStatus = iota
	LookupSearching
	LookupFound
	LookupNotFound
	LookupError
)

// Upload is a file the user picked for the logo field.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// IsEmpty reports whether no usable file was picked.
func (u *Upload) IsEmpty() bool {
	return u == nil || len(u.Content) == 0
}

// Lead holds the referred-business fields. They are entered fresh for every
// submission and never persisted.
type Lead struct {
	ShopName      string
	OwnerName     string
	Industry      string
	IndustryOther string
	LeadEmail     string
	PhoneDisplay  string
	ZipDisplay    string
	Address       string
	Memo          string
	Links         []string
	Logo          *Upload
}

// State is a snapshot of everything the form currently holds.
type State struct {
	Referrer profilestore.ReferrerProfile
	Payout   profilestore.PayoutAccount
	Lead     Lead
	Remember bool
	Lookup   LookupStatus
}

// Form is the referral intake controller.
type Form struct {
	resolver postal.Resolver
	debounce *postal.Debouncer
	phones   *phone.Formatter
	store    profilestore.Store
	sender   Sender
	log      *slog.Logger

	mu       sync.Mutex
	state    State
	inFlight bool
}

// Option configures a Form.
type Option func(*Form)

// WithResolver sets the postal code resolver.
func WithResolver(r postal.Resolver) Option {
	return func(f *Form) { f.resolver = r }
}

// WithDebounce overrides the pause before a postal lookup fires.
func WithDebounce(d time.Duration) Option {
	return func(f *Form) { f.debounce = postal.NewDebouncer(d) }
}

// WithStore sets the profile persistence backend.
func WithStore(s profilestore.Store) Option {
	return func(f *Form) { f.store = s }
}

// WithSender sets the submission transport.
func WithSender(s Sender) Option {
	return func(f *Form) { f.sender = s }
}

// WithLogger sets the logger. Nil is replaced with a discarding logger.
func WithLogger(log *slog.Logger) Option {
	return func(f *Form) { f.log = log }
}

// NewForm creates a form controller. With no options it resolves against the
// public postal service and keeps profiles in memory only; submitting
// requires a Sender and returns ErrNoSender without one.
func NewForm(opts ...Option) *Form {
	f := &Form{
		resolver: postal.NewClient(),
		debounce: postal.NewDebouncer(postal.DefaultDebounce),
		phones:   phone.NewFormatter(phone.DefaultRegion),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.log == nil {
		f.log = slog.New(slog.DiscardHandler)
	}
	return f
}

// Load prefills the referrer and payout sections from the profile store.
// Absent or unreadable slots leave the defaults untouched.
func (f *Form) Load(ctx context.Context) error {
	if f.store == nil {
		return nil
	}
	referrer, err := f.store.LoadReferrer(ctx)
	if err != nil {
		return err
	}
	payout, err := f.store.LoadPayout(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if referrer != nil {
		f.state.Referrer = *referrer
	}
	if payout != nil {
		f.state.Payout = *payout
	}
	return nil
}

// Snapshot returns a copy of the current form state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Lead.Links = append([]string(nil), f.state.Lead.Links...)
	return s
}

// SetReferrer replaces the referrer section.
func (f *Form) SetReferrer(p profilestore.ReferrerProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Referrer = p
}

// SetPayout replaces the payout section.
func (f *Form) SetPayout(a profilestore.PayoutAccount) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Payout = a
}

// SetLead replaces the lead section wholesale, except for the phone and zip
// fields which go through their dedicated setters.
func (f *Form) SetLead(lead Lead) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lead.PhoneDisplay = f.state.Lead.PhoneDisplay
	lead.ZipDisplay = f.state.Lead.ZipDisplay
	f.state.Lead = lead
}

// AddLink appends a reference link row. The form holds at most three rows;
// further adds are refused with ErrTooManyLinks.
func (f *Form) AddLink(link string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.state.Lead.Links) >= maxLinks {
		return ErrTooManyLinks
	}
	f.state.Lead.Links = append(f.state.Lead.Links, link)
	return nil
}

// SetRemember toggles profile persistence on successful submit.
func (f *Form) SetRemember(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Remember = on
}

// SetPhone reformats the raw phone keystrokes into national display form.
func (f *Form) SetPhone(raw string) {
	display := f.phones.Display(raw)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Lead.PhoneDisplay = display
}

// SetZip updates the zip field from raw keystrokes. The display value is
// rewritten as NNN-NNNN; once exactly seven digits are present a debounced
// lookup is scheduled, cancelling any pending one. A lookup result is
// discarded when the digits changed while it was in flight, so only the
// latest lookup can overwrite the address.
func (f *Form) SetZip(ctx context.Context, raw string) {
	digits := postal.Normalize(raw)

	f.mu.Lock()
	f.state.Lead.ZipDisplay = postal.Format(digits)
	if !postal.Complete(digits) {
		f.state.Lookup = LookupIdle
		f.mu.Unlock()
		f.debounce.Cancel()
		return
	}
	f.state.Lookup = LookupSearching
	f.mu.Unlock()

	f.debounce.Trigger(func() {
		f.lookup(ctx, digits)
	})
}

func (f *Form) lookup(ctx context.Context, digits string) {
	addr, err := f.resolver.Lookup(ctx, digits)

	f.mu.Lock()
	defer f.mu.Unlock()
	if postal.Normalize(f.state.Lead.ZipDisplay) != digits {
		// Superseded: the user kept typing while this lookup ran.
		return
	}
	switch {
	case errors.Is(err, postal.ErrNotFound):
		f.state.Lookup = LookupNotFound
	case err != nil:
		f.log.Warn("postal lookup failed", "zip", digits, "error", err)
		f.state.Lookup = LookupError
	default:
		f.state.Lead.Address = addr.Full()
		f.state.Lookup = LookupFound
	}
}
