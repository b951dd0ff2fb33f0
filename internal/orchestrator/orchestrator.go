// Package orchestrator drives the end-to-end booking flow: create a
// booking, create its payment, present the payable reference, then poll
// the payment status until it settles, times out or the caller cancels.
package orchestrator

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"cinebook/api"
	"cinebook/internal/client"
	"cinebook/internal/domain"
)

const (
	// DefaultPollInterval matches the original web client's 1.8s poll timer.
	DefaultPollInterval = 1800 * time.Millisecond

	// DefaultMaxPollAttempts bounds the settlement loop; the original
	// polled forever, which left abandoned flows ticking indefinitely.
	DefaultMaxPollAttempts = 100
)

type State int

const (
	StateIdle State = iota
	StateCreatingBooking
	StateCreatingPayment
	StateAwaitingPayment
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCreatingBooking:
		return "creating_booking"
	case StateCreatingPayment:
		return "creating_payment"
	case StateAwaitingPayment:
		return "awaiting_payment"
	case StateSettled:
		return "settled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome is the terminal result of one flow run.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeSettled
	OutcomeTimedOut
	OutcomeCanceled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSettled:
		return "settled"
	case OutcomeTimedOut:
		return "timed_out"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "failed"
	}
}

// Request describes what the user wants to book.
type Request struct {
	MovieID  string
	Hall     string
	Time     string
	Seats    []string
	UserName string
	Email    string
}

// Event is a progress notification from a running flow. Generation ties the
// event to one Run invocation so consumers can discard events from an
// abandoned flow.
type Event struct {
	Generation uint64
	State      State
	Booking    *api.Booking
	Payment    *api.Payment
	Attempt    int
	Err        error
}

// Result is the terminal state of one flow run.
type Result struct {
	Generation uint64
	Outcome    Outcome
	Booking    *api.Booking
	Payment    *api.Payment
}

// Orchestrator sequences booking creation, payment creation and settlement
// polling against the API. It is safe for concurrent Runs; each run gets
// its own generation tag.
type Orchestrator struct {
	client          *client.Client
	pollInterval    time.Duration
	maxPollAttempts int

	generation atomic.Uint64
}

type Option func(*Orchestrator)

func WithPollInterval(d time.Duration) Option {
	return func(o *Orchestrator) { o.pollInterval = d }
}

func WithMaxPollAttempts(n int) Option {
	return func(o *Orchestrator) { o.maxPollAttempts = n }
}

func New(c *client.Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client:          c,
		pollInterval:    DefaultPollInterval,
		maxPollAttempts: DefaultMaxPollAttempts,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Run executes the whole flow. onEvent, when non-nil, receives progress
// events from the calling goroutine's perspective in order. Run blocks
// until the flow settles, times out, fails, or ctx is canceled.
func (o *Orchestrator) Run(ctx context.Context, req Request, onEvent func(Event)) (Result, error) {
	gen := o.generation.Add(1)

	emit := func(e Event) {
		e.Generation = gen
		if onEvent != nil {
			onEvent(e)
		}
	}

	emit(Event{State: StateCreatingBooking})

	bookingReq := api.CreateBookingRequest{
		MovieId: req.MovieID,
		Hall:    req.Hall,
		Time:    req.Time,
		Seats:   req.Seats,
	}
	if req.UserName != "" {
		bookingReq.User = &api.User{Name: req.UserName, Email: req.Email}
	}

	booking, err := o.client.CreateBooking(ctx, bookingReq)
	if err != nil {
		return Result{Generation: gen, Outcome: OutcomeFailed}, fmt.Errorf("booking creation failed: %w", err)
	}

	emit(Event{State: StateCreatingPayment, Booking: &booking})

	amount := domain.TicketAmount(len(req.Seats)).IntPart()

	payment, err := o.client.CreatePayment(ctx, api.CreatePaymentRequest{
		BookingId: booking.Id,
		Amount:    amount,
	})
	if err != nil {
		return Result{Generation: gen, Outcome: OutcomeFailed, Booking: &booking}, fmt.Errorf("payment creation failed: %w", err)
	}

	emit(Event{State: StateAwaitingPayment, Booking: &booking, Payment: &payment})

	return o.awaitSettlement(ctx, gen, &booking, &payment, emit)
}

// awaitSettlement polls the payment status on a fixed interval. Transient
// poll errors and pending/not_found statuses keep the loop alive; only a
// paid status settles it. The attempt budget turns an abandoned payment
// into an explicit TimedOut outcome instead of polling forever.
func (o *Orchestrator) awaitSettlement(
	ctx context.Context,
	gen uint64,
	booking *api.Booking,
	payment *api.Payment,
	emit func(Event)) (Result, error) {

	ticker := time.NewTicker(o.pollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= o.maxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			// The payment is left in whatever state the ledger holds;
			// cancellation is a client-side decision only.
			return Result{Generation: gen, Outcome: OutcomeCanceled, Booking: booking, Payment: payment}, ctx.Err()

		case <-ticker.C:
			status, err := o.client.PaymentStatus(ctx, payment.Id)
			if err != nil {
				if ctx.Err() != nil {
					return Result{Generation: gen, Outcome: OutcomeCanceled, Booking: booking, Payment: payment}, ctx.Err()
				}

				// Transient failure: stay in AwaitingPayment and poll again.
				emit(Event{State: StateAwaitingPayment, Booking: booking, Payment: payment, Attempt: attempt, Err: err})
				continue
			}

			if status.Status == string(domain.PaymentStatusPaid) {
				if status.Payment != nil {
					payment = status.Payment
				}

				emit(Event{State: StateSettled, Booking: booking, Payment: payment, Attempt: attempt})

				return Result{Generation: gen, Outcome: OutcomeSettled, Booking: booking, Payment: payment}, nil
			}

			// pending or not_found: keep polling.
			emit(Event{State: StateAwaitingPayment, Booking: booking, Payment: payment, Attempt: attempt})
		}
	}

	return Result{Generation: gen, Outcome: OutcomeTimedOut, Booking: booking, Payment: payment},
		fmt.Errorf("payment %s did not settle within %d attempts", payment.Id, o.maxPollAttempts)
}
