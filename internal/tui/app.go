// Package tui is the terminal chat client. It routes typed messages to
// either a local intent handler or the assistant endpoint, and walks the
// user through movie, show and seat selection before handing the flow to
// the orchestrator.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinebook/api"
	"cinebook/internal/assistant"
	"cinebook/internal/client"
	"cinebook/internal/domain"
	"cinebook/internal/orchestrator"
)

const (
	seatRows    = 4
	seatCols    = 8
	seatRowBase = 'A'
)

type appState int

const (
	stateChat appState = iota
	stateLoadingMovies
	stateSelectMovie
	stateLoadingShows
	stateSelectShow
	stateSelectSeats
	stateBooking
	stateAwaitingPayment
	stateSettled
)

type chatLine struct {
	fromUser bool
	text     string
}

type showOption struct {
	hall   string
	timing string
}

type appModel struct {
	client *client.Client
	orch   *orchestrator.Orchestrator

	state appState
	err   error

	width  int
	height int

	input   textinput.Model
	spinner spinner.Model

	transcript []chatLine

	movies []api.Movie
	shows  []showOption
	cursor int

	// pendingTimings is set when a "timings for <title>" request is in
	// flight, so the movies response is rendered as timings instead of
	// starting a booking.
	pendingTimings string
	bookingIntent  bool

	movie api.Movie
	show  showOption

	seatRow  int
	seatCol  int
	selected map[string]bool

	booking *api.Booking
	payment *api.Payment

	events chan tea.Msg
	cancel context.CancelFunc
}

type moviesMsg struct {
	movies []api.Movie
	err    error
}

type showsMsg struct {
	movie api.Movie
	resp  api.ShowListResponse
	err   error
}

type assistantMsg struct {
	reply string
	err   error
}

type flowEventMsg struct {
	events chan tea.Msg
	event  orchestrator.Event
}

type flowDoneMsg struct {
	events chan tea.Msg
	result orchestrator.Result
	err    error
}

type confirmedMsg struct {
	payment api.Payment
	err     error
}

func New(c *client.Client, orch *orchestrator.Orchestrator) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about movies, timings, or say 'book'..."
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	return appModel{
		client:   c,
		orch:     orch,
		state:    stateChat,
		input:    ti,
		spinner:  sp,
		selected: make(map[string]bool),
		transcript: []chatLine{
			{text: "Hi! I can list movies, show timings, or book tickets for you."},
		},
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case moviesMsg:
		return m.handleMovies(msg)

	case showsMsg:
		if msg.err != nil {
			return m.failBack(msg.err)
		}
		if m.pendingTimings != "" {
			m.pendingTimings = ""
			m.say(renderTimings(msg.movie, msg.resp.Shows))
			m.state = stateChat
			return m, nil
		}
		m.movie = msg.movie
		m.shows = flattenShows(msg.resp.Shows)
		if len(m.shows) == 0 {
			return m.failBack(fmt.Errorf("no shows found for %s", msg.movie.Title))
		}
		m.cursor = 0
		m.state = stateSelectShow
		return m, nil

	case assistantMsg:
		if msg.err != nil {
			return m.failBack(msg.err)
		}
		m.say(msg.reply)
		m.state = stateChat
		return m, nil

	case flowEventMsg:
		if msg.events != m.events {
			return m, nil
		}
		return m.handleFlowEvent(msg.event)

	case flowDoneMsg:
		if msg.events != m.events {
			return m, nil
		}
		return m.handleFlowDone(msg)

	case confirmedMsg:
		if msg.err != nil {
			m.say(fmt.Sprintf("Payment confirmation failed: %v", msg.err))
			return m, nil
		}
		// The poll loop picks up the paid status and settles the flow.
		return m, nil
	}

	if m.state == stateChat {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case "esc":
		return m.handleEscape()
	}

	switch m.state {
	case stateChat, stateSettled:
		if msg.Type == tea.KeyEnter {
			return m.submitPrompt()
		}
		m.state = stateChat
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case stateSelectMovie:
		return m.handleListKey(msg, len(m.movies), func(m appModel) (tea.Model, tea.Cmd) {
			movie := m.movies[m.cursor]
			m.state = stateLoadingShows
			return m, tea.Batch(m.fetchShowsCmd(movie), m.spinner.Tick)
		})

	case stateSelectShow:
		return m.handleListKey(msg, len(m.shows), func(m appModel) (tea.Model, tea.Cmd) {
			m.show = m.shows[m.cursor]
			m.seatRow, m.seatCol = 0, 0
			m.selected = make(map[string]bool)
			m.state = stateSelectSeats
			return m, nil
		})

	case stateSelectSeats:
		return m.handleSeatKey(msg)

	case stateAwaitingPayment:
		if msg.String() == "p" && m.payment != nil {
			return m, m.confirmPaymentCmd(m.payment.Id)
		}
	}
	return m, nil
}

func (m appModel) handleEscape() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateBooking, stateAwaitingPayment:
		if m.cancel != nil {
			m.cancel()
		}
		return m, nil
	case stateSelectMovie, stateSelectShow, stateSelectSeats:
		m.say("Booking abandoned.")
		m.bookingIntent = false
		m.state = stateChat
		return m, nil
	}
	return m, nil
}

func (m appModel) handleListKey(msg tea.KeyMsg, n int, choose func(appModel) (tea.Model, tea.Cmd)) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "enter":
		if n > 0 {
			return choose(m)
		}
	}
	return m, nil
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.seatRow > 0 {
			m.seatRow--
		}
	case "down", "j":
		if m.seatRow < seatRows-1 {
			m.seatRow++
		}
	case "left", "h":
		if m.seatCol > 0 {
			m.seatCol--
		}
	case "right", "l":
		if m.seatCol < seatCols-1 {
			m.seatCol++
		}
	case " ":
		label := seatLabel(m.seatRow, m.seatCol)
		if m.selected[label] {
			delete(m.selected, label)
		} else {
			m.selected[label] = true
		}
	case "enter":
		if len(m.selected) > 0 {
			return m.startFlow()
		}
	}
	return m, nil
}

func (m appModel) submitPrompt() (tea.Model, tea.Cmd) {
	prompt := strings.TrimSpace(m.input.Value())
	if prompt == "" {
		return m, nil
	}
	m.input.Reset()
	m.transcript = append(m.transcript, chatLine{fromUser: true, text: prompt})

	intent := assistant.Route(prompt)
	switch intent.Kind {
	case assistant.IntentListMovies:
		m.state = stateLoadingMovies
		return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)

	case assistant.IntentShowTimings:
		m.pendingTimings = intent.MovieHint
		m.state = stateLoadingMovies
		return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)

	case assistant.IntentStartBooking:
		m.bookingIntent = true
		m.state = stateLoadingMovies
		return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)

	default:
		m.state = stateLoadingMovies
		return m, tea.Batch(m.askCmd(prompt), m.spinner.Tick)
	}
}

func (m appModel) handleMovies(msg moviesMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.failBack(msg.err)
	}
	m.movies = msg.movies

	if m.pendingTimings != "" {
		movie := matchMovie(m.movies, m.pendingTimings)
		return m, tea.Batch(m.fetchShowsCmd(movie), m.spinner.Tick)
	}

	if m.bookingIntent {
		m.bookingIntent = false
		m.cursor = 0
		m.state = stateSelectMovie
		return m, nil
	}

	m.say(renderMovieList(m.movies))
	m.state = stateChat
	return m, nil
}

// startFlow hands the collected selection to the orchestrator on a fresh
// goroutine. Events arrive over a per-flow channel so a superseded flow's
// messages are discarded by channel identity.
func (m appModel) startFlow() (tea.Model, tea.Cmd) {
	seats := make([]string, 0, len(m.selected))
	for r := 0; r < seatRows; r++ {
		for c := 0; c < seatCols; c++ {
			if label := seatLabel(r, c); m.selected[label] {
				seats = append(seats, label)
			}
		}
	}

	req := orchestrator.Request{
		MovieID: m.movie.Id,
		Hall:    m.show.hall,
		Time:    m.show.timing,
		Seats:   seats,
	}

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tea.Msg, 16)

	m.cancel = cancel
	m.events = events
	m.state = stateBooking
	m.booking = nil
	m.payment = nil

	go func() {
		result, err := m.orch.Run(ctx, req, func(e orchestrator.Event) {
			events <- flowEventMsg{events: events, event: e}
		})
		events <- flowDoneMsg{events: events, result: result, err: err}
		close(events)
	}()

	return m, tea.Batch(waitForEvent(events), m.spinner.Tick)
}

func waitForEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

func (m appModel) handleFlowEvent(e orchestrator.Event) (tea.Model, tea.Cmd) {
	if e.Booking != nil {
		m.booking = e.Booking
	}
	if e.Payment != nil {
		m.payment = e.Payment
	}

	switch e.State {
	case orchestrator.StateCreatingBooking, orchestrator.StateCreatingPayment:
		m.state = stateBooking
	case orchestrator.StateAwaitingPayment:
		m.state = stateAwaitingPayment
	}
	return m, tea.Batch(waitForEvent(m.events), m.spinner.Tick)
}

func (m appModel) handleFlowDone(msg flowDoneMsg) (tea.Model, tea.Cmd) {
	m.events = nil
	m.cancel = nil

	switch msg.result.Outcome {
	case orchestrator.OutcomeSettled:
		booking := msg.result.Booking
		amount := domain.TicketAmount(len(booking.Seats))
		m.say(fmt.Sprintf("Payment received. %s at %s (%s), seats %s, ₹%s. Enjoy the show!",
			m.movie.Title, booking.Time, booking.Hall,
			strings.Join(booking.Seats, ", "), amount.StringFixed(0)))
		m.state = stateSettled

	case orchestrator.OutcomeTimedOut:
		m.say("Payment was not completed in time. The booking was not confirmed.")
		m.state = stateChat

	case orchestrator.OutcomeCanceled:
		m.say("Booking canceled.")
		m.state = stateChat

	default:
		m.say(fmt.Sprintf("Booking failed: %v", msg.err))
		m.state = stateChat
	}
	return m, nil
}

func (m appModel) fetchMoviesCmd() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.client.Movies(context.Background(), nil)
		return moviesMsg{movies: movies, err: err}
	}
}

func (m appModel) fetchShowsCmd(movie api.Movie) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.Shows(context.Background(), movie.Id)
		return showsMsg{movie: movie, resp: resp, err: err}
	}
}

func (m appModel) askCmd(prompt string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.client.Ask(context.Background(), prompt)
		return assistantMsg{reply: reply, err: err}
	}
}

func (m appModel) confirmPaymentCmd(paymentID string) tea.Cmd {
	return func() tea.Msg {
		p, err := m.client.ConfirmPayment(context.Background(), paymentID)
		return confirmedMsg{payment: p, err: err}
	}
}

func (m *appModel) say(text string) {
	m.transcript = append(m.transcript, chatLine{text: text})
}

func (m appModel) failBack(err error) (tea.Model, tea.Cmd) {
	m.say(fmt.Sprintf("Sorry, something went wrong: %v", err))
	m.pendingTimings = ""
	m.bookingIntent = false
	m.state = stateChat
	return m, nil
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateLoadingMovies, stateLoadingShows, stateBooking, stateAwaitingPayment:
		return true
	}
	return false
}

func seatLabel(row, col int) string {
	return fmt.Sprintf("%c%d", seatRowBase+rune(row), col+1)
}

func flattenShows(shows []api.Show) []showOption {
	var opts []showOption
	for _, s := range shows {
		for _, t := range s.Timings {
			opts = append(opts, showOption{hall: s.Hall, timing: t})
		}
	}
	return opts
}

// matchMovie mirrors the server's title lookup: substring match either way,
// falling back to the first movie in the catalog.
func matchMovie(movies []api.Movie, hint string) api.Movie {
	needle := strings.ToLower(strings.TrimSpace(hint))
	for _, mv := range movies {
		title := strings.ToLower(mv.Title)
		if strings.Contains(title, needle) || strings.Contains(needle, title) {
			return mv
		}
	}
	return movies[0]
}
