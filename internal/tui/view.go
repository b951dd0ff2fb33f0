package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinebook/api"
	"cinebook/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	userStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	botStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	modalStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("5")).
			Padding(1, 2)
)

func (m appModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CineBook"))
	b.WriteString("\n\n")
	b.WriteString(m.transcriptView())
	b.WriteString("\n")

	switch m.state {
	case stateChat, stateSettled:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter to send • ctrl+c to quit"))

	case stateLoadingMovies, stateLoadingShows:
		b.WriteString(m.spinner.View() + " thinking...")

	case stateSelectMovie:
		b.WriteString(m.movieListView())

	case stateSelectShow:
		b.WriteString(m.showListView())

	case stateSelectSeats:
		b.WriteString(m.seatGridView())

	case stateBooking:
		b.WriteString(m.spinner.View() + " creating your booking...")

	case stateAwaitingPayment:
		b.WriteString(m.paymentModalView())
	}

	b.WriteString("\n")
	return b.String()
}

func (m appModel) transcriptView() string {
	var b strings.Builder
	for _, line := range m.transcript {
		if line.fromUser {
			b.WriteString(userStyle.Render("you> ") + line.text)
		} else {
			b.WriteString(botStyle.Render("bot> ") + line.text)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) movieListView() string {
	var b strings.Builder
	b.WriteString("Pick a movie:\n")
	for i, mv := range m.movies {
		line := fmt.Sprintf("%s (%s, %s)", mv.Title, mv.Genre, mv.Duration)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("↑/↓ to move • enter to select • esc to cancel"))
	return b.String()
}

func (m appModel) showListView() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Showtimes for %s:\n", m.movie.Title))
	for i, s := range m.shows {
		line := fmt.Sprintf("%s at %s", s.hall, s.timing)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("↑/↓ to move • enter to select • esc to cancel"))
	return b.String()
}

func (m appModel) seatGridView() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Pick seats for %s, %s at %s:\n\n", m.movie.Title, m.show.hall, m.show.timing))
	b.WriteString(hintStyle.Render("        SCREEN") + "\n\n")

	for r := 0; r < seatRows; r++ {
		for c := 0; c < seatCols; c++ {
			label := seatLabel(r, c)
			cell := fmt.Sprintf("[%s]", label)
			switch {
			case r == m.seatRow && c == m.seatCol:
				cell = cursorStyle.Render(cell)
			case m.selected[label]:
				cell = selectedStyle.Render(cell)
			}
			b.WriteString(cell + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.selected) > 0 {
		amount := domain.TicketAmount(len(m.selected))
		b.WriteString(fmt.Sprintf("%d seat(s) selected, total ₹%s\n", len(m.selected), amount.StringFixed(0)))
	}
	b.WriteString(hintStyle.Render("arrows to move • space to toggle • enter to book • esc to cancel"))
	return b.String()
}

func (m appModel) paymentModalView() string {
	if m.payment == nil {
		return m.spinner.View() + " preparing payment..."
	}

	body := fmt.Sprintf("Amount due: ₹%d\n\nPay at:\n%s\n\n", m.payment.Amount, m.payment.PayUrl)
	body += hintStyle.Render("p to simulate payment • esc to cancel")

	return modalStyle.Render("Complete your payment\n\n"+body) + "\n" +
		m.spinner.View() + " waiting for payment..."
}

func renderMovieList(movies []api.Movie) string {
	parts := make([]string, 0, len(movies))
	for _, mv := range movies {
		parts = append(parts, fmt.Sprintf("%s (%s, %s)", mv.Title, mv.Genre, mv.Duration))
	}
	return "Now showing: " + strings.Join(parts, "; ")
}

func renderTimings(movie api.Movie, shows []api.Show) string {
	if len(shows) == 0 {
		return fmt.Sprintf("No shows found for %s.", movie.Title)
	}
	parts := make([]string, 0, len(shows))
	for _, s := range shows {
		parts = append(parts, fmt.Sprintf("%s at %s", s.Hall, strings.Join(s.Timings, ", ")))
	}
	return fmt.Sprintf("Timings for %s: %s.", movie.Title, strings.Join(parts, "; "))
}
