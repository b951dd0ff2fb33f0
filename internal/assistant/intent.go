package assistant

import "strings"

type IntentKind int

const (
	IntentFreeform IntentKind = iota
	IntentListMovies
	IntentShowTimings
	IntentStartBooking
)

// Intent is the routed meaning of a chat message. MovieHint is set only for
// IntentShowTimings; Text always carries the original message.
type Intent struct {
	Kind      IntentKind
	MovieHint string
	Text      string
}

const (
	triggerListMovies  = "show me movies"
	triggerListMovies2 = "list movies"
	triggerTimings     = "show me timings for"
	triggerBooking     = "book"
	triggerBookingLong = "i want to book"
)

// Route matches text against the literal chat triggers, case-insensitively,
// in fixed priority order: list, timings, booking, freeform. There is no
// fuzzy matching; anything unrecognized is freeform.
func Route(text string) Intent {
	lower := strings.ToLower(text)

	if strings.Contains(lower, triggerListMovies) || strings.Contains(lower, triggerListMovies2) {
		return Intent{Kind: IntentListMovies, Text: text}
	}

	if strings.Contains(lower, triggerTimings) {
		return Intent{Kind: IntentShowTimings, MovieHint: movieHint(text), Text: text}
	}

	if strings.Contains(lower, triggerBooking) || strings.Contains(lower, triggerBookingLong) {
		return Intent{Kind: IntentStartBooking, Text: text}
	}

	return Intent{Kind: IntentFreeform, Text: text}
}

// movieHint extracts everything after the last "for", preserving the
// original casing of the title.
func movieHint(text string) string {
	idx := strings.LastIndex(strings.ToLower(text), "for")
	if idx == -1 {
		return ""
	}

	return strings.TrimSpace(text[idx+len("for"):])
}
