package booking

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

var ErrUnknownState = errs.New("unknown state")

// State selects bookings for listing. It is a query-time filter and is never
// persisted. The set of implementations is closed: every variant must say how
// it narrows a listing, so there is no fallback for an unmatched state.
type State interface {
	Name() string
	Window(now time.Time) Window
	state()
}

type (
	allState      struct{}
	currentState  struct{}
	pastState     struct{}
	futureState   struct{}
	waitingState  struct{}
	rejectedState struct{}
)

var (
	StateAll      State = allState{}
	StateCurrent  State = currentState{}
	StatePast     State = pastState{}
	StateFuture   State = futureState{}
	StateWaiting  State = waitingState{}
	StateRejected State = rejectedState{}
)

var states = []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

// ParseState maps a query value to a State. An empty value means ALL.
func ParseState(raw string) (State, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if name == "" {
		return StateAll, nil
	}
	for _, s := range states {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errs.Wrap(ErrUnknownState, raw)
}

func (allState) Name() string { return "ALL" }

func (allState) Window(time.Time) Window {
	return Window{}
}

func (currentState) Name() string { return "CURRENT" }

// start <= now <= end
func (currentState) Window(now time.Time) Window {
	return Window{StartUntil: &now, EndFrom: &now}
}

func (pastState) Name() string { return "PAST" }

// end <= now
func (pastState) Window(now time.Time) Window {
	return Window{EndUntil: &now}
}

func (futureState) Name() string { return "FUTURE" }

// start >= now, for booker and owner listings alike
func (futureState) Window(now time.Time) Window {
	return Window{StartFrom: &now}
}

func (waitingState) Name() string { return "WAITING" }

func (waitingState) Window(time.Time) Window {
	s := StatusWaiting
	return Window{Status: &s}
}

func (rejectedState) Name() string { return "REJECTED" }

func (rejectedState) Window(time.Time) Window {
	s := StatusRejected
	return Window{Status: &s}
}

func (allState) state()      {}
func (currentState) state()  {}
func (pastState) state()     {}
func (futureState) state()   {}
func (waitingState) state()  {}
func (rejectedState) state() {}

// Window holds inclusive bounds; a nil field leaves that dimension open.
// The store translates it into a single parameterized query.
type Window struct {
	Status     *Status
	StartFrom  *time.Time
	StartUntil *time.Time
	EndFrom    *time.Time
	EndUntil   *time.Time
}
