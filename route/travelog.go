package route

import (
	"fmt"
	"strings"
)

// EntryKind tags a travelog line.
type EntryKind int

// Travelog entry kinds.
const (
	EntryInfo        EntryKind = iota // free text such as zone headers
	EntryBanner                       // *** ACTION ***
	EntryEvent                        // EVENT:
	EntryEncounter                    // ENCOUNTER:
	EntryRandomEvent                  // RANDOM EVENT:
	EntryAvoided                      // AVOIDED:
	EntryRiver                        // RIVER:
	EntryState                        // --- counter dump
)

var entryPrefixes = [...]string{
	EntryEvent:       "EVENT: ",
	EntryEncounter:   "ENCOUNTER: ",
	EntryRandomEvent: "RANDOM EVENT: ",
	EntryAvoided:     "AVOIDED: ",
	EntryRiver:       "RIVER: ",
}

// Entry is one travelog line. Text excludes the kind prefix.
type Entry struct {
	Kind EntryKind
	Text string
}

func (e Entry) String() string {
	switch e.Kind {
	case EntryBanner:
		return "*** " + e.Text + " ***"
	case EntryInfo, EntryState:
		return e.Text
	}
	if int(e.Kind) < len(entryPrefixes) {
		return entryPrefixes[e.Kind] + e.Text
	}
	return e.Text
}

// Travelog is the append-only narrative of a route.
type Travelog []Entry

// String renders one entry per line.
func (l Travelog) String() string {
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.String())
	}
	return b.String()
}

// Count returns the number of entries of kind k.
func (l Travelog) Count(k EntryKind) int {
	var n int
	for _, e := range l {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func (r *Route) logf(k EntryKind, format string, args ...any) {
	r.Log = append(r.Log, Entry{Kind: k, Text: fmt.Sprintf(format, args...)})
}

func (r *Route) banner(format string, args ...any) {
	r.logf(EntryBanner, format, args...)
}

func (r *Route) traceCounters() {
	if !r.sim.traceState {
		return
	}
	r.logf(EntryState, "--- %x %x %x %x %x %g",
		r.StepSeed, r.StepCounter, r.BattleSeed, r.BattleCounter, r.Threat, r.Cost)
}
