// Package timeclock holds the punch-sequencing rules and the worked-hours
// arithmetic. Everything here is pure: callers fetch the records and pass
// them in.
package timeclock

import "fmt"

// PunchType is the closed set of punch kinds. The wire values are the ones
// the records are stored with.
type PunchType string

const (
	None       PunchType = ""
	Entry      PunchType = "entrada"
	LunchStart PunchType = "inicio_almoco"
	LunchEnd   PunchType = "fim_almoco"
	Exit       PunchType = "saida"
)

// nextExpected is the single directed cycle through the four punch states,
// with None feeding into Entry.
var nextExpected = map[PunchType]PunchType{
	None:       Entry,
	Entry:      LunchStart,
	LunchStart: LunchEnd,
	LunchEnd:   Exit,
	Exit:       Entry,
}

var displayNames = map[PunchType]string{
	Entry:      "entrada",
	LunchStart: "início de almoço",
	LunchEnd:   "fim de almoço",
	Exit:       "saída",
}

// Valid reports whether t is one of the four punch types.
func Valid(t PunchType) bool {
	switch t {
	case Entry, LunchStart, LunchEnd, Exit:
		return true
	}
	return false
}

// NextExpected returns the single valid punch type following last. A zero
// last means the worker has no punches yet.
func NextExpected(last PunchType) PunchType {
	return nextExpected[last]
}

// SequenceError reports a punch submitted out of order.
type SequenceError struct {
	Proposed PunchType
	Expected PunchType
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("operação inválida. a próxima batida esperada é %q", displayNames[e.Expected])
}

// DuplicateEntryError reports a second entry punch within one calendar day.
type DuplicateEntryError struct{}

func (e *DuplicateEntryError) Error() string {
	return "entrada já registrada hoje. não é possível registrar outra entrada no mesmo dia"
}

// Validate checks a proposed punch against the last recorded one. The daily
// entry guard is independent of the sequence check: an Entry is refused when
// one was already recorded today even if the cycle position allows it.
func Validate(proposed, last PunchType, alreadyEnteredToday bool) error {
	if !Valid(proposed) {
		return fmt.Errorf("tipo de batida desconhecido: %q", string(proposed))
	}

	if proposed == Entry && alreadyEnteredToday {
		return &DuplicateEntryError{}
	}

	if expected := NextExpected(last); proposed != expected {
		return &SequenceError{Proposed: proposed, Expected: expected}
	}

	return nil
}
