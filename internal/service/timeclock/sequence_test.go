package timeclock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ponto/backend/internal/service/timeclock"
)

func TestNextExpectedCycle(t *testing.T) {
	want := []timeclock.PunchType{
		timeclock.Entry,
		timeclock.LunchStart,
		timeclock.LunchEnd,
		timeclock.Exit,
	}

	// Starting from no punches, repeatedly accepting the expected type must
	// walk the same four-step cycle forever.
	last := timeclock.None
	for cycle := 0; cycle < 3; cycle++ {
		for _, expected := range want {
			got := timeclock.NextExpected(last)
			assert.Equal(t, expected, got, "cycle %d after %q", cycle, last)
			assert.NoError(t, timeclock.Validate(got, last, false))
			last = got
		}
	}
}

func TestValidateRejectsOutOfOrder(t *testing.T) {
	all := []timeclock.PunchType{
		timeclock.Entry,
		timeclock.LunchStart,
		timeclock.LunchEnd,
		timeclock.Exit,
	}

	for _, last := range all {
		expected := timeclock.NextExpected(last)
		for _, proposed := range all {
			err := timeclock.Validate(proposed, last, false)
			if proposed == expected {
				assert.NoError(t, err, "last=%q proposed=%q", last, proposed)
				continue
			}

			assert.Error(t, err, "last=%q proposed=%q", last, proposed)
			var seqErr *timeclock.SequenceError
			if assert.ErrorAs(t, err, &seqErr) {
				assert.Equal(t, expected, seqErr.Expected)
			}
		}
	}
}

func TestValidateDailyEntryGuard(t *testing.T) {
	// exit -> entry is the correct transition, but a second entry on the
	// same calendar day is still refused.
	err := timeclock.Validate(timeclock.Entry, timeclock.Exit, true)
	assert.Error(t, err)

	var dupErr *timeclock.DuplicateEntryError
	assert.ErrorAs(t, err, &dupErr)

	// Without the guard the same transition passes.
	assert.NoError(t, timeclock.Validate(timeclock.Entry, timeclock.Exit, false))
}

func TestValidateFirstPunchMustBeEntry(t *testing.T) {
	for _, proposed := range []timeclock.PunchType{timeclock.LunchStart, timeclock.LunchEnd, timeclock.Exit} {
		assert.Error(t, timeclock.Validate(proposed, timeclock.None, false))
	}
	assert.NoError(t, timeclock.Validate(timeclock.Entry, timeclock.None, false))
}

func TestValidateUnknownType(t *testing.T) {
	assert.Error(t, timeclock.Validate(timeclock.PunchType("pausa"), timeclock.Entry, false))
	assert.False(t, timeclock.Valid(timeclock.PunchType("pausa")))
	assert.False(t, timeclock.Valid(timeclock.None))
}
