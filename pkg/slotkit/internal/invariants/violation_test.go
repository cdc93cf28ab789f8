package invariants_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calvinalkan/slotkit/pkg/slotkit/internal/invariants"
)

func Test_Newf_Formats_Message_When_Args_Given(t *testing.T) {
	t.Parallel()

	v := invariants.Newf("Op", nil, "slot %d of %d", 3, 4)

	assert.Equal(t, "slotkit: Op: slot 3 of 4", v.Error(), "message")
	assert.NoError(t, v.Unwrap(), "no cause")
}

func Test_Newf_Wraps_Cause_When_Given(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	v := invariants.Newf("Op", cause, "failed")

	assert.ErrorIs(t, v, cause, "cause should be reachable")

	var target *invariants.Violation
	assert.ErrorAs(t, error(v), &target, "errors.As to *Violation")
}
