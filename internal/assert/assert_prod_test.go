//go:build !debug

package assert

import (
	"testing"

	testify "github.com/stretchr/testify/assert"
)

func TestInvariant_NoOpInProduction(t *testing.T) {
	t.Parallel()

	testify.NotPanics(t, func() {
		Invariant(false, "ignored")
		Invariantf(false, "ignored %d", 1)
	})
}
