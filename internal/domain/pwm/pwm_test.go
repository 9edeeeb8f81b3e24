package pwm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestComputeCCR_Clamping checks both ends of the clamped input range.
func TestComputeCCR_Clamping(t *testing.T) {
	t.Parallel()

	for _, hr := range []int{0, -1, -200, -1 << 40} {
		require.Zero(t, ComputeCCR(hr), "hr=%d", hr)
	}

	for _, hr := range []int{200, 201, 350, 1 << 40} {
		require.Equal(t, 1000, ComputeCCR(hr), "hr=%d", hr)
	}
}

// TestComputeCCR_Scaling checks representative values inside the range.
func TestComputeCCR_Scaling(t *testing.T) {
	t.Parallel()

	cases := map[int]int{
		1:   5,
		60:  300,
		72:  360,
		100: 500,
		150: 750,
		199: 995,
	}

	for hr, want := range cases {
		require.Equal(t, want, ComputeCCR(hr), "hr=%d", hr)
	}
}

// TestComputeCCR_Monotonic verifies the mapping never decreases over the input range.
func TestComputeCCR_Monotonic(t *testing.T) {
	t.Parallel()

	prev := ComputeCCR(0)
	for hr := 1; hr <= 200; hr++ {
		got := ComputeCCR(hr)
		require.GreaterOrEqual(t, got, prev, "hr=%d", hr)
		require.LessOrEqual(t, got, 1000)

		prev = got
	}
}

// TestDutyPercent converts register values into percentages.
func TestDutyPercent(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0.0, DutyPercent(0), 1e-6)
	require.InDelta(t, 50.0, DutyPercent(500), 1e-6)
	require.InDelta(t, 99.5, DutyPercent(995), 1e-6)
	require.InDelta(t, 100.0, DutyPercent(1000), 1e-6)
}
