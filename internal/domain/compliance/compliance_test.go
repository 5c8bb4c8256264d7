package compliance_test

import (
	"testing"

	"github.com/ecotrack/govdash/internal/domain/compliance"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		limit   float64
		want    compliance.Status
	}{
		{"over limit", 850, 800, compliance.StatusExceeded},
		{"well over limit", 450, 400, compliance.StatusExceeded},
		{"close to limit", 780, 800, compliance.StatusApproaching},
		{"ninety six percent", 480, 500, compliance.StatusApproaching},
		{"exactly at boundary", 425, 500, compliance.StatusApproaching},
		{"exactly at limit", 800, 800, compliance.StatusApproaching},
		{"below boundary", 424, 500, compliance.StatusCompliant},
		{"comfortably under", 400, 500, compliance.StatusCompliant},
		{"no emissions", 0, 500, compliance.StatusCompliant},
		{"zero limit with emissions", 10, 0, compliance.StatusExceeded},
		{"zero limit without emissions", 0, 0, compliance.StatusApproaching},
		{"negative limit", 0, -5, compliance.StatusExceeded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, compliance.Classify(tc.current, tc.limit))
		})
	}
}

func TestClassify_ExceededIffOverLimit(t *testing.T) {
	limits := []float64{1, 100, 400, 800, 1200}
	for _, limit := range limits {
		for current := 0.0; current <= limit*1.5; current += limit / 40 {
			status := compliance.Classify(current, limit)
			require.Equal(t, current > limit, status == compliance.StatusExceeded, "current=%v limit=%v", current, limit)
			if current <= limit {
				require.Equal(t, current/limit >= compliance.ApproachingRatio, status == compliance.StatusApproaching, "current=%v limit=%v", current, limit)
			}
		}
	}
}

func TestRatio(t *testing.T) {
	require.InDelta(t, 0.975, compliance.Ratio(780, 800), 1e-9)
	require.Equal(t, 1.0, compliance.Ratio(5, 0))
}

func TestStatusLabel(t *testing.T) {
	require.Equal(t, "Approaching Limit", compliance.StatusApproaching.Label())
	require.Equal(t, "Exceeded", compliance.StatusExceeded.Label())
	require.Equal(t, "Compliant", compliance.StatusCompliant.Label())
}

func TestParseFilter(t *testing.T) {
	f, err := compliance.ParseFilter("")
	require.NoError(t, err)
	require.Equal(t, compliance.FilterAll, f)

	f, err = compliance.ParseFilter("EXCEEDED")
	require.NoError(t, err)
	require.True(t, f.Matches(compliance.StatusExceeded))
	require.False(t, f.Matches(compliance.StatusCompliant))
	require.Equal(t, "exceeded", f.String())

	f, err = compliance.ParseFilter("all")
	require.NoError(t, err)
	require.True(t, f.Matches(compliance.StatusApproaching))

	_, err = compliance.ParseFilter("pending")
	require.ErrorIs(t, err, compliance.ErrUnknownStatus)
}
