package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterSessionGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	n := 3
	if err := RegisterSessionGauge(reg, func() int { return n }); err != nil {
		t.Fatalf("register: %v", err)
	}

	if got := testutil.CollectAndCount(reg, "storefront_sessions_stored"); got != 1 {
		t.Fatalf("expected 1 series, got %d", got)
	}

	if err := RegisterSessionGauge(reg, func() int { return n }); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestLoginAttemptsTotal(t *testing.T) {
	before := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues(LoginLockedOut))
	LoginAttemptsTotal.WithLabelValues(LoginLockedOut).Inc()
	if got := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues(LoginLockedOut)); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}
