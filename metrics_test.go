/*
© 2025–present tlocal contributors
ISC License
*/

package tlocal

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	m.incResize()
	m.addExpunged(3)
	m.setActiveMaps(5)
	m.incInherited()
}

func TestNewMetricsRegisters(t *testing.T) {
	var reg = prometheus.NewRegistry()
	var m = NewMetrics(reg)
	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}

	var families, err = reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	if len(families) != 4 {
		t.Fatalf("got %d registered metric families, want 4", len(families))
	}
}

func TestSetMetricsActivatesInstrumentation(t *testing.T) {
	var reg = prometheus.NewRegistry()
	var m = NewMetrics(reg)
	SetMetrics(m)
	defer SetMetrics(nil)

	var k = newHandleKey()
	var pm = newPerThreadMap(k, 0)
	pm.remove(k)
}

func TestMetricsTrackResizeAndActiveMaps(t *testing.T) {
	var reg = prometheus.NewRegistry()
	var m = NewMetrics(reg)
	SetMetrics(m)
	defer SetMetrics(nil)
	defer defaultRegistry.Detach()

	// the gauge reports the registry's total map count, which includes
	// maps left behind by earlier tests' goroutines
	defaultRegistry.mu.RLock()
	var before = float64(len(defaultRegistry.maps))
	defaultRegistry.mu.RUnlock()

	// initialCapacity is 16 and threshold(16) is 10: the 10th distinct
	// binding in one thread's map brings size to threshold and forces a
	// resize to 32 (threshold 21), so the 11th does not resize again.
	for i := 0; i < 11; i++ {
		NewHandle[int]().Set(i)
	}

	if got := testutil.ToFloat64(m.resizes); got != 1 {
		t.Fatalf("resizes_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.activeMaps); got != before+1 {
		t.Fatalf("active_maps = %v, want %v", got, before+1)
	}

	defaultRegistry.Detach()
	if got := testutil.ToFloat64(m.activeMaps); got != before {
		t.Fatalf("active_maps after Detach = %v, want %v", got, before)
	}
}
