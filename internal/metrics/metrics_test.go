package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	r := New()
	r.Converted("rv2coe", "elliptic")
	r.Converted("rv2coe", "elliptic")
	r.Converted("rv2coe", "circular-inclined")
	r.Failed("coe2rv", "invalid-elements")
	if got := testutil.ToFloat64(r.conversions.WithLabelValues("rv2coe", "elliptic")); got != 2 {
		t.Fatalf("elliptic conversions = %f, want 2", got)
	}
	if got := testutil.ToFloat64(r.conversions.WithLabelValues("rv2coe", "circular-inclined")); got != 1 {
		t.Fatalf("circular conversions = %f, want 1", got)
	}
	if got := testutil.ToFloat64(r.failures.WithLabelValues("coe2rv", "invalid-elements")); got != 1 {
		t.Fatalf("failures = %f, want 1", got)
	}
	if n := testutil.CollectAndCount(r.conversions); n != 2 {
		t.Fatalf("expected 2 conversion series, got %d", n)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.Converted("coe2rv", "hyperbolic")
	r.ObserveBatch("coe2rv", time.Now())
	path := filepath.Join(t.TempDir(), "kepler.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`kepler_conversions_total{class="hyperbolic",direction="coe2rv"} 1`,
		`kepler_batch_duration_seconds_count{direction="coe2rv"} 1`,
	} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("missing %q in\n%s", want, data)
		}
	}
}
