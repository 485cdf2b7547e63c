package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestAggregator_RegisterCheck tests single-check lookup and execution.
func TestAggregator_RegisterCheck(t *testing.T) {
	agg := NewAggregator()
	agg.Register(NewCheckerFunc("a", func(context.Context) Result {
		return Healthy("fine")
	}))

	result, err := agg.Check(context.Background(), "a")
	if err != nil {
		t.Fatalf("Check() = %v", err)
	}
	if result.Status != StatusHealthy {
		t.Errorf("Check() = %+v", result)
	}
	if result.Duration <= 0 {
		t.Error("Check() did not record a duration")
	}

	if _, err := agg.Check(context.Background(), "missing"); !errors.Is(err, ErrCheckerNotFound) {
		t.Errorf("Check(missing) = %v, want %v", err, ErrCheckerNotFound)
	}
}

// TestAggregator_CheckAll tests parallel execution of all checks.
func TestAggregator_CheckAll(t *testing.T) {
	agg := NewAggregator()
	agg.Register(NewCheckerFunc("a", func(context.Context) Result { return Healthy("ok") }))
	agg.Register(NewCheckerFunc("b", func(context.Context) Result { return Degraded("slow") }))
	agg.Register(NewCheckerFunc("c", func(context.Context) Result {
		return Unhealthy("down", errors.New("refused"))
	}))

	results := agg.CheckAll(context.Background())
	if len(results) != 3 {
		t.Fatalf("CheckAll() returned %d results, want 3", len(results))
	}
	if results["a"].Status != StatusHealthy || results["b"].Status != StatusDegraded || results["c"].Status != StatusUnhealthy {
		t.Errorf("CheckAll() = %+v", results)
	}
}

// TestAggregator_OverallStatus tests status collapsing.
func TestAggregator_OverallStatus(t *testing.T) {
	agg := NewAggregator()

	tests := []struct {
		name    string
		results map[string]Result
		want    Status
	}{
		{"empty", map[string]Result{}, StatusHealthy},
		{"all healthy", map[string]Result{"a": Healthy("")}, StatusHealthy},
		{"one degraded", map[string]Result{"a": Healthy(""), "b": Degraded("")}, StatusDegraded},
		{"one unhealthy", map[string]Result{"a": Degraded(""), "b": Unhealthy("", nil)}, StatusUnhealthy},
		{"one errored", map[string]Result{"a": Healthy(""), "b": Errored("", nil)}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := agg.OverallStatus(tt.results); got != tt.want {
				t.Errorf("OverallStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestAggregator_Timeout tests that a hung check reports a timeout instead of
// blocking the whole run.
func TestAggregator_Timeout(t *testing.T) {
	agg := NewAggregator(AggregatorConfig{Timeout: 50 * time.Millisecond})
	agg.Register(NewCheckerFunc("hung", func(ctx context.Context) Result {
		<-ctx.Done()
		time.Sleep(time.Second)
		return Healthy("too late")
	}))

	results := agg.CheckAll(context.Background())
	got := results["hung"]
	if got.Status != StatusUnhealthy {
		t.Errorf("hung check = %+v, want unhealthy", got)
	}
	if !errors.Is(got.Error, ErrCheckTimeout) {
		t.Errorf("hung check error = %v, want %v", got.Error, ErrCheckTimeout)
	}
}

// TestAggregator_Unregister tests checker removal.
func TestAggregator_Unregister(t *testing.T) {
	agg := NewAggregator()
	agg.Register(NewCheckerFunc("a", func(context.Context) Result { return Healthy("") }))
	agg.Register(NewCheckerFunc("b", func(context.Context) Result { return Healthy("") }))

	agg.Unregister("a")

	names := agg.CheckerNames()
	if len(names) != 1 || names[0] != "b" {
		t.Errorf("CheckerNames() = %v, want [b]", names)
	}
	if _, err := agg.Check(context.Background(), "a"); !errors.Is(err, ErrCheckerNotFound) {
		t.Errorf("Check(removed) = %v, want %v", err, ErrCheckerNotFound)
	}
}

// TestAggregator_RegistrationOrder tests that CheckerNames preserves
// registration order across replacement.
func TestAggregator_RegistrationOrder(t *testing.T) {
	agg := NewAggregator()
	for _, name := range []string{"c", "a", "b"} {
		agg.Register(NewCheckerFunc(name, func(context.Context) Result { return Healthy("") }))
	}
	// Re-registering keeps the original position.
	agg.Register(NewCheckerFunc("a", func(context.Context) Result { return Degraded("") }))

	names := agg.CheckerNames()
	want := []string{"c", "a", "b"}
	for i, n := range names {
		if n != want[i] {
			t.Fatalf("CheckerNames() = %v, want %v", names, want)
		}
	}
}

// TestAggregator_AsChecker tests nesting one aggregator inside another.
func TestAggregator_AsChecker(t *testing.T) {
	inner := NewAggregator()
	inner.Register(NewCheckerFunc("cache", func(context.Context) Result { return Healthy("ok") }))

	outer := NewAggregator()
	outer.Register(inner.Checker())

	results := outer.CheckAll(context.Background())
	got, ok := results["aggregate"]
	if !ok {
		t.Fatalf("nested aggregate missing from results: %v", results)
	}
	if got.Status != StatusHealthy {
		t.Errorf("nested aggregate = %+v", got)
	}
	if _, ok := got.Details["cache"]; !ok {
		t.Errorf("nested aggregate lost per-check details: %+v", got.Details)
	}
}
