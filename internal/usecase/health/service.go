// Package health reports whether the service and its search engine are usable.
package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates the search engine is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names.
const (
	ComponentApp          = "app"
	ComponentSearchEngine = "search_engine"
)

// DefaultTimeout bounds a single engine ping.
const DefaultTimeout = 2 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
	Err    error // first failure, nil when healthy
}

// Service coordinates health checks.
type Service struct {
	engine  EnginePinger
	timeout time.Duration
}

// New creates a Service.
func New(engine EnginePinger) *Service {
	return &Service{engine: engine, timeout: DefaultTimeout}
}

// WithTimeout overrides the engine ping timeout.
func (s *Service) WithTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Check pings the engine. The app itself is healthy whenever it can answer.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{ComponentApp: CheckOK}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.engine.Ping(ctx); err != nil {
		checks[ComponentSearchEngine] = CheckError
		return Report{Status: Unhealthy, Checks: checks, Err: err}
	}

	checks[ComponentSearchEngine] = CheckOK
	return Report{Status: Healthy, Checks: checks}
}
