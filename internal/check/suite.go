package check

import (
	"context"

	"hwcheck/internal/domain"
	"hwcheck/internal/logger"
)

// Suite runs its checks one after another in registration order.
type Suite struct {
	log    logger.Logger
	checks []Check
}

func NewSuite(log logger.Logger, checks ...Check) *Suite {
	return &Suite{log: log, checks: checks}
}

func (s *Suite) Register(c Check) {
	s.checks = append(s.checks, c)
}

func (s *Suite) Checks() []Check {
	return s.checks
}

// Run stops early once ctx is cancelled. A check that was running when the
// cancellation arrived gets no result, nor do the checks after it.
func (s *Suite) Run(ctx context.Context) []domain.Result {
	results := make([]domain.Result, 0, len(s.checks))

	for _, c := range s.checks {
		if err := ctx.Err(); err != nil {
			s.log.Warn("suite interrupted", "pending", c.Name(), "error", err)
			break
		}

		res := c.Run(ctx)
		if err := ctx.Err(); err != nil {
			s.log.Warn("suite interrupted", "check", c.Name(), "error", err)
			break
		}
		res.Check = c.Name()
		s.logResult(res)
		results = append(results, res)
	}

	return results
}

func (s *Suite) logResult(res domain.Result) {
	switch res.Verdict {
	case domain.VerdictFail:
		s.log.Warn("check failed", "check", res.Check, "message", res.Message)
	case domain.VerdictSkip:
		s.log.Info("check skipped", "check", res.Check, "reason", res.Message)
	default:
		s.log.Info("check passed", "check", res.Check)
	}
}

type Summary struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

func Summarize(results []domain.Result) Summary {
	var sum Summary
	for _, r := range results {
		switch r.Verdict {
		case domain.VerdictPass:
			sum.Passed++
		case domain.VerdictFail:
			sum.Failed++
		case domain.VerdictSkip:
			sum.Skipped++
		}
	}
	return sum
}

func (s Summary) OK() bool {
	return s.Failed == 0
}
