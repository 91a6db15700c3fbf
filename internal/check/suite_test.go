package check

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwcheck/internal/config"
	"hwcheck/internal/domain"
	"hwcheck/internal/logger"
)

type stubCheck struct {
	name   string
	result domain.Result
	ran    *[]string
}

func (s stubCheck) Name() string { return s.name }

func (s stubCheck) Run(context.Context) domain.Result {
	*s.ran = append(*s.ran, s.name)
	return s.result
}

func TestSuiteRunsInOrder(t *testing.T) {
	var ran []string
	suite := NewSuite(logger.Nop(),
		stubCheck{name: "a", result: domain.Pass("a"), ran: &ran},
		stubCheck{name: "b", result: domain.Result{Verdict: domain.VerdictFail, Message: "boom"}, ran: &ran},
	)
	suite.Register(stubCheck{name: "c", result: domain.Skip("c", "absent", nil), ran: &ran})

	results := suite.Run(context.Background())

	assert.Equal(t, []string{"a", "b", "c"}, ran)
	require.Len(t, results, 3)
	assert.Equal(t, "b", results[1].Check)
	assert.Equal(t, Summary{Passed: 1, Failed: 1, Skipped: 1}, Summarize(results))
	assert.False(t, Summarize(results).OK())
}

func TestSuiteStopsWhenCancelled(t *testing.T) {
	var ran []string
	suite := NewSuite(logger.Nop(), stubCheck{name: "a", result: domain.Pass("a"), ran: &ran})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, suite.Run(ctx))
	assert.Empty(t, ran)
}

type cancellingCheck struct {
	cancel context.CancelFunc
}

func (cancellingCheck) Name() string { return "network" }

func (c cancellingCheck) Run(ctx context.Context) domain.Result {
	c.cancel()
	<-ctx.Done()
	return domain.Fail("network", newError(ErrConnectivityFailure, "no network connectivity to 8.8.8.8:53: %v", ctx.Err()))
}

func TestSuiteDropsResultInterruptedMidCheck(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ran []string
	suite := NewSuite(logger.Nop(),
		stubCheck{name: "a", result: domain.Pass("a"), ran: &ran},
		cancellingCheck{cancel: cancel},
		stubCheck{name: "c", result: domain.Pass("c"), ran: &ran},
	)

	results := suite.Run(ctx)

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Check)
	assert.Equal(t, []string{"a"}, ran)
	assert.True(t, Summarize(results).OK())
}

func TestSummaryOK(t *testing.T) {
	assert.True(t, Summarize(nil).OK())
	assert.True(t, Summarize([]domain.Result{domain.Pass("cpu"), domain.Skip("battery", "none", nil)}).OK())
}

func TestDefaultSuiteOrder(t *testing.T) {
	suite := NewDefaultSuite(config.Default(), logger.Nop())

	var names []string
	for _, c := range suite.Checks() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{NameCPU, NameMemory, NameDisk, NameNetwork, NameSystem, NameBattery}, names)
}
