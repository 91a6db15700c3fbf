package domain

import "fmt"

type Verdict int

const (
	VerdictPass Verdict = iota
	VerdictFail
	VerdictSkip
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictFail:
		return "fail"
	case VerdictSkip:
		return "skip"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Result is the outcome of a single check. Message is empty on pass,
// the diagnostic on fail and the reason on skip.
type Result struct {
	Check   string  `json:"check"`
	Verdict Verdict `json:"verdict"`
	Message string  `json:"message,omitempty"`
	Err     error   `json:"-"`
}

func Pass(check string) Result {
	return Result{Check: check, Verdict: VerdictPass}
}

func Fail(check string, err error) Result {
	return Result{Check: check, Verdict: VerdictFail, Message: err.Error(), Err: err}
}

func Skip(check, reason string, err error) Result {
	return Result{Check: check, Verdict: VerdictSkip, Message: reason, Err: err}
}

func (r Result) String() string {
	label := map[Verdict]string{
		VerdictPass: "PASS",
		VerdictFail: "FAIL",
		VerdictSkip: "SKIP",
	}[r.Verdict]
	if r.Message == "" {
		return fmt.Sprintf("%s %s", label, r.Check)
	}
	return fmt.Sprintf("%s %s: %s", label, r.Check, r.Message)
}
