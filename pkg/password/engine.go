package password

// RuleResult is the outcome of one rule.
type RuleResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Result is the outcome of one Validate call. Rules follow evaluation order.
type Result struct {
	Valid bool         `json:"valid"`
	Rules []RuleResult `json:"rules"`
}

// Get returns the result of the named rule.
func (r Result) Get(name string) (RuleResult, bool) {
	for _, rr := range r.Rules {
		if rr.Name == name {
			return rr, true
		}
	}
	return RuleResult{}, false
}

// Passed reports whether the named rule passed. Unknown names report false.
func (r Result) Passed(name string) bool {
	rr, ok := r.Get(name)
	return ok && rr.Passed
}

// Failed returns the failing rules in evaluation order.
func (r Result) Failed() []RuleResult {
	var failed []RuleResult
	for _, rr := range r.Rules {
		if !rr.Passed {
			failed = append(failed, rr)
		}
	}
	return failed
}

// Engine evaluates passwords against the fixed rule set.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	rules    []Rule
	messages Messages
}

// Option configures an Engine.
type Option func(*Engine)

// WithMessages sets the string table used for rule messages.
func WithMessages(m Messages) Option {
	return func(e *Engine) {
		e.messages = m
	}
}

// New creates an Engine with the default rule set and string table.
func New(opts ...Option) *Engine {
	e := &Engine{
		rules:    Rules(),
		messages: DefaultMessages(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate evaluates every rule; no rule is skipped when an earlier one fails.
func (e *Engine) Validate(password string) Result {
	res := Result{
		Valid: true,
		Rules: make([]RuleResult, 0, len(e.rules)),
	}
	for _, rule := range e.rules {
		passed := rule.Check(password)
		res.Rules = append(res.Rules, RuleResult{
			Name:    rule.Name,
			Passed:  passed,
			Message: e.messages.For(rule.Name),
		})
		if !passed {
			res.Valid = false
		}
	}
	return res
}

// Messages returns the engine's string table.
func (e *Engine) Messages() Messages {
	return e.messages
}

var defaultEngine = New()

// Validate evaluates password with the default engine.
func Validate(password string) Result {
	return defaultEngine.Validate(password)
}
