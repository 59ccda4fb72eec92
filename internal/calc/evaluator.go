// Package calc evaluates calculator expressions over a closed grammar:
// numbers, the constant/unit namespace, an allow-list of math functions,
// + - * / ** (or ^), parentheses and signs. Nothing else is reachable.
package calc

import (
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"physcalc/internal/constants"
)

// DefaultCacheTTL is how long a compiled expression stays cached.
const DefaultCacheTTL = 10 * time.Minute

// Program is a parsed expression ready to evaluate.
type Program struct {
	root node
}

// Evaluator compiles and evaluates expressions against one namespace.
// It keeps no evaluation state, so a single Evaluator can serve many
// sessions.
type Evaluator struct {
	env   *env
	cache *cache.Cache
}

// Option configures an Evaluator.
type Option func(*evaluatorOptions)

type evaluatorOptions struct {
	cacheTTL time.Duration
}

// WithCacheTTL sets how long compiled expressions are kept. Zero disables
// the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *evaluatorOptions) { o.cacheTTL = ttl }
}

// NewEvaluator returns an evaluator whose identifiers resolve against table
// and the built-in function allow-list.
func NewEvaluator(table *constants.Table, opts ...Option) *Evaluator {
	o := evaluatorOptions{cacheTTL: DefaultCacheTTL}
	for _, opt := range opts {
		opt(&o)
	}

	ev := &Evaluator{env: &env{table: table, funcs: builtins}}
	if o.cacheTTL > 0 {
		ev.cache = cache.New(o.cacheTTL, 2*o.cacheTTL)
	}
	return ev
}

// Compile rewrites and parses raw without evaluating it.
func (ev *Evaluator) Compile(raw string) (*Program, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &Error{Kind: EmptyInput, Pos: -1}
	}
	src := Rewrite(raw)
	if ev.cache != nil {
		if p, ok := ev.cache.Get(src); ok {
			return p.(*Program), nil
		}
	}

	root, err := parse(src)
	if err != nil {
		return nil, err
	}
	p := &Program{root: root}
	if ev.cache != nil {
		ev.cache.Set(src, p, cache.DefaultExpiration)
	}
	return p, nil
}

// Run evaluates a compiled program.
func (ev *Evaluator) Run(p *Program) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, newError(SyntaxError, -1, "%v", r)
		}
	}()
	return p.root.eval(ev.env)
}

// Evaluate computes the value of raw. Failures are always *Error values
// carrying one of the Kind constants.
func (ev *Evaluator) Evaluate(raw string) (float64, error) {
	p, err := ev.Compile(raw)
	if err != nil {
		return 0, err
	}
	return ev.Run(p)
}

// CachedPrograms reports how many compiled expressions are cached.
func (ev *Evaluator) CachedPrograms() int {
	if ev.cache == nil {
		return 0
	}
	return ev.cache.ItemCount()
}

// String describes the evaluator for logs.
func (ev *Evaluator) String() string {
	return fmt.Sprintf("calc.Evaluator{names: %d, functions: %d}", ev.env.table.Len(), len(ev.env.funcs))
}
