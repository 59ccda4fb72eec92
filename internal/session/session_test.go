package session

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physcalc/internal/calc"
	"physcalc/internal/constants"
	"physcalc/internal/model"
)

type recordingLogger struct {
	debugs, infos []string
}

func (r *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	r.debugs = append(r.debugs, message)
}
func (r *recordingLogger) Info(module, message string, details map[string]interface{}) {
	r.infos = append(r.infos, message)
}
func (r *recordingLogger) Warn(module, message string, details map[string]interface{})  {}
func (r *recordingLogger) Error(module, message string, details map[string]interface{}) {}
func (r *recordingLogger) Sync() error                                                  { return nil }

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	tbl, err := constants.Default()
	require.NoError(t, err)
	return New(tbl, calc.NewEvaluator(tbl), opts...)
}

func TestSubmitPlanckTimesLight(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.AppendConstant("h"))
	s.AppendToken("*")
	require.NoError(t, s.AppendConstant("c"))
	assert.Equal(t, "6.63e-34*300000000.0", s.Input())

	entry, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, "6.63e-34*300000000.0", entry.Expression)
	assert.Equal(t, "1.989×10^-25", entry.Result)
	chained, err := strconv.ParseFloat(s.Input(), 64)
	require.NoError(t, err, "result is left in the buffer for chaining")
	assert.Equal(t, entry.Value, chained)

	v, ok := s.LastResult()
	assert.True(t, ok)
	assert.InEpsilon(t, 1.989e-25, v, 1e-12)
}

func TestSubmitSubnormalResult(t *testing.T) {
	s := newSession(t)
	s.SetInput("1e-200*1e-120")

	entry, err := s.Submit()
	require.NoError(t, err)
	assert.NotZero(t, entry.Value)
	assert.Regexp(t, `^[1-9]\.\d+×10\^-32[01]$`, entry.Result)
}

func TestSubmitErrorLeavesStateAlone(t *testing.T) {
	rec := &recordingLogger{}
	s := newSession(t, WithLogger(rec))

	s.AppendToken("1/0")
	_, err := s.Submit()
	require.Error(t, err)
	assert.Equal(t, calc.DivisionByZero, calc.KindOf(err))
	assert.Equal(t, "1/0", s.Input())
	assert.Equal(t, 0, s.History().Len())
	_, ok := s.LastResult()
	assert.False(t, ok)
	assert.Equal(t, []string{"evaluation failed"}, rec.debugs)

	s.Clear()
	_, err = s.Submit()
	assert.Equal(t, calc.EmptyInput, calc.KindOf(err))
}

func TestImplicitMultiplication(t *testing.T) {
	s := newSession(t)
	s.AppendToken("5")
	require.NoError(t, s.AppendConstant("euler"))
	assert.Equal(t, "5*2.718281828459045", s.Input())

	s.Clear()
	s.AppendToken("2")
	s.AppendFunction("sqrt(")
	assert.Equal(t, "2*sqrt(", s.Input())
}

func TestAppendConstantAndUnitKinds(t *testing.T) {
	s := newSession(t)

	err := s.AppendUnit("h")
	assert.ErrorIs(t, err, constants.ErrNotFound)
	err = s.AppendConstant("nm")
	assert.ErrorIs(t, err, constants.ErrNotFound)
	err = s.AppendConstant("nope")
	assert.ErrorIs(t, err, constants.ErrNotFound)
	assert.Equal(t, "", s.Input())

	require.NoError(t, s.AppendUnit("Å"))
	assert.Equal(t, "1e-10", s.Input())
}

func TestAppendLastResult(t *testing.T) {
	s := newSession(t)

	s.AppendLastResult()
	assert.Equal(t, "", s.Input(), "no result yet")

	s.AppendToken("2^10")
	_, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, "1024.0", s.Input())

	s.Clear()
	s.AppendLastResult()
	s.AppendToken("/2")
	entry, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, "512", entry.Result)
}

func TestPowerSuffixWrap(t *testing.T) {
	s := newSession(t)
	s.AppendToken("+")
	s.AppendPowerSuffix("**2")
	assert.Equal(t, "(+)**2", s.Input())

	_, err := s.Submit()
	assert.Equal(t, calc.SyntaxError, calc.KindOf(err))
}

func TestToggleSignAndBackspace(t *testing.T) {
	s := newSession(t)
	s.AppendToken("42")
	s.ToggleSign()
	assert.Equal(t, "-42", s.Input())
	s.ToggleSign()
	assert.Equal(t, "42", s.Input())
	s.Backspace()
	assert.Equal(t, "4", s.Input())
}

func TestDisplayMode(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, model.Scientific, s.DisplayMode())

	s.AppendToken("1500000")
	assert.Equal(t, "1.5×10^6", s.Preview())

	assert.Equal(t, model.Plain, s.ToggleDisplayMode())
	assert.Equal(t, "1500000.0", s.Preview())
	assert.Equal(t, "1500000.0", s.Format(1.5e6))

	entry, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, "1500000.0", entry.Result)

	assert.Equal(t, model.Scientific, s.ToggleDisplayMode())
	assert.Equal(t, "1500000.0", s.History().List()[0].Result, "history keeps its formatting")

	plain := newSession(t, WithDisplayMode(model.Plain))
	assert.Equal(t, model.Plain, plain.DisplayMode())
}

func TestHistoryOrderAndClear(t *testing.T) {
	rec := &recordingLogger{}
	s := newSession(t, WithLogger(rec))

	exprs := []string{"1+1", "2*3", "sqrt(16)"}
	for _, e := range exprs {
		s.SetInput(e)
		_, err := s.Submit()
		require.NoError(t, err)
	}

	list := s.History().List()
	require.Len(t, list, len(exprs))
	for i, e := range exprs {
		assert.Equal(t, e, list[i].Expression)
	}
	assert.Equal(t, []string{"2", "6", "4"}, []string{list[0].Result, list[1].Result, list[2].Result})

	s.ClearHistory()
	assert.Equal(t, 0, s.History().Len())
	assert.Contains(t, rec.infos, "history cleared")
}

func TestPreviewEchoesExpressions(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, "0", s.Preview())
	s.AppendToken("2+")
	assert.Equal(t, "2+", s.Preview())
}
