package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"physcalc/internal/calc"
	"physcalc/internal/constants"
	"physcalc/internal/export"
	"physcalc/internal/format"
	"physcalc/internal/model"
	"physcalc/internal/session"
)

var (
	resultColor = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed)
	infoColor   = color.New(color.FgCyan)
)

// Runner drives a session from the terminal.
type Runner struct {
	sess    *session.Session
	out     io.Writer
	verbose bool
}

// NewRunner creates a runner writing results and errors to out.
func NewRunner(sess *session.Session, out io.Writer, verbose bool) *Runner {
	return &Runner{sess: sess, out: out, verbose: verbose}
}

// Eval evaluates one expression and prints the result. The returned error is
// the evaluation error, already printed.
func (r *Runner) Eval(expr string) error {
	r.sess.SetInput(expr)
	return r.submit()
}

func (r *Runner) submit() error {
	entry, err := r.sess.Submit()
	if err != nil {
		errorColor.Fprintf(r.out, "%s: %v\n", calc.KindOf(err), err)
		return err
	}
	if r.verbose {
		infoColor.Fprintf(r.out, "[%s] %s = %s\n", entry.ID, entry.Expression, format.Decimal(entry.Value))
	}
	resultColor.Fprintln(r.out, entry.Result)
	return nil
}

// REPL reads expressions and commands from in until EOF or :quit.
// Evaluation errors are printed and do not stop the loop.
func (r *Runner) REPL(in io.Reader) error {
	infoColor.Fprintf(r.out, "Physics Calculator (%s mode). Type :help for commands.\n", r.sess.DisplayMode())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			quit, err := r.command(line)
			if err != nil {
				errorColor.Fprintf(r.out, "%v\n", err)
			}
			if quit {
				return nil
			}
			continue
		}

		r.expression(line)
	}
	fmt.Fprintln(r.out)

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// expression evaluates line. A line starting with a binary operator
// continues from the previous result, like pressing an operator key after =.
// A negative result is parenthesized before "^" so it is the base.
func (r *Runner) expression(line string) {
	if last, ok := r.sess.LastResult(); ok && strings.ContainsAny(line[:1], "+*/^") {
		r.sess.Clear()
		if line[0] == '^' && last < 0 {
			r.sess.AppendToken("(" + format.Decimal(last) + ")")
		} else {
			r.sess.AppendLastResult()
		}
		r.sess.AppendToken(line)
	} else {
		r.sess.SetInput(line)
	}
	_ = r.submit()
}

func (r *Runner) command(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true, nil
	case ":help":
		printREPLHelp(r.out)
	case ":mode":
		if len(fields) > 1 {
			m, ok := model.ParseDisplayMode(fields[1])
			if !ok {
				return false, fmt.Errorf("unknown mode %q (want scientific or plain)", fields[1])
			}
			r.sess.SetDisplayMode(m)
		} else {
			r.sess.ToggleDisplayMode()
		}
		infoColor.Fprintf(r.out, "mode: %s\n", r.sess.DisplayMode())
	case ":history":
		return false, export.WriteTXT(r.out, r.sess.History().List())
	case ":csv":
		return false, export.WriteCSV(r.out, r.sess.History().List())
	case ":clear":
		r.sess.ClearHistory()
		infoColor.Fprintln(r.out, "history cleared")
	case ":ans":
		v, ok := r.sess.LastResult()
		if !ok {
			return false, fmt.Errorf("no result yet")
		}
		resultColor.Fprintln(r.out, r.sess.Format(v))
	case ":constants":
		printEntries(r.out, r.sess, constants.KindConstant)
	case ":units":
		printEntries(r.out, r.sess, constants.KindUnit)
	default:
		return false, fmt.Errorf("unknown command %s (type :help)", fields[0])
	}
	return false, nil
}

func printEntries(w io.Writer, sess *session.Session, kind constants.Kind) {
	for _, e := range sess.Table().Kind(kind) {
		name := e.Symbol
		if len(e.Aliases) > 0 {
			name += " (" + strings.Join(e.Aliases, ", ") + ")"
		}
		fmt.Fprintf(w, "  %-16s %-22s %s\n", name, format.Mantissa(e.Value), e.Description)
	}
}

func printREPLHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  :mode [scientific|plain]  toggle or set the display mode
  :history                  list this session's results
  :csv                      print the history as CSV
  :clear                    clear the history
  :ans                      show the last result
  :constants, :units        list the available names
  :quit                     leave
A line starting with + * / or ^ continues from the last result.
`)
}
