// Package ui - Interactive form runner
package ui

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"voice-cost/core/catalog"
	"voice-cost/core/notify"
	"voice-cost/core/output"
	"voice-cost/core/presentation"
	"voice-cost/core/session"
	"voice-cost/core/types"
	"voice-cost/internal/errors"
)

// Runner drives a session from line-based commands
type Runner struct {
	w        *Writer
	session  *session.Session
	prompt   string
	notified bool
}

// NewRunner creates a runner with a fresh session over c. Session
// notifications are rendered inline through w.
func NewRunner(w *Writer, c *catalog.Catalog, opts ...session.Option) *Runner {
	r := &Runner{w: w, prompt: "> "}
	opts = append(opts, session.WithNotifier(r))
	r.session = session.New(c, opts...)
	return r
}

// Session returns the session driven by the runner
func (r *Runner) Session() *session.Session {
	return r.session
}

// Notify renders a session notification. An error notification already
// tells the user what went wrong, so Run does not repeat the error.
func (r *Runner) Notify(n notify.Notification) {
	if n.Kind == notify.KindError {
		r.notified = true
	}
	r.w.Notify(n)
}

const helpText = `Commands:
  toggle <id>...                    select or deselect technologies
  clear                             deselect every technology
  set duration|minutes|margin <n>   change a parameter
  calculate                         compute the cost
  show                              show parameters, selection and result
  catalog                           list technologies
  export <format> [file]            export the result (text, json, markdown, pdf)
  help                              show this help
  quit                              leave`

// Run reads commands from in until EOF, quit or ctx is done
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	r.w.Header("Voice Stack Cost Calculator")
	r.ShowCatalog()
	r.w.Println("")
	r.w.Println("Type 'help' for commands.")

	lines, readErr, stop := readLines(in)
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.w.Print("%s", r.prompt)
		var line string
		select {
		case <-ctx.Done():
			r.w.Println("")
			return ctx.Err()
		case err := <-readErr:
			r.w.Println("")
			return err
		case line = <-lines:
		}

		r.notified = false
		quit, err := r.Execute(line)
		if err != nil && !r.notified {
			r.w.Error("%s", errors.MessageOf(err))
		}
		if quit {
			return nil
		}
	}
}

// readLines scans in on its own goroutine so a blocked read does not
// hold up cancellation. readErr receives the scanner error, or nil, once
// in is exhausted. stop releases the goroutine if it is waiting to send;
// a goroutine blocked in Read stays until the read returns.
func readLines(in io.Reader) (lines <-chan string, readErr <-chan error, stop func()) {
	out := make(chan string)
	errc := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case out <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()

	return out, errc, func() { close(done) }
}

// Execute runs a single command line. It reports whether the loop should stop.
func (r *Runner) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		r.w.Println(helpText)
		return false, nil
	case "catalog", "list":
		r.ShowCatalog()
		return false, nil
	case "toggle", "t":
		if len(args) == 0 {
			return false, errors.Input("usage: toggle <id>...")
		}
		for _, id := range args {
			if !r.session.Catalog().Has(types.TechnologyID(id)) {
				r.w.Warning("unknown technology %q", id)
			}
			r.session.Toggle(types.TechnologyID(id))
		}
		r.ShowSelection()
		return false, nil
	case "clear":
		r.session.ClearSelection()
		r.ShowSelection()
		return false, nil
	case "set":
		return false, r.set(args)
	case "calculate", "calc", "c":
		if _, err := r.session.Calculate(); err != nil {
			return false, err
		}
		return false, r.ShowResult()
	case "show":
		r.ShowParams()
		r.ShowSelection()
		if r.session.Result() != nil {
			return false, r.ShowResult()
		}
		return false, nil
	case "export":
		return false, r.export(args)
	default:
		return false, errors.Newf(errors.TypeNotSupported, "unknown command %q, type 'help'", cmd)
	}
}

func (r *Runner) set(args []string) error {
	if len(args) != 2 {
		return errors.Input("usage: set duration|minutes|margin <n>")
	}

	v, err := decimal.NewFromString(args[1])
	if err != nil {
		return errors.Wrapf(errors.TypeParsing, err, "%q is not a number", args[1])
	}

	switch strings.ToLower(args[0]) {
	case "duration", "call_duration":
		err = r.session.SetCallDuration(v)
	case "minutes", "total_minutes":
		err = r.session.SetTotalMinutes(v)
	case "margin":
		err = r.session.SetMargin(v)
	default:
		return errors.Newf(errors.TypeNotSupported, "unknown parameter %q", args[0])
	}
	if err != nil {
		return err
	}

	r.ShowParams()
	return nil
}

func (r *Runner) export(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.Input("usage: export <format> [file]")
	}

	format := output.Format(strings.ToLower(args[0]))
	if len(args) == 1 {
		return r.session.Export(format, r.w.Out())
	}

	// Render first so a failed export leaves no file behind.
	var buf bytes.Buffer
	if err := r.session.Export(format, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(args[1], buf.Bytes(), 0644); err != nil {
		return errors.Export("write "+args[1], err)
	}
	r.w.Debug("%d bytes of %s", buf.Len(), format)
	r.w.Success("wrote %s", args[1])
	return nil
}

// ShowCatalog prints the technologies with their selection state
func (r *Runner) ShowCatalog() {
	ShowTechnologies(r.w, r.session.Selection().Technologies())
}

// ShowSelection prints the selected technology names
func (r *Runner) ShowSelection() {
	selected := r.session.Selection().Selected()
	if len(selected) == 0 {
		r.w.Println("Selected: (none)")
		return
	}
	names := make([]string, len(selected))
	for i, t := range selected {
		names[i] = t.Name
	}
	r.w.Println("Selected: %s", strings.Join(names, ", "))
}

// ShowParams prints the current parameters
func (r *Runner) ShowParams() {
	p := r.session.Params()
	r.w.Println("Average call duration: %s min, total minutes: %s, margin: %s%%",
		p.CallDuration, p.TotalMinutes, p.Margin)
}

// ShowResult prints the result block for the stored result
func (r *Runner) ShowResult() error {
	b, err := r.session.Breakdown()
	if err != nil {
		return err
	}
	ShowBreakdown(r.w, b, r.session.Stale())
	return nil
}

// ShowTechnologies prints a technology table
func ShowTechnologies(w *Writer, techs []types.Technology) {
	table := w.NewTable("", "ID", "Technology", "Cost/min")
	for _, t := range techs {
		mark := "[ ]"
		if t.Selected {
			mark = "[x]"
		}
		table.AddRow(mark, t.ID.String(), t.Name,
			presentation.Money(types.CurrencyUSD, t.CostPerMinute, presentation.PerMinutePlaces))
	}
	table.Render()
}

// ShowBreakdown prints the result box for b
func ShowBreakdown(w *Writer, b *presentation.Breakdown, stale bool) {
	f := b.Format()
	sym := b.Currency.Symbol()

	box := w.NewResultBox()
	box.BaseCostPerMinute = sym + f.BaseCostPerMinute
	box.MarginalCostPerMinute = sym + f.MarginalCostPerMinute
	box.TotalCost = sym + f.TotalCost
	box.Stale = stale
	box.Render()
}
