// Package shell is a line-oriented front end to a menu session. Each input
// line is one command; quoting follows POSIX shell rules so names with
// spaces can be written as "Beef Wellington".
package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/flavorscape/pkg/menu"
	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// Command errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrAmbiguousID    = errors.New("ambiguous item ID")
	ErrLineTooLong    = errors.New("input line too long")
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

const helpText = `Commands:
  add <name> <description> <course> <price>   add a menu item (price like 100 or %[1]s100)
  remove <id>                                 remove an item by ID or unique ID prefix
  list                                        list every item
  filter [course]                             toggle a course filter and list matching items
  stats                                       show item count and average price per course
  help                                        show this help
  quit                                        leave the shell
`

// Shell executes commands against a session.
type Shell struct {
	session *menu.Session
	form    *menu.Form
	filter  menu.CourseFilter
	out     io.Writer
	prompt  string
	json    bool
	log     *zap.SugaredLogger
}

// Option customizes a Shell.
type Option func(*Shell)

// WithPrompt prints prompt before reading each line.
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// WithJSON switches command output to JSON.
func WithJSON(on bool) Option {
	return func(s *Shell) { s.json = on }
}

// WithLogger sets the logger for command errors.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Shell) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns a Shell writing to out.
func New(session *menu.Session, validator *menu.Validator, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		session: session,
		form:    menu.NewForm(validator),
		out:     out,
		log:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads commands from in until EOF, quit, or ctx is cancelled. Command
// failures are printed and do not stop the loop; only read errors are
// returned. A line longer than maxLineSize stops the loop with
// ErrLineTooLong.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !scanner.Scan() {
			err := scanner.Err()
			if errors.Is(err, bufio.ErrTooLong) {
				return fmt.Errorf("%w (limit %d bytes)", ErrLineTooLong, maxLineSize)
			}
			return err
		}

		quit, err := s.Exec(scanner.Text())
		if err != nil {
			s.log.Debugw("command failed", "line", scanner.Text(), "error", err)
			fmt.Fprintf(s.out, "error: %s\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line. It reports whether the shell should
// stop.
func (s *Shell) Exec(line string) (bool, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return false, fmt.Errorf("parse %q: %w", line, err)
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return false, nil
	}

	name, args := strings.ToLower(args[0]), args[1:]
	switch name {
	case "add":
		return false, s.add(args)
	case "remove", "rm":
		return false, s.remove(args)
	case "list", "ls":
		return false, s.printItems(s.session.Items())
	case "filter":
		return false, s.applyFilter(args)
	case "stats":
		return false, s.printStats()
	case "help", "?":
		fmt.Fprintf(s.out, helpText, s.currency())
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%w %q (try help)", ErrUnknownCommand, name)
	}
}

func (s *Shell) add(args []string) error {
	if len(args) > 4 {
		return fmt.Errorf("%w: add <name> <description> <course> <price>", ErrUsage)
	}
	field := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	s.form.Name = field(0)
	s.form.Description = field(1)
	s.form.Course = types.CourseNone
	if c, err := types.ParseCourse(field(2)); err == nil {
		s.form.Course = c
	}
	s.form.Price = field(3)

	item, err := s.form.Submit(s.session)
	if err != nil {
		var verrs menu.ValidationErrors
		if errors.As(err, &verrs) {
			return s.printValidation(verrs)
		}
		return err
	}

	if s.json {
		return s.writeJSON(item)
	}
	fmt.Fprintf(s.out, "Added %s: %s (%s) %s%d\n", item.ID, item.Name, item.Course, s.currency(), item.Price)
	return nil
}

func (s *Shell) remove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: remove <id>", ErrUsage)
	}
	id, err := s.resolveID(args[0])
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintf(s.out, "No item %s\n", args[0])
		return nil
	}
	if err := s.session.Remove(id); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Removed %s\n", id)
	return nil
}

// resolveID maps a full ID or a unique prefix to an item ID. An unknown ID
// resolves to "".
func (s *Shell) resolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", nil
	}
	var matches []string
	for _, it := range s.session.Items() {
		if it.ID == prefix {
			return it.ID, nil
		}
		if strings.HasPrefix(it.ID, prefix) {
			matches = append(matches, it.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d items", ErrAmbiguousID, prefix, len(matches))
	}
}

func (s *Shell) applyFilter(args []string) error {
	switch len(args) {
	case 0:
	case 1:
		c, err := types.ParseCourse(args[0])
		if err != nil {
			return err
		}
		s.filter.Toggle(c)
	default:
		return fmt.Errorf("%w: filter [course]", ErrUsage)
	}

	items, err := s.session.ItemsByCourse(s.filter.Selected())
	if err != nil {
		return err
	}
	if !s.json {
		if sel := s.filter.Selected(); sel != types.CourseNone {
			fmt.Fprintf(s.out, "Filter: %s\n", sel)
		} else {
			fmt.Fprintln(s.out, "Filter: none")
		}
	}
	return s.printItems(items)
}

func (s *Shell) printItems(items []types.MenuItem) error {
	if s.json {
		return s.writeJSON(items)
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No menu items.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOURSE\tNAME\tPRICE\tDESCRIPTION")
	fmt.Fprintln(w, "--\t------\t----\t-----\t-----------")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s%d\t%s\n", it.ID, it.Course, it.Name, s.currency(), it.Price, it.Description)
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(s.out, strings.TrimRight(line, " "))
	}
	fmt.Fprintf(s.out, "Total: %d item(s)\n", len(items))
	return nil
}

func (s *Shell) printStats() error {
	totals := s.session.Totals()
	if s.json {
		return s.writeJSON(totals)
	}
	fmt.Fprintf(s.out, "Total Menu Items: %d\n", totals.TotalItems)
	for _, c := range types.Courses {
		fmt.Fprintf(s.out, "%s Avg Price: %s\n", c, priceLabel(s.currency(), totals, c))
	}
	return nil
}

func (s *Shell) printValidation(verrs menu.ValidationErrors) error {
	if s.json {
		out := make(map[menu.Field]string, len(verrs))
		for f, fe := range verrs {
			out[f] = fe.Message
		}
		return s.writeJSON(map[string]any{"errors": out})
	}
	fmt.Fprintln(s.out, "Not added:")
	for _, f := range menu.Fields {
		if msg := verrs.Message(f); msg != "" {
			fmt.Fprintf(s.out, "  %s: %s\n", f, msg)
		}
	}
	return nil
}

func (s *Shell) writeJSON(v any) error {
	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// priceLabel renders an average with the currency prefix, or N/A.
func priceLabel(currency string, totals menu.Totals, c types.Course) string {
	if avg, ok := totals.AveragePrice(c); ok {
		return currency + avg
	}
	return menu.NotAvailable
}

func (s *Shell) currency() string {
	return s.form.Currency()
}
