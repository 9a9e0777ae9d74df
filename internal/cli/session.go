package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/paycalc/internal/common"
	"github.com/Veraticus/paycalc/internal/model"
	"github.com/Veraticus/paycalc/internal/payroll"
	"github.com/Veraticus/paycalc/internal/report"
)

// Result is what a completed session produced.
type Result struct {
	Worker  model.Worker
	Summary payroll.Summary
}

// Session drives one interactive payroll calculation. The first invalid answer ends it.
type Session struct {
	reader *NonBlockingReader
	writer io.Writer
	logger *slog.Logger
}

// draft collects answers until they can be turned into a model.Worker.
type draft struct {
	name     string
	taxID    string
	salary   float64
	category model.Category
}

type step struct {
	run  func(context.Context, *draft) error
	name string
}

// abortMessages maps validation failures to the message printed before the session ends.
var abortMessages = []struct {
	err     error
	message string
}{
	{common.ErrInvalidSalary, "Invalid salary input."},
	{common.ErrNegativeSalary, "Salary cannot be negative."},
	{common.ErrInvalidInput, "Invalid input."},
	{common.ErrInvalidOption, "Invalid option."},
	{common.ErrInputClosed, "No input provided."},
}

// NewSession creates a session reading answers from reader and printing to writer.
func NewSession(reader io.Reader, writer io.Writer, logger *slog.Logger) *Session {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		reader: NewNonBlockingReader(reader),
		writer: writer,
		logger: logger,
	}
}

// Run prompts for every answer in order, then prints the report.
// Validation failures are printed and returned as a *common.UserError.
// The input is closed before Run returns, whatever the outcome.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	defer func() {
		if err := s.reader.Close(); err != nil {
			s.logger.Debug("Failed to close input", "error", err)
		}
	}()

	if err := s.println(FormatTitle("Payroll")); err != nil {
		return nil, err
	}

	steps := []step{
		{name: "name", run: s.readName},
		{name: "tax_id", run: s.readTaxID},
		{name: "salary", run: s.readSalary},
		{name: "category", run: s.readCategory},
	}

	answers := &draft{}
	for _, st := range steps {
		if err := st.run(ctx, answers); err != nil {
			return nil, s.abort(st.name, err)
		}
	}

	return s.finish(answers)
}

func (s *Session) readName(ctx context.Context, d *draft) error {
	name, err := s.ask(ctx, "Name:")
	if err != nil {
		return err
	}
	d.name = name
	return nil
}

func (s *Session) readTaxID(ctx context.Context, d *draft) error {
	taxID, err := s.ask(ctx, "Tax ID:")
	if err != nil {
		return err
	}
	d.taxID = taxID
	return nil
}

func (s *Session) readSalary(ctx context.Context, d *draft) error {
	answer, err := s.ask(ctx, "Gross salary (e.g. 2500.50): "+report.CurrencyPrefix)
	if err != nil {
		return err
	}

	salary, err := model.ParseSalary(answer)
	if err != nil {
		return err
	}
	d.salary = salary
	return nil
}

func (s *Session) readCategory(ctx context.Context, d *draft) error {
	if err := s.println("Worker category:"); err != nil {
		return err
	}
	for _, c := range model.Categories {
		if err := s.println(FormatOption(c.Code(), c.String())); err != nil {
			return err
		}
	}

	answer, err := s.ask(ctx, "Choose (1/2/3):")
	if err != nil {
		return err
	}

	category, err := model.ParseCategoryCode(answer)
	if err != nil {
		return err
	}
	d.category = category
	return nil
}

func (s *Session) finish(d *draft) (*Result, error) {
	worker, err := model.NewWorker(d.name, d.taxID, d.salary, d.category)
	if err != nil {
		return nil, s.abort("worker", err)
	}
	summary := payroll.Calculate(worker)

	if err := s.println(FormatSuccess("Selected: " + worker.Category().String())); err != nil {
		return nil, err
	}
	if err := report.Render(s.writer, worker, summary); err != nil {
		return nil, err
	}
	if err := report.RenderDetail(s.writer, summary); err != nil {
		return nil, err
	}

	s.logger.Debug("Payroll calculated",
		"category", worker.Category().String(),
		"gross", summary.GrossSalary,
		"net", summary.NetSalary)

	return &Result{Worker: worker, Summary: summary}, nil
}

// ask prints a prompt and reads the answer on the same line.
func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(s.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	return s.reader.ReadLine(ctx)
}

// abort prints the message for a validation failure and converts it into a UserError.
// Cancellation and write failures are returned unchanged.
func (s *Session) abort(stepName string, err error) error {
	for _, m := range abortMessages {
		if !errors.Is(err, m.err) {
			continue
		}

		s.logger.Debug("Session aborted", "step", stepName, "reason", err.Error())
		if writeErr := s.println(FormatError(m.message + " Exiting.")); writeErr != nil {
			return writeErr
		}
		return common.NewUserError(m.message, err)
	}
	return err
}

func (s *Session) println(line string) error {
	if _, err := fmt.Fprintln(s.writer, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
