package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"empman/internal/domain/audit"
	"empman/internal/domain/employee"
	"empman/internal/domain/payroll"
	"empman/internal/opctx"
	"empman/internal/platform/metrics"
)

const (
	separator    = "-----------------------------"
	historyLimit = 10
)

const menuPrompt = "Enter 'add' to add an employee, 'update' to update employee information, " +
	"'display' to display current employee information, 'help' for more commands, or 'exit' to quit: "

const helpText = `add      add a salaried or hourly employee
update   change pay attributes of an employee (blank keeps the current value)
display  show every employee with pay figures
list     show a pay summary table
payslip  write a PDF payslip for an employee
history  show the most recent logged actions
exit     quit
`

type Deps struct {
	Service  *employee.Service
	Payslips *payroll.PayslipService
	History  audit.Lister
	Metrics  *metrics.Collector
	Logger   *slog.Logger
}

// Driver runs the interactive menu loop. Every command runs to completion
// before the next prompt.
type Driver struct {
	Deps
	prompt Prompter
	out    io.Writer
	errOut *color.Color
	warn   *color.Color
}

func New(deps Deps, prompt Prompter, out io.Writer) *Driver {
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		Deps:   deps,
		prompt: prompt,
		out:    out,
		errOut: color.New(color.FgRed),
		warn:   color.New(color.FgYellow),
	}
}

// Run serves commands until exit, end of input, or cancellation of ctx.
func (d *Driver) Run(ctx context.Context) error {
	defer func() {
		d.Logger.Info("session ended", d.Metrics.Snapshot()...)
	}()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := d.prompt.Prompt(menuPrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		command := strings.ToLower(strings.TrimSpace(choice))
		if command == "" {
			continue
		}
		if command == "exit" || command == "quit" {
			fmt.Fprintln(d.out, separator)
			fmt.Fprintln(d.out, "Exiting program. Goodbye!")
			return nil
		}

		opCtx := opctx.New(ctx)
		err = d.dispatch(opCtx, command)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, errUnknownCommand) {
			command = "unknown"
		} else if err != nil {
			d.report(err)
		}
		d.Metrics.Record(command, err)
		d.Logger.Debug("command finished", "command", command, "operationId", opctx.OperationID(opCtx), "err", err)
	}
}

var errUnknownCommand = errors.New("unknown command")

func (d *Driver) dispatch(ctx context.Context, command string) error {
	run, ok := map[string]func(context.Context) error{
		"add":     d.add,
		"update":  d.update,
		"display": d.display,
		"list":    d.list,
		"payslip": d.payslip,
		"history": d.history,
		"help":    d.help,
	}[command]
	if !ok {
		fmt.Fprintln(d.out, "Invalid choice!")
		return errUnknownCommand
	}
	fmt.Fprintln(d.out, separator)
	return run(ctx)
}

func (d *Driver) report(err error) {
	switch {
	case errors.Is(err, employee.ErrNotRecorded):
		d.warn.Fprintf(d.out, "Warning: %v\n", err)
		d.Logger.Warn("action log write failed", "err", err)
	case errors.Is(err, employee.ErrInvalidRole):
		d.errOut.Fprintln(d.out, "Invalid role!")
	case errors.Is(err, employee.ErrNotFound):
		d.errOut.Fprintln(d.out, "Employee not found!")
	case errors.Is(err, employee.ErrDuplicateID):
		d.errOut.Fprintln(d.out, "An employee with that ID already exists!")
	default:
		d.errOut.Fprintf(d.out, "Error: %v\n", err)
	}
}

func (d *Driver) add(ctx context.Context) error {
	rawRole, err := d.prompt.Prompt("Enter role (salaried/hourly): ")
	if err != nil {
		return err
	}
	role, err := employee.ParseRole(rawRole)
	if err != nil {
		return err
	}
	name, err := d.prompt.Prompt("Enter name: ")
	if err != nil {
		return err
	}
	id, err := d.prompt.Prompt("Enter ID: ")
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if _, err := d.Service.Find(id); err == nil {
		return fmt.Errorf("%w: %s", employee.ErrDuplicateID, id)
	}

	fields := employee.Fields{}
	for _, field := range employee.RoleFields(role) {
		raw, err := d.askDecimal("Enter "+field.Label()+": ", false)
		if err != nil {
			return err
		}
		fields[field] = raw
	}

	rec, err := d.Service.Add(ctx, role, name, id, fields)
	if rec != nil {
		fmt.Fprintln(d.out, "Employee added successfully!")
	}
	return err
}

func (d *Driver) update(ctx context.Context) error {
	id, err := d.prompt.Prompt("Enter the ID of the employee to update: ")
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	current, err := d.Service.Find(id)
	if err != nil {
		return err
	}

	fields := employee.Fields{}
	for _, field := range employee.RoleFields(current.Identity().Role) {
		raw, err := d.askDecimal("Enter new "+field.Label()+" (leave blank to keep current): ", true)
		if err != nil {
			return err
		}
		fields[field] = raw
	}

	rec, err := d.Service.Update(ctx, id, fields)
	if rec != nil {
		fmt.Fprintln(d.out, "Employee information updated successfully!")
	}
	return err
}

// askDecimal re-prompts until the input parses, or is blank when allowed.
func (d *Driver) askDecimal(prompt string, allowBlank bool) (string, error) {
	for {
		raw, err := d.prompt.Prompt(prompt)
		if err != nil {
			return "", err
		}
		if allowBlank && strings.TrimSpace(raw) == "" {
			return "", nil
		}
		if _, err := employee.ParseDecimal(raw); err != nil {
			d.errOut.Fprintln(d.out, "Please enter a valid number.")
			continue
		}
		return raw, nil
	}
}

func (d *Driver) display(context.Context) error {
	records := d.Service.List()
	if len(records) == 0 {
		fmt.Fprintln(d.out, "No current employees.")
		return nil
	}
	for i, r := range records {
		if i > 0 {
			fmt.Fprintln(d.out, separator)
		}
		pay, err := payroll.FormatPay(r)
		if err != nil {
			return err
		}
		fmt.Fprintln(d.out, employee.Describe(r))
		fmt.Fprintln(d.out, r.PayDetails())
		fmt.Fprintln(d.out, pay)
	}
	return nil
}

func (d *Driver) list(context.Context) error {
	records := d.Service.List()
	if len(records) == 0 {
		fmt.Fprintln(d.out, "No current employees.")
		return nil
	}

	table := tablewriter.NewWriter(d.out)
	table.SetHeader([]string{"ID", "Name", "Role", "Period", "Gross", "Net"})
	table.SetAutoFormatHeaders(false)
	for _, r := range records {
		summary, err := payroll.Summarize(r)
		if err != nil {
			return err
		}
		table.Append([]string{
			summary.ID,
			summary.Name,
			string(summary.Role),
			summary.Period,
			employee.FormatAmount(summary.Gross),
			employee.FormatAmount(summary.Net),
		})
	}
	table.Render()
	return nil
}

func (d *Driver) payslip(context.Context) error {
	if d.Payslips == nil {
		return errors.New("payslips are not configured")
	}
	id, err := d.prompt.Prompt("Enter the ID of the employee: ")
	if err != nil {
		return err
	}
	r, err := d.Service.Find(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	path, err := d.Payslips.Generate(r)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Payslip written to %s\n", path)
	return nil
}

func (d *Driver) history(ctx context.Context) error {
	if d.History == nil {
		return errors.New("action history is not available")
	}
	entries, err := d.History.List(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(d.out, "No logged actions.")
		return nil
	}
	for _, entry := range entries {
		fmt.Fprint(d.out, entry.Line())
	}
	return nil
}

func (d *Driver) help(context.Context) error {
	fmt.Fprint(d.out, helpText)
	return nil
}
