package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"parkingsys/config"
	"parkingsys/pkg/logger"
	"parkingsys/pkg/models"
	"parkingsys/service"
)

const (
	ChoiceRegister = "1"
	ChoiceIssue    = "2"
	ChoicePark     = "3"
	ChoiceRemove   = "4"
	ChoiceList     = "5"
	ChoiceReceipts = "6"
	ChoiceExit     = "7"
)

const timeLayout = "2006-01-02 15:04:05"

var messages = map[string]string{
	"title":            "=== %s Smart Parking Management System ===",
	"capacity":         "Lot Capacity: %d/%d (Available: %d)",
	"options":          "1. Register Driver and Vehicle\n2. Issue Parking Pass\n3. Park a Vehicle\n4. Remove a Vehicle and Calculate Fee\n5. List All Active Passes\n6. List Exit Receipts\n7. Exit",
	"choice":           "Enter your choice (1-7): ",
	"invalid_choice":   "Invalid choice. Please enter a number between 1 and 7.",
	"operation_error":  "Operation Error: %s",
	"unexpected_error": "Unexpected Error: %s. Please try again.",
	"goodbye":          "Exiting the Parking Management System. Thank you for using the system.",

	"register_header": "--- Driver and Vehicle Registration ---",
	"ask_name":        "Full Name: ",
	"ask_id":          "ID/Staff Number: ",
	"ask_plate":       "License Plate (e.g., 06 BB 66): ",
	"ask_type":        "Vehicle Type (car/motorcycle): ",
	"registered":      "Driver and Vehicle Registration Successful: %s",

	"issue_header": "--- Pass Issuance ---",
	"ask_issue":    "Plate to issue pass for: ",
	"ask_pass":     "Pass Type (student/staff): ",
	"issued":       "Pass Successfully Issued: %s",

	"park_header": "--- Vehicle Parking ---",
	"ask_park":    "Plate to park: ",
	"parked":      "%s successfully parked. (Entry Time: %s)",

	"remove_header": "--- Vehicle Removal and Fee Calculation ---",
	"ask_remove":    "Plate to remove: ",

	"list_header": "--- Active Passes and Drivers ---",
	"no_passes":   "No active passes are currently registered in the system.",

	"receipts_header": "--- Exit Receipts ---",
	"no_receipts":     "No vehicle has left the lot yet.",

	"divider":      "==============================================",
	"short_rule":   "---------------------------------",
	"exit_title":   "Vehicle Exit Information: %s",
	"exit_entry":   "   Entry Time: %s",
	"exit_exit":    "   Exit Time: %s",
	"exit_elapsed": "   Duration: %.2f hours (%d seconds)",
	"exit_pass":    "   Pass Type: %s (%.1f TL/hour)",
	"exit_fee":     "   TOTAL FEE: %.2f TL",
}

// errInputClosed ends the loop when input runs out mid-command.
var errInputClosed = errors.New("input closed")

// Menu is the interactive console front end of the parking system.
type Menu struct {
	Cfg *config.Config
	Svc service.ParkingService
	Log logger.ILogger

	in  *bufio.Scanner
	out io.Writer
}

func New(cfg *config.Config, svc service.IServiceManager, log logger.ILogger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		Cfg: cfg,
		Svc: svc.Parking(),
		Log: log,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run loops until the exit option, end of input, or ctx is cancelled.
// Command failures are printed and never stop the loop.
func (m *Menu) Run(ctx context.Context) error {
	m.Log.Info("menu started", logger.String("service", m.Cfg.ServiceName))
	defer m.Log.Info("menu stopped")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.showMenu(ctx)
		choice, err := m.ask(messages["choice"])
		if err != nil {
			m.println("")
			m.println(messages["goodbye"])
			return m.inputErr()
		}

		if choice == ChoiceExit {
			m.println("")
			m.println(messages["goodbye"])
			return nil
		}

		if err := m.dispatch(ctx, choice); errors.Is(err, errInputClosed) {
			m.println("")
			m.println(messages["goodbye"])
			return m.inputErr()
		}
	}
}

func (m *Menu) showMenu(ctx context.Context) {
	occ := m.Svc.Occupancy(ctx)
	m.println("")
	m.printf(messages["title"], occ.LotName)
	m.printf(messages["capacity"], occ.Parked, occ.Capacity, occ.Available)
	m.println(messages["options"])
}

func (m *Menu) dispatch(ctx context.Context, choice string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			m.Log.Error("menu command panicked", logger.String("choice", choice), logger.Any("panic", r))
			m.printf(messages["unexpected_error"], fmt.Sprint(r))
			err = nil
		}
	}()

	switch choice {
	case ChoiceRegister:
		err = m.handleRegister(ctx)
	case ChoiceIssue:
		err = m.handleIssuePass(ctx)
	case ChoicePark:
		err = m.handlePark(ctx)
	case ChoiceRemove:
		err = m.handleRemove(ctx)
	case ChoiceList:
		err = m.handleList(ctx)
	case ChoiceReceipts:
		err = m.handleReceipts(ctx)
	default:
		m.println(messages["invalid_choice"])
		return nil
	}

	if err != nil && !errors.Is(err, errInputClosed) {
		m.report(err)
		return nil
	}
	return err
}

func (m *Menu) report(err error) {
	if models.IsParkingError(err) || models.IsValidationError(err) {
		m.Log.Debug("operation rejected", logger.Error(err))
		m.printf(messages["operation_error"], err.Error())
		return
	}
	m.Log.Error("unexpected menu failure", logger.Error(err))
	m.printf(messages["unexpected_error"], err.Error())
}

func (m *Menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) inputErr() error {
	if err := m.in.Err(); err != nil {
		m.Log.Error("failed to read input", logger.Error(err))
		return err
	}
	return nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format+"\n", args...)
}
