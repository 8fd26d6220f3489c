package menu

import (
	"context"
	"fmt"

	"parkingsys/pkg/models"
)

func (m *Menu) handleRegister(ctx context.Context) error {
	m.println("")
	m.println(messages["register_header"])

	name, err := m.ask(messages["ask_name"])
	if err != nil {
		return err
	}
	driverID, err := m.ask(messages["ask_id"])
	if err != nil {
		return err
	}
	plate, err := m.ask(messages["ask_plate"])
	if err != nil {
		return err
	}
	vehicleType, err := m.ask(messages["ask_type"])
	if err != nil {
		return err
	}

	driver, err := m.Svc.Register(ctx, name, driverID, plate, vehicleType)
	if err != nil {
		return err
	}
	m.printf(messages["registered"], driver)
	return nil
}

func (m *Menu) handleIssuePass(ctx context.Context) error {
	m.println("")
	m.println(messages["issue_header"])

	plate, err := m.ask(messages["ask_issue"])
	if err != nil {
		return err
	}
	passType, err := m.ask(messages["ask_pass"])
	if err != nil {
		return err
	}

	pass, err := m.Svc.IssuePass(ctx, plate, passType)
	if err != nil {
		return err
	}
	m.printf(messages["issued"], pass)
	return nil
}

func (m *Menu) handlePark(ctx context.Context) error {
	m.println("")
	m.println(messages["park_header"])

	plate, err := m.ask(messages["ask_park"])
	if err != nil {
		return err
	}

	entry, err := m.Svc.Park(ctx, plate)
	if err != nil {
		return err
	}
	m.printf(messages["parked"], models.NormalizePlate(plate), entry.Format(timeLayout))
	return nil
}

func (m *Menu) handleRemove(ctx context.Context) error {
	m.println("")
	m.println(messages["remove_header"])

	plate, err := m.ask(messages["ask_remove"])
	if err != nil {
		return err
	}

	r, err := m.Svc.RemoveAndBill(ctx, plate)
	if err != nil {
		return err
	}

	m.println("")
	m.println(messages["divider"])
	m.printf(messages["exit_title"], r.Plate)
	m.printf(messages["exit_entry"], r.EntryTime.Format(timeLayout))
	m.printf(messages["exit_exit"], r.ExitTime.Format(timeLayout))
	m.printf(messages["exit_elapsed"], r.Hours, int64(r.Duration.Seconds()))
	m.printf(messages["exit_pass"], r.Tier.Title(), r.Rate)
	m.printf(messages["exit_fee"], r.Fee)
	m.println(messages["divider"])
	return nil
}

func (m *Menu) handleList(ctx context.Context) error {
	passes, err := m.Svc.ListPasses(ctx)
	if err != nil {
		return err
	}

	m.println("")
	m.println(messages["list_header"])
	if len(passes) == 0 {
		m.println(messages["no_passes"])
		return nil
	}

	for _, p := range passes {
		status := "Not Parked"
		if p.Parked {
			status = "Parked"
		}
		m.println(fmt.Sprintf("| %s | %s | %s | Driver: %s | Status: %s",
			p.Plate, p.PassID, p.Tier.Title(), p.DriverName, status))
	}
	m.println(messages["short_rule"])
	return nil
}

func (m *Menu) handleReceipts(ctx context.Context) error {
	receipts, err := m.Svc.Receipts(ctx)
	if err != nil {
		return err
	}

	m.println("")
	m.println(messages["receipts_header"])
	if len(receipts) == 0 {
		m.println(messages["no_receipts"])
		return nil
	}

	var total float64
	for _, r := range receipts {
		total += r.Fee
		m.println(fmt.Sprintf("| %s | %s | %s | %s -> %s | %.2f hours | %.2f TL",
			r.ID, r.Plate, r.Tier.Title(),
			r.EntryTime.Format(timeLayout), r.ExitTime.Format(timeLayout),
			r.Hours, r.Fee))
	}
	m.println(fmt.Sprintf("Total billed: %.2f TL", total))
	m.println(messages["short_rule"])
	return nil
}
