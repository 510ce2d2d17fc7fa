package service

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// RenderTable writes employees as a printable text table followed by a
// count line.
func RenderTable(w io.Writer, employees []domain.Employee) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Full Name", "Gender", "Date of Birth", "State", "Status"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, e := range employees {
		table.Append([]string{
			strconv.FormatInt(e.ID, 10),
			e.FullName,
			string(e.Gender),
			e.DateOfBirth,
			e.State,
			statusLabel(e.Active),
		})
	}
	table.Render()

	_, err := fmt.Fprintf(w, "%d employee(s)\n", len(employees))
	return err
}

func statusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}
