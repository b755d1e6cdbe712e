package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/BruksfildServices01/clientbook/internal/dto"
)

const null = "NULL"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

var headers = []string{"ID", "NAME", "SURNAME", "EMAIL", "PHONE ID", "PHONE"}

// PrintRows writes rows as a bordered table preceded by title. An empty
// result prints the title and a "(no rows)" line.
func PrintRows(w io.Writer, title string, rows []dto.ClientSearchRow) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("(no rows)"))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		t.Row(Cells(r)...)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// Cells flattens a row in header order, with NULL for a missing phone.
func Cells(r dto.ClientSearchRow) []string {
	phoneID, phone := null, null
	if r.PhoneID != nil {
		phoneID = strconv.FormatUint(uint64(*r.PhoneID), 10)
	}
	if r.Phone != nil {
		phone = *r.Phone
	}

	return []string{
		strconv.FormatUint(uint64(r.ClientID), 10),
		r.FirstName,
		r.LastName,
		r.Email,
		phoneID,
		phone,
	}
}
