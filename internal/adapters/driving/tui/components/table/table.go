// Package table renders one page of hearings with a row cursor and page dots.
package table

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// minColumn keeps narrow terminals readable.
const minColumn = 8

// HearingTable shows the rows of a domain.Page. It never talks to the store;
// the owning view hands it a fresh page after every change.
type HearingTable struct {
	model  btable.Model
	pager  paginator.Model
	styles *styles.Styles
	page   domain.Page
	width  int
}

// New creates an empty, focused table.
func New(s *styles.Styles) *HearingTable {
	if s == nil {
		s = styles.DefaultStyles()
	}

	pager := paginator.New()
	pager.Type = paginator.Dots

	t := &HearingTable{
		model: btable.New(
			btable.WithFocused(true),
			btable.WithHeight(domain.DefaultPageSize+1),
		),
		pager:  pager,
		styles: s,
	}
	t.SetWidth(80)
	return t
}

// Init initialises the table.
func (t *HearingTable) Init() tea.Cmd {
	return nil
}

// SetPage replaces the visible rows. The cursor stays on the same row
// number when that row still exists.
func (t *HearingTable) SetPage(page domain.Page) {
	t.page = page

	rows := make([]btable.Row, len(page.Items))
	for i, h := range page.Items {
		rows[i] = btable.Row(h.Values())
	}

	cursor := t.model.Cursor()
	t.model.SetRows(rows)
	t.model.SetHeight(max(min(page.Size, max(page.Total, domain.DefaultPageSize)), 1) + 1)
	t.model.SetCursor(min(max(cursor, 0), max(len(rows)-1, 0)))

	t.pager.PerPage = max(page.Size, 1)
	t.pager.TotalPages = page.LastPage()
	t.pager.Page = min(max(page.Number-1, 0), t.pager.TotalPages-1)
}

// Page returns the page currently shown.
func (t *HearingTable) Page() domain.Page {
	return t.page
}

// Cursor returns the selected row on the visible page. It is 0 on an empty page.
func (t *HearingTable) Cursor() int {
	return max(t.model.Cursor(), 0)
}

// MoveUp moves the cursor up one row.
func (t *HearingTable) MoveUp() {
	t.model.MoveUp(1)
}

// MoveDown moves the cursor down one row.
func (t *HearingTable) MoveDown() {
	t.model.MoveDown(1)
}

// Focus enables the cursor highlight.
func (t *HearingTable) Focus() {
	t.model.Focus()
}

// Blur hides the cursor highlight while another control has the keys.
func (t *HearingTable) Blur() {
	t.model.Blur()
}

// SetWidth spreads the available width over the four columns.
func (t *HearingTable) SetWidth(width int) {
	t.width = width

	// Two cells of padding per column.
	avail := max(width-8, 4*minColumn)
	date := 12
	process := max(avail*35/100, minColumn)
	court := max(avail*20/100, minColumn)
	correspondent := max(avail-process-date-court, minColumn)

	widths := map[domain.Field]int{
		domain.FieldProcessNumber: process,
		domain.FieldDate:          date,
		domain.FieldCourt:         court,
		domain.FieldCorrespondent: correspondent,
	}

	fields := domain.Fields()
	cols := make([]btable.Column, len(fields))
	for i, f := range fields {
		cols[i] = btable.Column{Title: f.Label(), Width: widths[f]}
	}
	t.model.SetColumns(cols)
	t.model.SetWidth(width)
}

// View renders the table and the page dots.
func (t *HearingTable) View() string {
	if t.page.IsEmpty() {
		return t.styles.Muted.Render("Nenhum registro encontrado.")
	}

	t.pager.ActiveDot = t.styles.Title.Render("•")
	t.pager.InactiveDot = t.styles.Muted.Render("•")
	t.model.SetStyles(btable.Styles{
		Header:   t.styles.TableHeader,
		Cell:     t.styles.TableCell,
		Selected: t.styles.Selected,
	})

	var b strings.Builder
	b.WriteString(t.styles.Border.Render(t.model.View()))
	b.WriteString("\n")
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	b.WriteString(lipgloss.PlaceHorizontal(t.width, lipgloss.Center, t.pager.View()))
	return b.String()
}
