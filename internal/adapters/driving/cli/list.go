package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

var (
	listSearch   string
	listPage     int
	listPageSize int
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of hearings",
	Long: `Print one page of the hearing table, optionally filtered by a search term.

The search matches any field, ignoring case. Page numbers past the end are
clamped to the last page. Without --page-size the configured ui.page_size is
used.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "filter by term")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	listCmd.Flags().IntVarP(&listPageSize, "page-size", "n", 0, "rows per page (0 = configured)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output the page as JSON")
	rootCmd.AddCommand(listCmd)
}

// pageJSON is the --json output shape.
type pageJSON struct {
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
	PageSize int              `json:"pageSize"`
	Total    int              `json:"total"`
	Search   string           `json:"search,omitempty"`
	Items    []domain.Hearing `json:"items"`
}

func runList(cmd *cobra.Command, _ []string) error {
	if viewService == nil {
		return errors.New("view service not configured")
	}

	size := listPageSize
	if size < 1 {
		size = configuredPageSize()
	}

	query := domain.PageQuery{Term: listSearch, Page: listPage, Size: size}
	page, err := viewService.Project(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("failed to list hearings: %w", err)
	}
	if page.Number > page.LastPage() {
		query.Page = page.LastPage()
		if page, err = viewService.Project(cmd.Context(), query); err != nil {
			return fmt.Errorf("failed to list hearings: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	switch {
	case listJSON:
		return outputPageJSON(out, page)
	case isTerminal(out):
		outputPageTable(out, page)
	default:
		outputPageTSV(out, page)
	}
	return nil
}

func configuredPageSize() int {
	if settingsService == nil {
		return domain.DefaultPageSize
	}
	return settingsService.Get().PageSize
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func outputPageJSON(w io.Writer, page domain.Page) error {
	data, err := json.MarshalIndent(pageJSON{
		Page:     page.Number,
		Pages:    page.Count,
		PageSize: page.Size,
		Total:    page.Total,
		Search:   page.Query,
		Items:    page.Items,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func headers() []string {
	fields := domain.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Label()
	}
	return out
}

func outputPageTable(w io.Writer, page domain.Page) {
	if page.IsEmpty() {
		fmt.Fprintln(w, "Nenhum registro encontrado.")
		return
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers()...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, h := range page.Items {
		t.Row(h.Values()...)
	}

	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, pageFooter(page))
}

func outputPageTSV(w io.Writer, page domain.Page) {
	fmt.Fprintln(w, strings.Join(headers(), "\t"))
	for _, h := range page.Items {
		fmt.Fprintln(w, strings.Join(h.Values(), "\t"))
	}
}

func pageFooter(page domain.Page) string {
	return fmt.Sprintf("Página %d de %d · %d registros", page.Number, page.LastPage(), page.Total)
}
