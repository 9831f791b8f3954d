// Package hearings provides the table view: search, paging, editor and delete confirmation.
package hearings

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/components/form"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/components/table"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driving"
	"github.com/custodia-labs/hearings-cli/internal/logger"
)

// Fixed user-facing texts.
const (
	titleText     = "Tabela Jurídica"
	addTitle      = "Adicionar Novo Item"
	editTitle     = "Editar Item"
	savedText     = "Registro salvo."
	deletedText   = "Registro excluído."
	cancelledText = "Exclusão cancelada."
)

// View is the hearings table view. All session calls happen inside Update,
// which bubbletea runs on a single goroutine.
type View struct {
	ctx     context.Context
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	session driving.TableSession

	search *input.SearchInput
	table  *table.HearingTable
	form   *form.Form
	status *status.Bar

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new hearings view.
func NewView(s *styles.Styles, km *keymap.KeyMap, session driving.TableSession) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		ctx:     context.Background(),
		styles:  s,
		keymap:  km,
		session: session,
		search:  input.NewSearchInput(s),
		table:   table.New(s),
		form:    form.New(s),
		status:  status.NewBar(s, km),
	}
}

// WithContext sets the context passed to session calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init asks for the first page.
func (v *View) Init() tea.Cmd {
	return func() tea.Msg { return messages.RefreshRequested{} }
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.RefreshRequested:
		v.apply(v.session.Refresh(v.ctx))
		return v, nil

	case tea.KeyMsg:
		switch v.session.Mode() {
		case domain.ModeAdd, domain.ModeEdit:
			return v.handleEditorKey(msg)
		case domain.ModeConfirmDelete:
			return v.handleConfirmKey(msg)
		default:
			if v.search.Focused() {
				return v.handleSearchKey(msg)
			}
			return v.handleBrowseKey(msg)
		}
	}

	return v, nil
}

func (v *View) handleBrowseKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		v.table.MoveUp()
	case keymap.Matches(k, v.keymap.Down):
		v.table.MoveDown()
	case keymap.Matches(k, v.keymap.PrevPage):
		v.apply(v.session.PrevPage(v.ctx))
	case keymap.Matches(k, v.keymap.NextPage):
		v.apply(v.session.NextPage(v.ctx))
	case keymap.Matches(k, v.keymap.Search):
		v.table.Blur()
		v.status.SetState(status.StateSearching)
		return v, v.search.Focus()
	case keymap.Matches(k, v.keymap.ClearSearch):
		v.search.Reset()
		v.apply(v.session.ClearSearch(v.ctx))
	case keymap.Matches(k, v.keymap.Add):
		return v, v.openEditor(v.session.BeginAdd(), addTitle)
	case keymap.Matches(k, v.keymap.Edit):
		return v, v.openEditor(v.session.BeginEdit(v.table.Cursor()), editTitle)
	case keymap.Matches(k, v.keymap.Delete):
		v.requestDelete()
	case keymap.Matches(k, v.keymap.Theme):
		return v, func() tea.Msg { return messages.ThemeCycleRequested{} }
	case keymap.Matches(k, v.keymap.Quit):
		return v, tea.Quit
	}
	return v, nil
}

func (v *View) handleSearchKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
		v.search.Blur()
		v.table.Focus()
		v.status.Clear()
		return v, nil
	}

	var (
		cmd     tea.Cmd
		changed bool
	)
	v.search, cmd, changed = v.search.Update(msg)
	if changed {
		v.apply(v.session.Search(v.ctx, v.search.Value()))
		v.status.SetState(status.StateSearching)
	}
	return v, cmd
}

func (v *View) handleEditorKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Cancel):
		v.session.Cancel()
		v.closeEditor()
		v.status.Clear()
		return v, nil
	case keymap.Matches(k, v.keymap.Save):
		return v, v.save()
	case keymap.Matches(k, v.keymap.NextField):
		return v, v.form.Next()
	case keymap.Matches(k, v.keymap.PrevField):
		return v, v.form.Prev()
	}

	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	if err := v.session.UpdateDraft(v.form.Hearing()); err != nil {
		v.fail(err)
	}
	return v, cmd
}

func (v *View) handleConfirmKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Confirm):
		removed, err := v.session.ConfirmDelete(v.ctx)
		v.afterModal()
		v.syncPage()
		if err != nil {
			v.fail(err)
			return v, nil
		}
		v.notify(status.StateSuccess, deletedText)
		return v, func() tea.Msg { return messages.HearingDeleted{Hearing: removed} }
	case keymap.Matches(k, v.keymap.Decline):
		if err := v.session.DeclineDelete(); err != nil {
			v.fail(err)
		}
		v.afterModal()
		v.notify(status.StateReady, cancelledText)
	}
	return v, nil
}

func (v *View) openEditor(err error, title string) tea.Cmd {
	if err != nil {
		v.fail(err)
		return nil
	}
	v.search.SetDisabled(true)
	v.table.Blur()
	v.status.SetState(status.StateEditing)
	v.status.SetMessage(title)
	return v.form.Open(title, v.session.Draft())
}

func (v *View) closeEditor() {
	v.form.Close()
	v.afterModal()
}

func (v *View) afterModal() {
	v.search.SetDisabled(false)
	v.table.Focus()
}

func (v *View) save() tea.Cmd {
	mode := v.session.Mode()
	if err := v.session.UpdateDraft(v.form.Hearing()); err != nil {
		v.fail(err)
		return nil
	}

	saved, err := v.session.Save(v.ctx)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		v.form.SetError(verr.Message())
		v.status.SetState(status.StateError)
		v.status.SetMessage(verr.Message())
		if len(verr.Fields) == 0 {
			return nil
		}
		return v.form.FocusField(verr.Fields[0])
	}
	if err != nil && v.session.Mode().EditorOpen() {
		v.form.SetError(userMessage(err))
		v.fail(err)
		return nil
	}

	v.closeEditor()
	v.syncPage()
	if err != nil {
		v.fail(err)
		return nil
	}

	v.notify(status.StateSuccess, savedText)
	return func() tea.Msg { return messages.HearingSaved{Hearing: saved, Mode: mode} }
}

func (v *View) requestDelete() {
	pending, err := v.session.RequestDelete(v.table.Cursor())
	if err != nil {
		v.fail(err)
		return
	}
	v.search.SetDisabled(true)
	v.status.SetState(status.StateConfirm)
	v.status.SetMessage(pending.Prompt())
}

// apply shows page, or the error that prevented deriving it.
func (v *View) apply(page domain.Page, err error) {
	if err != nil {
		v.fail(err)
		return
	}
	v.err = nil
	v.table.SetPage(page)
	v.status.SetPage(page)
}

func (v *View) syncPage() {
	page := v.session.Page()
	v.table.SetPage(page)
	v.status.SetPage(page)
}

func (v *View) notify(state status.State, msg string) {
	v.status.SetState(state)
	v.status.SetMessage(msg)
}

func (v *View) fail(err error) {
	logger.Warn("Table action failed: %v", err)
	v.err = err
	v.notify(status.StateError, userMessage(err))
}

// userMessage maps an error to the text shown in the status bar.
func userMessage(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message()
	case errors.Is(err, domain.ErrInvalidIndex):
		return "Nenhum registro selecionado."
	case errors.Is(err, domain.ErrNotFound):
		return "O registro não existe mais."
	case errors.Is(err, domain.ErrBusy):
		return "Conclua a ação em andamento primeiro."
	default:
		return "Erro: " + err.Error()
	}
}

// View renders the view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(titleText))
	b.WriteString("\n\n")
	b.WriteString(v.search.View())
	b.WriteString("\n\n")

	if v.session.Mode().EditorOpen() {
		b.WriteString(v.form.View())
	} else {
		b.WriteString(v.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.status.View())

	if !v.ready {
		return b.String()
	}
	return lipgloss.NewStyle().MaxWidth(v.width).MaxHeight(v.height).Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.search.SetWidth(width)
	v.table.SetWidth(width)
	v.form.SetWidth(min(width, 80))
	v.status.SetWidth(width)
}

// ShortHelp lists the bindings that apply in the current mode.
func (v *View) ShortHelp() []key.Binding {
	switch v.session.Mode() {
	case domain.ModeAdd, domain.ModeEdit:
		return v.keymap.EditorHelp()
	case domain.ModeConfirmDelete:
		return v.keymap.ConfirmHelp()
	default:
		if v.search.Focused() {
			return v.keymap.SearchHelp()
		}
		return v.keymap.BrowseHelp()
	}
}

// SearchFocused reports whether keys are going to the search input.
func (v *View) SearchFocused() bool {
	return v.search.Focused()
}

// StatusMessage returns the text on the left of the status bar.
func (v *View) StatusMessage() string {
	return v.status.Message()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
