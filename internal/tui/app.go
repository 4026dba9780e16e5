// Package tui is the interactive terminal frontend: a memo list with add,
// delete and detail views, refreshed every second so reminder countdowns
// and overdue markers stay current.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"reminders/internal/db"
	"reminders/internal/overdue"
	"reminders/internal/scheduler"
)

// reminderTimeLayout is the format users type into the add form.
const reminderTimeLayout = "2006-01-02 15:04"

// View represents the current view
type View int

const (
	ViewList View = iota
	ViewAdd
	ViewDetail
)

// KeyMap defines keybindings
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
	Clear  key.Binding
	Enter  key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

var keys = KeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Clear:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Clear, k.Enter, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Add, k.Delete, k.Clear},
		{k.Back, k.Quit, k.Help},
	}
}

// Form field indices
const (
	fieldText = iota
	fieldRemindAt
	fieldCount
)

// Layout constants
const (
	minWidth       = 50
	maxTableWidth  = 140
	headerHeight   = 3
	footerHeight   = 4
	minTableHeight = 5
)

// Model is the main TUI model
type Model struct {
	db     *db.DB
	engine *scheduler.Engine

	// View state
	currentView View
	width       int
	height      int

	// List view
	memos []*db.Memo
	table table.Model

	// Delete confirmation: modal over the list, defaults to "No"
	confirmDelete      bool
	confirmClearAll    bool
	deleteMemoID       string
	deleteMemoText     string
	deleteConfirmFocus int // 0 = Yes, 1 = No

	// Add form
	textInput      textarea.Model
	remindAtInput  textinput.Model
	formFocus      int
	formValidation map[int]string

	// Detail view
	selectedMemo *db.Memo
	viewport     viewport.Model
	mdRenderer   *glamour.TermRenderer

	// Help
	help     help.Model
	showHelp bool

	// Status
	statusMsg   string
	statusErr   bool
	statusTimer int
}

func calculateTableColumns(width int) []table.Column {
	availableWidth := width - 4
	if availableWidth < minWidth {
		availableWidth = minWidth
	}
	if availableWidth > maxTableWidth {
		availableWidth = maxTableWidth
	}

	statusWidth := 12
	remindWidth := 18
	remaining := availableWidth - statusWidth - remindWidth - 6

	textWidth := remaining * 70 / 100
	createdWidth := remaining - textWidth
	if textWidth < 20 {
		textWidth = 20
	}
	if createdWidth < 12 {
		createdWidth = 12
	}

	return []table.Column{
		{Title: "Memo", Width: textWidth},
		{Title: "Reminder", Width: remindWidth},
		{Title: "Status", Width: statusWidth},
		{Title: "Created", Width: createdWidth},
	}
}

// NewModel creates a new TUI model
func NewModel(database *db.DB, engine *scheduler.Engine) Model {
	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle

	t := table.New(
		table.WithColumns(calculateTableColumns(100)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimTextColor).
		BorderBottom(true).
		Bold(true).
		Foreground(accentColor)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primaryColor).
		Bold(true)
	t.SetStyles(ts)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	m := Model{
		db:             database,
		engine:         engine,
		help:           h,
		table:          t,
		formValidation: make(map[int]string),
		viewport:       viewport.New(80, 20),
		mdRenderer:     renderer,
		deleteConfirmFocus: 1,
	}
	m.initFormInputs()
	return m
}

func (m *Model) initFormInputs() {
	m.textInput = textarea.New()
	m.textInput.Placeholder = "Pick up the dry cleaning..."
	m.textInput.CharLimit = 1000
	m.textInput.SetWidth(m.formInputWidth() + 2)
	m.textInput.SetHeight(5)
	m.textInput.ShowLineNumbers = false

	m.remindAtInput = textinput.New()
	m.remindAtInput.Placeholder = time.Now().Add(time.Hour).Format(reminderTimeLayout) + " (optional)"
	m.remindAtInput.CharLimit = 20
	m.remindAtInput.Width = m.formInputWidth()
}

func (m *Model) formInputWidth() int {
	if m.width == 0 {
		return 50
	}
	width := (m.width - 8) * 80 / 100
	if width < 40 {
		width = 40
	}
	if width > 100 {
		width = 100
	}
	return width
}

func (m *Model) resetForm() {
	m.initFormInputs()
	m.formFocus = fieldText
	m.formValidation = make(map[int]string)
	m.textInput.Focus()
}

func (m *Model) focusFormField(field int) {
	m.textInput.Blur()
	m.remindAtInput.Blur()

	m.formFocus = field
	if field == fieldText {
		m.textInput.Focus()
	} else {
		m.remindAtInput.Focus()
	}
}

func (m *Model) updateTable() {
	if len(m.memos) == 0 {
		m.table.SetRows([]table.Row{})
		return
	}

	columns := m.table.Columns()
	textWidth := 30
	if len(columns) > 0 {
		textWidth = columns[0].Width - 2
	}

	now := time.Now()
	rows := make([]table.Row, len(m.memos))
	for i, memo := range m.memos {
		remindAt := "-"
		status := "-"
		if memo.HasReminder() {
			remindAt = memo.RemindAt.Format(reminderTimeLayout)
			if overdue.IsOverdue(memo.RemindAt, now) {
				status = "⚠ overdue"
			} else {
				status = formatUntil(*memo.RemindAt, now)
			}
		}

		rows[i] = table.Row{
			truncate(memo.Text, textWidth),
			remindAt,
			status,
			memo.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// formatUntil renders how far away a reminder is, in the coarsest useful
// unit.
func formatUntil(t, now time.Time) string {
	diff := t.Sub(now)
	switch {
	case diff < time.Minute:
		return fmt.Sprintf("in %ds", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("in %dm", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("in %dh %dm", int(diff.Hours()), int(diff.Minutes())%60)
	default:
		return fmt.Sprintf("in %dd", int(diff.Hours()/24))
	}
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Messages
type memosLoadedMsg struct{ memos []*db.Memo }
type memoSavedMsg struct{ memo *db.Memo }
type memoDeletedMsg struct{ id string }
type memosClearedMsg struct{}
type errMsg struct{ err error }
type tickMsg time.Time

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadMemos(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) loadMemos() tea.Cmd {
	return func() tea.Msg {
		memos, err := m.db.ListMemos()
		if err != nil {
			return errMsg{err}
		}
		return memosLoadedMsg{memos}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.currentView {
		case ViewList:
			return m.updateList(msg)
		case ViewAdd:
			return m.updateForm(msg)
		case ViewDetail:
			return m.updateDetail(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.table.SetColumns(calculateTableColumns(msg.Width))
		tableWidth := msg.Width - 4
		if tableWidth > maxTableWidth {
			tableWidth = maxTableWidth
		}
		m.table.SetWidth(tableWidth)

		availableHeight := msg.Height - headerHeight - footerHeight - 2
		if availableHeight < minTableHeight {
			availableHeight = minTableHeight
		}
		m.table.SetHeight(availableHeight)

		m.viewport.Width = msg.Width - 6
		m.viewport.Height = msg.Height - headerHeight - footerHeight - 2
		m.help.Width = msg.Width

		m.textInput.SetWidth(m.formInputWidth() + 2)
		m.remindAtInput.Width = m.formInputWidth()

		if renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(msg.Width-10),
		); err == nil {
			m.mdRenderer = renderer
		}

		m.updateTable()

	case tickMsg:
		m.updateTable()

		if m.statusTimer > 0 {
			m.statusTimer--
			if m.statusTimer == 0 {
				m.statusMsg = ""
			}
		}

		cmds = append(cmds, tickCmd(), m.loadMemos())

	case memosLoadedMsg:
		m.memos = msg.memos
		m.updateTable()

	case memoSavedMsg:
		m.setStatus("Memo saved", false)
		m.currentView = ViewList
		cmds = append(cmds, m.loadMemos())

	case memoDeletedMsg:
		m.setStatus("Memo deleted", false)
		cmds = append(cmds, m.loadMemos())

	case memosClearedMsg:
		m.setStatus("All memos deleted", false)
		cmds = append(cmds, m.loadMemos())

	case errMsg:
		m.setStatus("Error: "+msg.err.Error(), true)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.confirmDelete || m.confirmClearAll {
		return m.updateConfirm(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "a":
		m.currentView = ViewAdd
		m.resetForm()
		return m, textinput.Blink
	case "d":
		if len(m.memos) > 0 {
			idx := m.table.Cursor()
			if idx < len(m.memos) {
				m.confirmDelete = true
				m.deleteMemoID = m.memos[idx].ID
				m.deleteMemoText = m.memos[idx].Text
				m.deleteConfirmFocus = 1 // default to No
			}
		}
		return m, nil
	case "C":
		if len(m.memos) > 0 {
			m.confirmClearAll = true
			m.deleteConfirmFocus = 1
		}
		return m, nil
	case "enter":
		if len(m.memos) > 0 {
			idx := m.table.Cursor()
			if idx < len(m.memos) {
				m.selectedMemo = m.memos[idx]
				m.currentView = ViewDetail
				m.viewport.SetContent(m.renderDetailContent())
				m.viewport.GotoTop()
			}
		}
		return m, nil
	default:
		if len(m.memos) > 0 {
			m.table, cmd = m.table.Update(msg)
		}
	}

	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirm := func() (tea.Model, tea.Cmd) {
		clearAll := m.confirmClearAll
		id := m.deleteMemoID
		m.confirmDelete = false
		m.confirmClearAll = false
		m.deleteMemoID = ""
		m.deleteMemoText = ""
		m.deleteConfirmFocus = 1
		if clearAll {
			return m, m.clearAllMemos()
		}
		return m, m.deleteMemo(id)
	}
	dismiss := func() (tea.Model, tea.Cmd) {
		m.confirmDelete = false
		m.confirmClearAll = false
		m.deleteMemoID = ""
		m.deleteMemoText = ""
		m.deleteConfirmFocus = 1
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		m.deleteConfirmFocus = 0
	case "right", "l":
		m.deleteConfirmFocus = 1
	case "tab":
		m.deleteConfirmFocus = (m.deleteConfirmFocus + 1) % 2
	case "y", "Y":
		return confirm()
	case "enter":
		if m.deleteConfirmFocus == 0 {
			return confirm()
		}
		return dismiss()
	case "n", "N", "esc":
		return dismiss()
	}
	return m, nil
}

// validateForm checks the form and returns true when it can be submitted.
func (m *Model) validateForm() bool {
	m.formValidation = make(map[int]string)
	valid := true

	if strings.TrimSpace(m.textInput.Value()) == "" {
		m.formValidation[fieldText] = "Memo text is required"
		valid = false
	}

	if raw := strings.TrimSpace(m.remindAtInput.Value()); raw != "" {
		if _, err := time.ParseInLocation(reminderTimeLayout, raw, time.Local); err != nil {
			m.formValidation[fieldRemindAt] = "Use YYYY-MM-DD HH:MM"
			valid = false
		}
	}

	return valid
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc":
		m.currentView = ViewList
		m.resetForm()
		return m, nil
	case "tab":
		m.focusFormField((m.formFocus + 1) % fieldCount)
		m.validateForm()
		return m, textinput.Blink
	case "shift+tab":
		prev := m.formFocus - 1
		if prev < 0 {
			prev = fieldCount - 1
		}
		m.focusFormField(prev)
		m.validateForm()
		return m, textinput.Blink
	case "ctrl+s":
		if m.validateForm() {
			return m, m.saveMemo()
		}
		return m, nil
	case "enter":
		// Enter inside the memo textarea adds a newline.
		if m.formFocus == fieldText {
			m.textInput, cmd = m.textInput.Update(msg)
			m.validateForm()
			return m, cmd
		}
		if m.validateForm() {
			return m, m.saveMemo()
		}
		return m, nil
	}

	if m.formFocus == fieldText {
		m.textInput, cmd = m.textInput.Update(msg)
	} else {
		m.remindAtInput, cmd = m.remindAtInput.Update(msg)
	}
	m.validateForm()

	return m, cmd
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc", "q":
		m.currentView = ViewList
		return m, nil
	case "d":
		m.currentView = ViewList
		m.confirmDelete = true
		m.deleteMemoID = m.selectedMemo.ID
		m.deleteMemoText = m.selectedMemo.Text
		m.deleteConfirmFocus = 1
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) saveMemo() tea.Cmd {
	return func() tea.Msg {
		text := strings.TrimSpace(m.textInput.Value())
		if text == "" {
			return errMsg{fmt.Errorf("memo text is required")}
		}

		memo := &db.Memo{Text: text}
		if raw := strings.TrimSpace(m.remindAtInput.Value()); raw != "" {
			at, err := time.ParseInLocation(reminderTimeLayout, raw, time.Local)
			if err != nil {
				return errMsg{fmt.Errorf("invalid reminder time: %w", err)}
			}
			memo.RemindAt = &at
		}

		if err := m.db.CreateMemo(memo); err != nil {
			return errMsg{err}
		}
		// engine is nil in client mode; the daemon's resync picks this up.
		if m.engine != nil {
			m.engine.Register(memo)
		}

		return memoSavedMsg{memo}
	}
}

func (m *Model) deleteMemo(id string) tea.Cmd {
	return func() tea.Msg {
		if m.engine != nil {
			m.engine.Cancel(id)
		}
		if err := m.db.DeleteMemo(id); err != nil {
			return errMsg{err}
		}
		return memoDeletedMsg{id}
	}
}

func (m *Model) clearAllMemos() tea.Cmd {
	return func() tea.Msg {
		if err := m.db.DeleteAllMemos(); err != nil {
			return errMsg{err}
		}
		if m.engine != nil {
			if err := m.engine.Resync(); err != nil {
				return errMsg{err}
			}
		}
		return memosClearedMsg{}
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTimer = 5
}

func (m Model) View() string {
	var content string

	switch m.currentView {
	case ViewList:
		content = m.renderList()
	case ViewAdd:
		content = m.renderForm()
	case ViewDetail:
		content = m.renderDetail()
	}

	baseView := appStyle.Render(content)

	if m.confirmDelete || m.confirmClearAll {
		return m.renderConfirmModal()
	}

	return baseView
}

func (m Model) renderConfirmModal() string {
	activeButtonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primaryColor).
		Padding(0, 3).
		MarginRight(2).
		Bold(true)

	inactiveButtonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#666666")).
		Padding(0, 3).
		MarginRight(2)

	var yesBtn, noBtn string
	if m.deleteConfirmFocus == 0 {
		yesBtn = activeButtonStyle.Render("Yes")
		noBtn = inactiveButtonStyle.Render("No")
	} else {
		yesBtn = inactiveButtonStyle.Render("Yes")
		noBtn = activeButtonStyle.Render("No")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, noBtn)

	prompt := "Delete all memos?"
	if m.confirmDelete {
		prompt = fmt.Sprintf("Delete memo %q?", truncate(m.deleteMemoText, 40))
	}
	question := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		MarginBottom(1).
		Render(prompt)

	hint := subtitleStyle.Render("←/→ to select • enter to confirm • esc to cancel")

	modalContent := lipgloss.JoinVertical(lipgloss.Center, question, "", buttons, "", hint)

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(errorColor).
		Padding(1, 4).
		Align(lipgloss.Center)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(modalContent),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#333333")),
	)
}

func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(logoStyle.Render("Reminders"))

	now := time.Now()
	overdueCount := 0
	for _, memo := range m.memos {
		if overdue.IsOverdue(memo.RemindAt, now) {
			overdueCount++
		}
	}
	if overdueCount > 0 {
		b.WriteString("  ")
		b.WriteString(overdueStyle.Render(fmt.Sprintf("⚠ %d overdue", overdueCount)))
	}
	b.WriteString("\n\n")

	if len(m.memos) == 0 {
		b.WriteString(emptyBoxStyle.Render("No memos yet\n\nPress 'a' to add your first memo"))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")

	if m.statusMsg != "" {
		if m.statusErr {
			b.WriteString(errorMsgStyle.Render("✗ " + m.statusMsg))
		} else {
			b.WriteString(successMsgStyle.Render("✓ " + m.statusMsg))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(keys.ShortHelp()))
	}

	return b.String()
}

func (m Model) renderForm() string {
	var b strings.Builder

	b.WriteString(logoStyle.Render("New Memo"))
	b.WriteString("\n\n")

	b.WriteString(inputLabelStyle.Render("Memo"))
	if errText, ok := m.formValidation[fieldText]; ok {
		b.WriteString("  ")
		b.WriteString(errorMsgStyle.Render("✗ " + errText))
	}
	b.WriteString("\n")
	if m.formFocus == fieldText {
		b.WriteString(focusedInputStyle.Render(m.textInput.View()))
	} else {
		b.WriteString(blurredInputStyle.Render(m.textInput.View()))
	}
	b.WriteString("\n\n")

	b.WriteString(inputLabelStyle.Render("Remind At"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("local time, leave empty for no reminder"))
	if errText, ok := m.formValidation[fieldRemindAt]; ok {
		b.WriteString("  ")
		b.WriteString(errorMsgStyle.Render("✗ " + errText))
	}
	b.WriteString("\n")
	if m.formFocus == fieldRemindAt {
		b.WriteString(focusedInputStyle.Render(m.remindAtInput.View()))
	} else {
		b.WriteString(blurredInputStyle.Render(m.remindAtInput.View()))
	}
	b.WriteString("\n\n")

	helpText := helpKeyStyle.Render("tab") + helpDescStyle.Render(" next • ") +
		helpKeyStyle.Render("ctrl+s") + helpDescStyle.Render(" save • ") +
		helpKeyStyle.Render("esc") + helpDescStyle.Render(" cancel")
	b.WriteString(helpText)

	return b.String()
}

func (m Model) renderDetail() string {
	var b strings.Builder

	b.WriteString(logoStyle.Render("Memo"))
	b.WriteString("  ")
	if m.selectedMemo.HasReminder() {
		if overdue.IsOverdue(m.selectedMemo.RemindAt, time.Now()) {
			b.WriteString(overdueStyle.Render("⚠ overdue"))
		} else {
			b.WriteString(statusOK.Render("● " + m.selectedMemo.RemindAt.Format(reminderTimeLayout)))
		}
	} else {
		b.WriteString(statusPending.Render("no reminder"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	helpText := helpKeyStyle.Render("↑/↓") + helpDescStyle.Render(" scroll • ") +
		helpKeyStyle.Render("d") + helpDescStyle.Render(" delete • ") +
		helpKeyStyle.Render("esc") + helpDescStyle.Render(" back")
	b.WriteString(helpText)

	return b.String()
}

func (m Model) renderDetailContent() string {
	memo := m.selectedMemo
	if memo == nil {
		return ""
	}

	var b strings.Builder
	if m.mdRenderer != nil {
		if rendered, err := m.mdRenderer.Render(memo.Text); err == nil {
			b.WriteString(rendered)
		} else {
			b.WriteString(memo.Text)
			b.WriteString("\n")
		}
	} else {
		b.WriteString(memo.Text)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Created " + memo.CreatedAt.Format(reminderTimeLayout)))
	return b.String()
}

// Run starts the TUI application
func Run(database *db.DB, engine *scheduler.Engine) error {
	m := NewModel(database, engine)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
