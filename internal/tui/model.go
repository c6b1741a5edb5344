package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/progen-bio/vcfview/internal/output"
	"github.com/progen-bio/vcfview/internal/session"
	"github.com/progen-bio/vcfview/internal/vcf"
)

// loadedMsg delivers a completely parsed record set back to the event loop.
type loadedMsg struct {
	set *vcf.RecordSet
}

// loadFailedMsg reports a failed load. The previous record set stays visible.
type loadFailedMsg struct {
	path string
	err  error
}

const detailHeight = 11

// Options configures a viewer instance.
type Options struct {
	Path     string // file to load on startup, may be empty
	Mode     vcf.ReaderMode
	PassOnly bool // initial state of the pass-only toggle
	Theme    string
	Logger   *zap.Logger
}

// Model is the bubbletea model for the viewer.
type Model struct {
	session *session.Session
	mode    vcf.ReaderMode
	logger  *zap.Logger

	table       table.Model
	filterInput textinput.Model
	pathInput   textinput.Model
	detail      viewport.Model
	styles      Styles

	width  int
	height int

	fileName   string
	status     string
	errText    string
	loading    bool
	filterMode bool // filter input focused
	openMode   bool // path prompt focused
}

// New creates a viewer model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	styles := NewStyles(ThemeByName(opts.Theme))

	cols := output.Columns()
	tableCols := make([]table.Column, len(cols))
	for i, c := range cols {
		tableCols[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	t := table.New(
		table.WithColumns(tableCols),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		Bold(true).
		Foreground(styles.Theme.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Theme.Border).
		BorderBottom(true)
	ts.Selected = ts.Selected.
		Foreground(styles.Theme.Foreground).
		Background(styles.Theme.Primary)
	t.SetStyles(ts)

	fi := textinput.New()
	fi.Placeholder = "Search Chrom/ID/Info..."
	fi.CharLimit = 100
	fi.Width = 40

	pi := textinput.New()
	pi.Placeholder = "Path to .vcf or .vcf.gz..."
	pi.CharLimit = 400
	pi.Width = 60

	sess := session.New()
	sess.SetPassOnly(opts.PassOnly)

	m := Model{
		session:     sess,
		mode:        opts.Mode,
		logger:      logger,
		table:       t,
		filterInput: fi,
		pathInput:   pi,
		detail:      viewport.New(80, detailHeight),
		styles:      styles,
		status:      "Ready",
	}

	if opts.Path != "" {
		m.fileName = filepath.Base(opts.Path)
		m.pathInput.SetValue(opts.Path)
		m.status = "Parsing..."
		m.loading = true
	}

	return m
}

// Init starts the initial load when a path was given on the command line.
func (m Model) Init() tea.Cmd {
	if m.loading {
		return loadCmd(m.pathInput.Value(), m.mode, m.logger)
	}
	return nil
}

// loadCmd parses the file off the event loop and marshals the finished set
// back as a message.
func loadCmd(path string, mode vcf.ReaderMode, logger *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		set, err := vcf.Load(path, vcf.LoadOptions{Mode: mode, Logger: logger})
		if err != nil {
			return loadFailedMsg{path: path, err: err}
		}
		return loadedMsg{set: set}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(5, m.height-detailHeight-7))
		m.detail.Width = msg.Width
		return m, nil

	case loadedMsg:
		m.loading = false
		m.errText = ""
		m.fileName = filepath.Base(msg.set.Path)
		m.status = "Loaded: " + m.fileName
		m.session.SetRecords(msg.set)
		m.syncTable()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.status = "Error loading file"
		m.errText = fmt.Sprintf("Error:\n%v", msg.err)
		m.detail.SetContent(m.styles.Error.Render(m.errText))
		return m, nil

	case tea.KeyMsg:
		if m.openMode {
			return m.updateOpenPrompt(msg)
		}
		if m.filterMode {
			return m.updateFilterInput(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.filterMode = true
			m.filterInput.Focus()
			return m, nil
		case "p":
			m.session.SetPassOnly(!m.session.Criteria().PassOnly)
			m.syncTable()
			return m, nil
		case "o":
			m.openMode = true
			m.pathInput.Focus()
			return m, nil
		case "esc":
			if m.filterInput.Value() != "" {
				m.filterInput.SetValue("")
				m.session.SetQuery("")
				m.syncTable()
			}
			return m, nil
		}
	}

	prevCursor := m.table.Cursor()
	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)

	// A new selection replaces any lingering load-error text
	if m.errText != "" && m.table.Cursor() != prevCursor {
		m.errText = ""
	}
	m.syncDetail()

	return m, tea.Batch(cmds...)
}

// updateFilterInput routes keys to the filter field and re-filters on every
// keystroke.
func (m Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	case "esc":
		m.filterMode = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.session.SetQuery("")
		m.syncTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.session.SetQuery(m.filterInput.Value())
	m.syncTable()
	return m, cmd
}

// updateOpenPrompt routes keys to the path prompt.
func (m Model) updateOpenPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		m.openMode = false
		m.pathInput.Blur()
		if path == "" {
			return m, nil
		}
		m.loading = true
		m.status = "Parsing..."
		return m, loadCmd(path, m.mode, m.logger)
	case "esc":
		m.openMode = false
		m.pathInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// syncTable rebuilds the table rows from the visible set. The whole backing
// slice is replaced; there is no incremental diffing.
func (m *Model) syncTable() {
	visible := m.session.Visible()
	cols := output.Columns()

	rows := make([]table.Row, visible.Len())
	for i, r := range visible.Records {
		cells := output.Row(r)
		for col, c := range cols {
			if c.Align == output.AlignRight {
				cells[col] = padLeft(cells[col], c.Width)
			}
		}
		rows[i] = cells
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(maxInt(0, len(rows)-1))
	}
	m.syncDetail()
}

// syncDetail renders the detail block for the selected row.
func (m *Model) syncDetail() {
	if m.errText != "" {
		return
	}
	rec := m.session.Visible().At(m.table.Cursor())
	if rec == nil {
		m.detail.SetContent(m.styles.Muted.Render("Select a variant to view full details..."))
		return
	}
	m.detail.SetContent(output.Detail(rec))
}

// View renders the page.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" VCF Viewer "))
	if m.fileName != "" {
		sb.WriteString("  " + m.styles.Info.Render(m.fileName))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.renderFilterBar())
	sb.WriteString("\n")

	if m.openMode {
		sb.WriteString(m.styles.Filter.Render("Open: "+m.pathInput.View()) + "\n")
	}

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Detail.Render(m.detail.View()))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

// renderFilterBar renders the filter input and the pass-only toggle.
func (m Model) renderFilterBar() string {
	style := m.styles.Filter
	if m.filterMode {
		style = style.BorderForeground(m.styles.Theme.Primary)
	}

	toggle := "[ ] PASS only"
	if m.session.Criteria().PassOnly {
		toggle = "[x] PASS only"
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		style.Render(m.filterInput.View()),
		"  ",
		m.styles.Toggle.Render(toggle),
	)
}

// renderStatusBar renders the record counts, the status text and key hints.
func (m Model) renderStatusBar() string {
	visible, total := m.session.Counts()

	var parts []string
	parts = append(parts, m.styles.Info.Render(fmt.Sprintf("Variants: %d/%d", visible, total)))
	if m.loading {
		parts = append(parts, m.styles.Muted.Render("Parsing..."))
	} else {
		parts = append(parts, m.styles.Muted.Render(m.status))
	}
	parts = append(parts, m.styles.Muted.Render("/ search · p pass-only · o open · q quit"))

	return strings.Join(parts, "  ")
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
