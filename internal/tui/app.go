// Package tui implements the glade dashboard: a list of workspaces with
// attach, create, and safety-gated cleanup.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glade/internal/forge"
	"glade/internal/model"
	"glade/internal/safety"
	"glade/internal/tmux"
	"glade/internal/workspace"
)

// — state ———————————————————————————————————————————————————————————————————

type appState int

const (
	stateNormal appState = iota
	stateNewWorkspace
	stateCleanupConfirm
)

// — styles ——————————————————————————————————————————————————————————————————

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("114")).
			MarginLeft(2)

	dimStyle  = lipgloss.NewStyle().Faint(true)
	boldStyle = lipgloss.NewStyle().Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(2)

	detailHeadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("114"))

	labelStyle = lipgloss.NewStyle().Faint(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("114")).
			Padding(1, 3).
			Width(62)

	cleanupModalStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("196")).
				Padding(1, 3).
				Width(62)
)

// — messages ————————————————————————————————————————————————————————————————

type entry struct {
	ws     model.Workspace
	report safety.Report
}

type workspacesLoadedMsg struct {
	entries []entry
	err     error
}

type workspaceCreatedMsg struct {
	branch string
	err    error
}

type sessionReadyMsg struct {
	session string
	err     error
}

type attachExitedMsg struct {
	err error
}

type cleanupDoneMsg struct {
	err error
}

// — list item ———————————————————————————————————————————————————————————————

type workspaceItem struct {
	e entry
}

func (i workspaceItem) Title() string {
	indicator := " "
	switch {
	case !i.e.report.Clean():
		indicator = warnStyle.Render("●")
	case i.e.ws.TmuxRunning:
		indicator = okStyle.Render("●")
	}
	return indicator + " " + i.e.ws.Branch
}

func (i workspaceItem) Description() string {
	var parts []string
	if i.e.report.HasUncommittedChanges {
		parts = append(parts, "dirty")
	}
	if n := i.e.report.UnpushedCommits; n > 0 {
		parts = append(parts, fmt.Sprintf("%d ahead", n))
	}
	if len(parts) == 0 {
		parts = append(parts, "clean")
	}
	return strings.Join(parts, ", ")
}

func (i workspaceItem) FilterValue() string { return i.e.ws.Branch }

// — model ———————————————————————————————————————————————————————————————————

type Model struct {
	ctx     *workspace.Context
	fetcher forge.Fetcher

	list    list.Model
	entries []entry
	width   int
	height  int
	loading bool
	err     error

	state     appState
	nameInput textinput.Model
	inputErr  string

	// cleanup confirmation state
	cleanupTarget *entry
	cleanupForced bool
}

// New builds the dashboard model for a loaded context.
func New(ctx *workspace.Context) Model {
	delegate := list.NewDefaultDelegate()

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Workspaces · " + ctx.Project
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = titleStyle

	ti := textinput.New()
	ti.Placeholder = "e.g. feat/payment-retries"
	ti.CharLimit = 100

	return Model{
		ctx:       ctx,
		fetcher:   forge.Detect(ctx.RepoRoot),
		list:      l,
		loading:   true,
		nameInput: ti,
	}
}

// — commands ————————————————————————————————————————————————————————————————

// fetchWorkspaces loads every workspace with a fresh safety report.
// Sequential on purpose: each step is a quick local git query.
func (m Model) fetchWorkspaces() tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		workspaces, err := ctx.Workspaces()
		if err != nil {
			return workspacesLoadedMsg{err: err}
		}

		running := make(map[string]bool)
		for _, name := range tmux.ListSessions() {
			running[name] = true
		}

		entries := make([]entry, 0, len(workspaces))
		for _, ws := range workspaces {
			ws.TmuxRunning = running[ctx.SessionName(ws.Branch)]
			if fetcher != nil {
				ws.PR, _ = fetcher.FetchPR(ws.Branch)
			}
			entries = append(entries, entry{
				ws:     ws,
				report: safety.BuildReport(ctx.Git, ws.Path, ws.Branch),
			})
		}
		return workspacesLoadedMsg{entries: entries}
	}
}

func (m Model) createWorkspace(branch string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		path := ctx.PathFor(branch)
		newBranch := !ctx.Git.BranchExists(ctx.RepoRoot, branch)
		err := ctx.Git.AddWorktree(ctx.RepoRoot, path, branch, ctx.BaseBranch(), newBranch)
		return workspaceCreatedMsg{branch: branch, err: err}
	}
}

func (m Model) ensureSession(branch, path string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		session := ctx.SessionName(branch)
		if err := tmux.EnsureSession(session, path, branch); err != nil {
			return sessionReadyMsg{err: err}
		}
		return sessionReadyMsg{session: session}
	}
}

func (m Model) cleanupWorkspace(target entry, force bool) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		// Re-validate right before destruction; the modal's report may
		// be stale.
		report := safety.BuildReport(ctx.Git, target.ws.Path, target.ws.Branch)
		decision := safety.Decide(report, force)
		if decision.Verdict == safety.Blocked {
			return cleanupDoneMsg{err: fmt.Errorf("blocked: %s", strings.Join(decision.Reasons, "; "))}
		}

		_ = tmux.KillSession(ctx.SessionName(target.ws.Branch))
		if err := ctx.Git.RemoveWorktree(ctx.RepoRoot, target.ws.Path); err != nil {
			return cleanupDoneMsg{err: err}
		}
		_ = ctx.Git.DeleteBranch(ctx.RepoRoot, target.ws.Branch)
		return cleanupDoneMsg{}
	}
}

// — tea.Model ———————————————————————————————————————————————————————————————

func (m Model) Init() tea.Cmd {
	return m.fetchWorkspaces()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lw, lh := m.listDimensions()
		m.list.SetSize(lw, lh)
		return m, nil

	case workspacesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.entries = msg.entries
		items := make([]list.Item, len(m.entries))
		for i, e := range m.entries {
			items[i] = workspaceItem{e: e}
		}
		m.list.SetItems(items)
		return m, nil

	case workspaceCreatedMsg:
		if msg.err != nil {
			m.inputErr = msg.err.Error()
			return m, nil
		}
		m.state = stateNormal
		m.inputErr = ""
		m.nameInput.Reset()
		m.nameInput.Blur()
		return m, m.ensureSession(msg.branch, m.ctx.PathFor(msg.branch))

	case sessionReadyMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, tea.ExecProcess(tmux.AttachCmd(msg.session), func(err error) tea.Msg {
			return attachExitedMsg{err: err}
		})

	case attachExitedMsg:
		m.loading = true
		return m, m.fetchWorkspaces()

	case cleanupDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateNormal
			m.cleanupTarget = nil
			return m, nil
		}
		m.state = stateNormal
		m.inputErr = ""
		m.cleanupTarget = nil
		m.loading = true
		return m, m.fetchWorkspaces()
	}

	switch m.state {
	case stateNewWorkspace:
		return m.updateNewWorkspace(msg)
	case stateCleanupConfirm:
		return m.updateCleanupConfirm(msg)
	default:
		return m.updateNormal(msg)
	}
}

func (m Model) updateNormal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.fetchWorkspaces()
		case "n":
			m.state = stateNewWorkspace
			m.inputErr = ""
			m.nameInput.Reset()
			m.nameInput.Focus()
			return m, textinput.Blink
		case "d":
			if e := m.selectedEntry(); e != nil {
				m.state = stateCleanupConfirm
				m.cleanupTarget = e
				m.cleanupForced = false
				m.inputErr = ""
			}
			return m, nil
		case "enter":
			if e := m.selectedEntry(); e != nil {
				return m, m.ensureSession(e.ws.Branch, e.ws.Path)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateNewWorkspace(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.state = stateNormal
			m.inputErr = ""
			m.nameInput.Blur()
			return m, nil
		case "enter":
			branch := strings.TrimSpace(m.nameInput.Value())
			if branch == "" {
				m.inputErr = "branch name cannot be empty"
				return m, nil
			}
			m.inputErr = ""
			return m, m.createWorkspace(branch)
		}
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateCleanupConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	target := m.cleanupTarget
	if target == nil {
		m.state = stateNormal
		return m, nil
	}

	blocked := safety.Decide(target.report, false).Verdict == safety.Blocked

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "n", "N":
			m.state = stateNormal
			m.cleanupTarget = nil
			m.inputErr = ""
			return m, nil
		case "f", "F":
			if blocked {
				m.cleanupForced = true
			}
			return m, nil
		case "enter", "y", "Y":
			if blocked && !m.cleanupForced {
				// Blocked stays blocked until the force toggle.
				return m, nil
			}
			return m, m.cleanupWorkspace(*target, m.cleanupForced)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(1, 2).Render("Loading workspaces…")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			fmt.Sprintf("Error: %v\n\nPress r to retry, q to quit.", m.err),
		)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.renderDetail())
	base := lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelp())

	switch m.state {
	case stateNewWorkspace:
		return m.renderNewModal()
	case stateCleanupConfirm:
		return m.renderCleanupModal()
	}
	return base
}

// — layout helpers ——————————————————————————————————————————————————————————

func (m Model) listDimensions() (width, height int) {
	return m.width / 3, m.height - 2
}

func (m Model) renderDetail() string {
	lw, _ := m.listDimensions()
	dw := m.width - lw
	dh := m.height - 2

	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		PaddingLeft(3).
		PaddingRight(2).
		Width(dw - 1).
		Height(dh)

	contentWidth := (dw - 1) - 3 - 2

	e := m.selectedEntry()
	if e == nil {
		return style.Render(dimStyle.Render("No workspaces yet. Press n to create one."))
	}

	row := func(lbl, val string) string {
		return labelStyle.Render(lbl) + val + "\n"
	}

	var sessionVal string
	if e.ws.TmuxRunning {
		sessionVal = okStyle.Render("● running")
	} else {
		sessionVal = dimStyle.Render("stopped")
	}

	sep := dimStyle.Render(strings.Repeat("─", max(contentWidth, 0)))

	var b strings.Builder
	b.WriteString(detailHeadStyle.Render(e.ws.Branch) + "\n\n")
	b.WriteString(row("Slug     ", e.ws.Slug))
	b.WriteString(row("Path     ", e.ws.Path))
	b.WriteString(row("Session  ", sessionVal))
	b.WriteString("\n" + sep + "\n\n")
	b.WriteString(renderReport(e.report))

	if e.ws.PR != nil {
		b.WriteString("\n" + sep + "\n\n")
		b.WriteString(renderPR(e.ws.PR))
	}

	return style.Render(b.String())
}

func renderReport(r safety.Report) string {
	row := func(lbl, val string) string {
		return labelStyle.Render(lbl) + val + "\n"
	}

	var b strings.Builder
	if r.Clean() {
		b.WriteString(row("Safety   ", okStyle.Render("clean, removable")))
		return b.String()
	}

	if r.HasUncommittedChanges {
		b.WriteString(row("Changes  ", warnStyle.Render("uncommitted changes")))
	}
	if r.UnpushedCommits > 0 {
		val := warnStyle.Render(fmt.Sprintf("%d unpushed commit(s)", r.UnpushedCommits))
		if !r.RemoteRefExists {
			val += " " + errStyle.Render("(no remote ref)")
		}
		b.WriteString(row("Commits  ", val))
		for _, c := range r.RecentUnpushed {
			b.WriteString("         " + dimStyle.Render(c.Hash) + " " + c.Subject + "\n")
		}
	}
	for _, check := range r.Indeterminate {
		b.WriteString(row("Unknown  ", errStyle.Render("could not verify "+check)))
	}
	return b.String()
}

func renderPR(pr *model.PR) string {
	row := func(lbl, val string) string {
		return labelStyle.Render(lbl) + val + "\n"
	}

	var stateStr string
	switch pr.State {
	case "merged":
		stateStr = okStyle.Render("merged")
	case "open":
		stateStr = warnStyle.Render("open")
	default:
		stateStr = dimStyle.Render(pr.State)
	}

	var b strings.Builder
	b.WriteString(row("PR       ", fmt.Sprintf("#%d %s", pr.Number, pr.Title)))
	b.WriteString(row("State    ", stateStr))
	if pr.PipelineStatus != "" {
		b.WriteString(row("Checks   ", pr.PipelineStatus))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	var text string
	switch m.state {
	case stateNewWorkspace:
		text = "Enter create   Esc cancel"
	case stateCleanupConfirm:
		text = "y/Enter confirm   f force   n/Esc cancel"
	default:
		text = "↑/↓ navigate   Enter attach   n new   d cleanup   r refresh   q quit"
	}
	sep := dimStyle.Render(strings.Repeat("─", m.width))
	return sep + "\n" + helpStyle.Render(text)
}

func (m Model) renderNewModal() string {
	var b strings.Builder
	b.WriteString(boldStyle.Render("New Workspace") + "\n\n")
	b.WriteString("Branch name\n")
	b.WriteString(m.nameInput.View() + "\n")
	if m.inputErr != "" {
		b.WriteString("\n" + errStyle.Render(m.inputErr) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("Creates a worktree and tmux session, then attaches"))

	modal := modalStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceBackground(lipgloss.Color("0")),
	)
}

func (m Model) renderCleanupModal() string {
	e := m.cleanupTarget
	var b strings.Builder
	b.WriteString(errStyle.Render("Remove Workspace") + "\n\n")
	if e != nil {
		b.WriteString(labelStyle.Render("Branch   ") + e.ws.Branch + "\n")
		b.WriteString(labelStyle.Render("Path     ") + e.ws.Path + "\n\n")
		b.WriteString(renderReport(e.report))

		if e.ws.PR != nil && e.ws.PR.State == "merged" {
			b.WriteString("\n" + okStyle.Render("PR is merged, safe to clean up") + "\n")
		} else if e.ws.PR != nil && e.ws.PR.State == "open" {
			b.WriteString("\n" + warnStyle.Render("⚠  PR is still open") + "\n")
		}

		if safety.Decide(e.report, false).Verdict == safety.Blocked {
			if m.cleanupForced {
				b.WriteString("\n" + errStyle.Render("force armed: Enter will discard the work above") + "\n")
			} else {
				b.WriteString("\n" + errStyle.Render("blocked, press f to force") + "\n")
			}
		}
	}
	if m.inputErr != "" {
		b.WriteString("\n" + errStyle.Render(m.inputErr) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("y/Enter confirm · f force · Esc/n cancel"))

	modal := cleanupModalStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceBackground(lipgloss.Color("0")),
	)
}

func (m Model) selectedEntry() *entry {
	if len(m.entries) == 0 {
		return nil
	}
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.entries) {
		return nil
	}
	return &m.entries[idx]
}
