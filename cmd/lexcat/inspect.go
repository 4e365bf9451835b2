package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/aitoroses/chevrotain"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Edit input in a live terminal UI, re-tokenizing on every keystroke",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			catalogFlag,
			&cli.StringFlag{Name: "mode", Usage: "initial lexing mode"},
		},
		Action: runInspect,
	}
}

func runInspect(_ context.Context, cmd *cli.Command) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	lx, err := cat.Build()
	if err != nil {
		return err
	}

	var initial string

	if args := cmd.Args().Slice(); len(args) > 0 {
		data, err := os.ReadFile(args[0]) //#nosec G304 -- path comes from user args
		if err != nil {
			return err
		}

		initial = string(data)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		opts = append(opts, tea.WithInput(nil))
	}

	mode := cmd.String("mode")
	if mode == "" {
		mode = cat.DefaultMode
	}

	_, err = tea.NewProgram(newInspectModel(lx, mode, initial), opts...).Run()

	return err
}

// inspectModel pairs an editable input pane with a read-only token/error
// pane that re-tokenizes the input pane's full contents against lx on every
// Update, so the token pane always reflects exactly what's currently typed.
type inspectModel struct {
	ta     textarea.Model
	vp     viewport.Model
	lx     *chevrotain.Lexer[string]
	mode   string
	styles styles
	ready  bool

	tokenCount int
	errCount   int
}

func newInspectModel(lx *chevrotain.Lexer[string], mode, initial string) *inspectModel {
	ta := textarea.New()
	ta.Placeholder = "type input to tokenize…"
	ta.ShowLineNumbers = true
	ta.SetValue(initial)
	ta.Focus()

	m := &inspectModel{ta: ta, lx: lx, mode: mode, styles: defaultStyles()}
	m.retokenize()

	return m
}

func (m *inspectModel) Init() tea.Cmd { return textarea.Blink }

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		const headerLines, gapLines, helpLines = 2, 2, 1

		inputHeight := msg.Height / 3
		outputHeight := msg.Height - inputHeight - headerLines - gapLines - helpLines

		m.ta.SetWidth(msg.Width)
		m.ta.SetHeight(inputHeight)

		if !m.ready {
			m.vp = viewport.New(msg.Width, outputHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = outputHeight
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.ta, cmd = m.ta.Update(msg)

	m.retokenize()

	return m, cmd
}

// retokenize re-runs Tokenize over the textarea's current contents and
// refreshes the output pane. Called on every Update, so the token/error
// pane is always in sync with what's typed - there is no separate "run"
// action.
func (m *inspectModel) retokenize() {
	res, err := m.lx.Tokenize(m.ta.Value(), m.mode)
	if err != nil {
		m.tokenCount, m.errCount = 0, 0
		if m.ready {
			m.vp.SetContent(m.styles.Error.Render(err.Error()))
		}

		return
	}

	m.tokenCount, m.errCount = len(res.Tokens), len(res.Errors)

	if m.ready {
		m.vp.SetContent(renderTokens(res, m.styles))
	}
}

func renderTokens(res *chevrotain.Result[string], st styles) string {
	var b strings.Builder

	for _, tok := range res.Tokens {
		fmt.Fprintf(&b, "%s %s %s\n",
			st.Position.Render(fmt.Sprintf("%4d:%-3d", tok.StartLine, tok.StartColumn)),
			st.Class.Render(fmt.Sprintf("%-16s", tok.Class)),
			st.Image.Render(fmt.Sprintf("%q", tok.Image)))
	}

	for _, e := range res.Errors {
		fmt.Fprintf(&b, "%s %s\n",
			st.Error.Render("ERROR"),
			st.Position.Render(fmt.Sprintf("%d:%d %s", e.Line, e.Column, e.Message)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *inspectModel) View() string {
	if !m.ready {
		return "initializing…"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "input — %s\n", m.styles.Help.Render("ctrl+c to quit"))
	b.WriteString(m.ta.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d tokens, %d errors\n", m.tokenCount, m.errCount)
	b.WriteString(m.vp.View())

	return b.String()
}
