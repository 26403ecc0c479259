package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fharpR4/roomie-app/internal/domain"
)

type authScreen int

const (
	screenLogin authScreen = iota
	screenRegister
	screenVerify
)

var otpPattern = regexp.MustCompile(`^\d{6}$`)

// authFlow hosts the signed-out screens. Any route outside login, register
// and verify lands on login; successful sign-in or verification emits
// signedInMsg and the flow is torn down.
type authFlow struct {
	deps   deps
	screen authScreen
	login  loginModel
	reg    registerModel
	verify verifyModel
}

type signInResultMsg struct {
	session domain.Session
	err     error
}

type registerDoneMsg struct {
	email string
	err   error
}

type verifyResultMsg struct {
	session domain.Session
	err     error
}

func newAuthFlow(d deps) authFlow {
	return authFlow{
		deps:   d,
		screen: screenLogin,
		login:  newLoginModel(),
		reg:    newRegisterModel(),
		verify: newVerifyModel(""),
	}
}

func (f authFlow) update(msg tea.Msg) (authFlow, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		f.login.busy = false
		if msg.err != nil {
			// The form stays populated and usable.
			return f, notify(msg.err.Error())
		}
		return f, func() tea.Msg { return signedInMsg{session: msg.session} }

	case registerDoneMsg:
		f.reg.busy = false
		if msg.err != nil {
			return f, notify(msg.err.Error())
		}
		f.screen = screenVerify
		f.verify = newVerifyModel(msg.email)
		return f, notify("Registration successful! Enter the code sent to you.")

	case verifyResultMsg:
		f.verify.busy = false
		if msg.err != nil {
			return f, notify(msg.err.Error())
		}
		return f, func() tea.Msg { return signedInMsg{session: msg.session} }

	case tea.KeyMsg:
		if f.screen == screenLogin && msg.String() == "ctrl+r" {
			f.screen = screenRegister
			f.reg = newRegisterModel()
			return f, nil
		}
		if f.screen != screenLogin && msg.String() == "esc" && f.leaveOnEsc() {
			f.screen = screenLogin
			return f, nil
		}
	}

	switch f.screen {
	case screenRegister:
		var cmd tea.Cmd
		f.reg, cmd = f.reg.update(msg, f.deps)
		return f, cmd
	case screenVerify:
		var cmd tea.Cmd
		f.verify, cmd = f.verify.update(msg, f.deps)
		return f, cmd
	default:
		var cmd tea.Cmd
		f.login, cmd = f.login.update(msg, f.deps)
		return f, cmd
	}
}

// leaveOnEsc keeps esc as an in-form back action while the registration is
// past its first step.
func (f authFlow) leaveOnEsc() bool {
	if f.screen == screenRegister {
		return f.reg.reg.Step() == domain.StepPersonalInfo
	}
	return true
}

func (f authFlow) view(st styles, notice string) string {
	var body string
	switch f.screen {
	case screenRegister:
		body = f.reg.view(st)
	case screenVerify:
		body = f.verify.view(st)
	default:
		body = f.login.view(st)
	}

	sections := []string{st.title.Render("Roomie")}
	if notice != "" {
		sections = append(sections, st.notice.Render(notice))
	}
	sections = append(sections, body)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func notify(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
	)
}

func newInput(placeholder string, secret bool) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	if secret {
		input.EchoMode = textinput.EchoPassword
	}
	return input
}

// --- login ---

type loginModel struct {
	inputs  []textinput.Model
	focus   int
	busy    bool
	spinner spinner.Model
}

func newLoginModel() loginModel {
	inputs := []textinput.Model{
		newInput("Email", false),
		newInput("Password", true),
	}
	inputs[0].Focus()

	return loginModel{inputs: inputs, spinner: newSpinner()}
}

func (m loginModel) update(msg tea.Msg, d deps) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.focus = (m.focus + 1) % len(m.inputs)
			return m.refocus(), nil
		case "shift+tab", "up":
			m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
			return m.refocus(), nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.focus++
				return m.refocus(), nil
			}
			return m.submit(d)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) submit(d deps) (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if email == "" || password == "" {
		return m, notify(domain.ErrFieldsMissing.Error())
	}

	m.busy = true
	signIn := func() tea.Msg {
		session, err := d.sessions.SignIn(d.ctx, email, password)
		return signInResultMsg{session: session, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, signIn)
}

func (m loginModel) refocus() loginModel {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m loginModel) view(st styles) string {
	lines := []string{st.prompt.Render("Sign in")}
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	if m.busy {
		lines = append(lines, m.spinner.View()+" Signing in...")
	}
	lines = append(lines, st.faint.Render("enter submit · ctrl+r register"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// --- register ---

type registerModel struct {
	reg     *domain.Registration
	inputs  []textinput.Model
	focus   int
	busy    bool
	spinner spinner.Model
}

func newRegisterModel() registerModel {
	m := registerModel{reg: domain.NewRegistration(), spinner: newSpinner()}
	m.inputs = m.stepInputs()
	m.inputs[0].Focus()
	return m
}

func (m registerModel) stepInputs() []textinput.Model {
	switch m.reg.Step() {
	case domain.StepSecurity:
		return []textinput.Model{
			newInput("Password (min 8 characters)", true),
			newInput("Confirm password", true),
		}
	case domain.StepVerification:
		return []textinput.Model{
			newInput("National ID (11 digits)", false),
			newInput("Institution", false),
			newInput("Path to student ID document", false),
		}
	default:
		return []textinput.Model{
			newInput("Full name", false),
			newInput("Email", false),
			newInput("Phone (0XXXXXXXXXX)", false),
		}
	}
}

func (m registerModel) update(msg tea.Msg, d deps) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.focus = (m.focus + 1) % len(m.inputs)
			return m.refocus(), nil
		case "shift+tab", "up":
			m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
			return m.refocus(), nil
		case "esc":
			return m.back(), nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.focus++
				return m.refocus(), nil
			}
			return m.advance(d)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// back is the only backward transition; entered data survives.
func (m registerModel) back() registerModel {
	if m.reg.Step() == domain.StepPersonalInfo {
		return m
	}
	m.syncStep()
	m.reg.Back()
	return m.rebuild()
}

// advance syncs the visible fields into the registration, validates the
// current step, and either moves forward or surfaces one notice per violated
// rule. The final step submits.
func (m registerModel) advance(d deps) (registerModel, tea.Cmd) {
	m.syncStep()

	if m.reg.Step() == domain.StepVerification {
		if errs := m.reg.Next(); len(errs) > 0 {
			return m, notify(joinErrors(errs))
		}
		return m.submit(d)
	}

	if errs := m.reg.Next(); len(errs) > 0 {
		return m, notify(joinErrors(errs))
	}
	return m.rebuild(), nil
}

func (m registerModel) submit(d deps) (registerModel, tea.Cmd) {
	m.busy = true
	reg := m.reg
	docPath := strings.TrimSpace(m.inputs[2].Value())

	register := func() tea.Msg {
		_, err := d.sessions.Register(d.ctx, reg, func() (io.ReadCloser, error) {
			return os.Open(docPath)
		})
		return registerDoneMsg{email: reg.Email, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, register)
}

func (m *registerModel) syncStep() {
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = strings.TrimSpace(input.Value())
	}

	switch m.reg.Step() {
	case domain.StepPersonalInfo:
		m.reg.FullName, m.reg.Email, m.reg.Phone = values[0], values[1], values[2]
	case domain.StepSecurity:
		m.reg.Password = m.inputs[0].Value()
		m.reg.ConfirmPassword = m.inputs[1].Value()
	case domain.StepVerification:
		m.reg.NationalID, m.reg.Institution = values[0], values[1]
		m.reg.Document = statDocument(values[2])
	}
}

func (m registerModel) rebuild() registerModel {
	m.inputs = m.stepInputs()
	m.restoreStep()
	m.focus = 0
	return m.refocus()
}

func (m *registerModel) restoreStep() {
	switch m.reg.Step() {
	case domain.StepPersonalInfo:
		m.inputs[0].SetValue(m.reg.FullName)
		m.inputs[1].SetValue(m.reg.Email)
		m.inputs[2].SetValue(m.reg.Phone)
	case domain.StepSecurity:
		m.inputs[0].SetValue(m.reg.Password)
		m.inputs[1].SetValue(m.reg.ConfirmPassword)
	case domain.StepVerification:
		m.inputs[0].SetValue(m.reg.NationalID)
		m.inputs[1].SetValue(m.reg.Institution)
	}
}

func (m registerModel) refocus() registerModel {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m registerModel) view(st styles) string {
	lines := []string{
		st.prompt.Render(fmt.Sprintf("Create account · step %d of 3", m.reg.Step())),
	}
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	if m.busy {
		lines = append(lines, m.spinner.View()+" Registering...")
	}
	hint := "enter next"
	if m.reg.Step() > domain.StepPersonalInfo {
		hint += " · esc back"
	}
	lines = append(lines, st.faint.Render(hint))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// statDocument inspects the selected file so its size can be validated
// before any upload is attempted.
func statDocument(path string) *domain.Document {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return &domain.Document{Name: info.Name(), Size: info.Size()}
}

func joinErrors(errs []error) string {
	return errors.Join(errs...).Error()
}

// --- verify ---

type verifyModel struct {
	email   string
	input   textinput.Model
	busy    bool
	spinner spinner.Model
}

func newVerifyModel(email string) verifyModel {
	input := newInput("6-digit code", false)
	input.CharLimit = 6
	input.Focus()

	return verifyModel{email: email, input: input, spinner: newSpinner()}
}

func (m verifyModel) update(msg tea.Msg, d deps) (verifyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if msg.String() == "enter" {
			return m.submit(d)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m verifyModel) submit(d deps) (verifyModel, tea.Cmd) {
	code := strings.TrimSpace(m.input.Value())
	if !otpPattern.MatchString(code) {
		return m, notify("Please enter the complete verification code")
	}

	m.busy = true
	email := m.email
	verify := func() tea.Msg {
		session, err := d.sessions.VerifyOTP(d.ctx, email, code)
		return verifyResultMsg{session: session, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, verify)
}

func (m verifyModel) view(st styles) string {
	lines := []string{
		st.prompt.Render("Verify account"),
		st.faint.Render("Enter the 6-digit code sent to you."),
		m.input.View(),
	}
	if m.busy {
		lines = append(lines, m.spinner.View()+" Verifying...")
	}
	lines = append(lines, st.faint.Render("enter verify · esc back to sign in"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
