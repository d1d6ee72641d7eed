// Package tui implements the interactive single-page form: a manual-entry
// tab with income and expense rows, an AI tab with a free-text prompt, live
// derived totals and spreadsheet export. It is a thin event loop over the
// session controller; all state changes go through session operations.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/currency"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/exporter"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/extractor"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/logging"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/session"
)

type focusArea int

const (
	focusIncome focusArea = iota
	focusRows
)

const (
	colName = iota
	colAmount
)

// analyzeResultMsg delivers the outcome of an AI analysis back to the event
// loop. The session is only touched from Update, never from the command
// goroutine.
type analyzeResultMsg struct {
	result extractor.Result
	err    error
}

type expenseInputs struct {
	id     string
	name   textinput.Model
	amount textinput.Model
}

// Model is the bubbletea model of the form.
type Model struct {
	sess   *session.Session
	ext    *extractor.Extractor
	styles Styles
	log    logging.Logger

	income    textinput.Model
	rows      []expenseInputs
	rowCursor int
	col       int
	area      focusArea

	aiText textarea.Model
	spin   spinner.Model

	exportPath string
	status     string
	width      int
}

// New creates the form model.
func New(sess *session.Session, ext *extractor.Extractor, exportPath string, logger logging.Logger) *Model {
	if logger == nil {
		logger = logging.GetLogger()
	}

	income := textinput.New()
	income.Placeholder = "VD: 15000000"
	income.CharLimit = 32
	income.Width = 28
	income.Focus()

	aiText := textarea.New()
	aiText.Placeholder = "Ví dụ: Tháng này mình nhận lương 15 triệu. Mình đã tiêu 3 triệu tiền ăn, 4 triệu tiền nhà, và 500k tiền điện nước..."
	aiText.SetWidth(48)
	aiText.SetHeight(6)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		sess:       sess,
		ext:        ext,
		styles:     DefaultStyles(),
		log:        logger,
		income:     income,
		aiText:     aiText,
		spin:       spin,
		exportPath: exportPath,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case analyzeResultMsg:
		m.sess.FinishAnalyze(msg.result, msg.err)
		if msg.err == nil {
			m.syncFromLedger()
			m.area = focusIncome
			m.refreshFocus()
			m.status = "Đã phân tích xong, mời bạn kiểm tra lại."
		}
		return m, nil

	case spinner.TickMsg:
		if !m.sess.Analyzing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+t":
			if m.sess.View() == session.ViewManual {
				m.sess.SetView(session.ViewAI)
				m.aiText.Focus()
			} else {
				m.sess.SetView(session.ViewManual)
				m.aiText.Blur()
				m.refreshFocus()
			}
			return m, nil

		case "ctrl+s":
			m.status = ""
			if err := m.sess.Export(m.exportPath); err == nil {
				m.status = "Đã xuất file: " + m.exportPath
			}
			return m, nil
		}

		if m.sess.View() == session.ViewAI {
			return m.updateAIView(msg)
		}
		return m.updateManualView(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) updateAIView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+e" {
		return m, m.startAnalyze()
	}
	if m.sess.Analyzing() {
		// Triggering control is disabled while a request is outstanding.
		return m, nil
	}
	var cmd tea.Cmd
	m.aiText, cmd = m.aiText.Update(msg)
	m.sess.SetAIInput(m.aiText.Value())
	return m, cmd
}

func (m *Model) updateManualView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "enter", "down":
		m.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.focusPrev()
		return m, nil
	case "ctrl+n":
		id := m.sess.AddExpense()
		m.rows = append(m.rows, m.newRowInputs(id, "", ""))
		m.area = focusRows
		m.rowCursor = len(m.rows) - 1
		m.col = colName
		m.refreshFocus()
		return m, nil
	case "ctrl+d":
		if m.area == focusRows && m.rowCursor < len(m.rows) {
			m.sess.RemoveExpense(m.rows[m.rowCursor].id)
			m.rows = append(m.rows[:m.rowCursor], m.rows[m.rowCursor+1:]...)
			if m.rowCursor >= len(m.rows) {
				if len(m.rows) == 0 {
					m.area = focusIncome
				} else {
					m.rowCursor = len(m.rows) - 1
				}
			}
			m.refreshFocus()
		}
		return m, nil
	}
	return m, m.updateFocusedInput(msg)
}

// updateFocusedInput routes a message into the focused text field and syncs
// its value into the session.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.sess.View() == session.ViewAI:
		m.aiText, cmd = m.aiText.Update(msg)
		m.sess.SetAIInput(m.aiText.Value())
	case m.area == focusIncome:
		m.income, cmd = m.income.Update(msg)
		m.sess.SetIncome(m.income.Value())
	case m.rowCursor < len(m.rows):
		row := &m.rows[m.rowCursor]
		if m.col == colName {
			row.name, cmd = row.name.Update(msg)
			m.sess.UpdateExpenseName(row.id, row.name.Value())
		} else {
			row.amount, cmd = row.amount.Update(msg)
			m.sess.UpdateExpenseAmount(row.id, row.amount.Value())
		}
	}
	return cmd
}

// startAnalyze begins an analysis unless one is already in flight. The
// round-trip runs in a command goroutine; the result comes back as a
// message.
func (m *Model) startAnalyze() tea.Cmd {
	if err := m.sess.BeginAnalyze(); err != nil {
		return nil
	}
	m.sess.SetAIInput(m.aiText.Value())
	m.status = ""

	ext := m.ext
	text := m.aiText.Value()
	analyze := func() tea.Msg {
		result, err := ext.Analyze(context.Background(), text)
		return analyzeResultMsg{result: result, err: err}
	}
	return tea.Batch(m.spin.Tick, analyze)
}

// syncFromLedger rebuilds the input fields from the ledger after a bulk
// replacement (record identities change).
func (m *Model) syncFromLedger() {
	m.income.SetValue(m.sess.Ledger().IncomeRaw())
	expenses := m.sess.Ledger().Expenses()
	m.rows = make([]expenseInputs, 0, len(expenses))
	for _, expense := range expenses {
		m.rows = append(m.rows, m.newRowInputs(expense.ID, expense.Name, expense.Amount.String()))
	}
	m.rowCursor = 0
	m.col = colName
}

func (m *Model) newRowInputs(id, name, amount string) expenseInputs {
	nameInput := textinput.New()
	nameInput.Placeholder = "Tên khoản chi (VD: Tiền nhà)"
	nameInput.CharLimit = 64
	nameInput.Width = 28
	nameInput.SetValue(name)

	amountInput := textinput.New()
	amountInput.Placeholder = "Số tiền (VNĐ)"
	amountInput.CharLimit = 32
	amountInput.Width = 28
	if amount != "0" {
		amountInput.SetValue(amount)
	}

	return expenseInputs{id: id, name: nameInput, amount: amountInput}
}

func (m *Model) focusNext() {
	if m.area == focusIncome {
		if len(m.rows) > 0 {
			m.area = focusRows
			m.rowCursor = 0
			m.col = colName
		}
	} else if m.col == colName {
		m.col = colAmount
	} else if m.rowCursor+1 < len(m.rows) {
		m.rowCursor++
		m.col = colName
	} else {
		m.area = focusIncome
	}
	m.refreshFocus()
}

func (m *Model) focusPrev() {
	if m.area == focusIncome {
		if len(m.rows) > 0 {
			m.area = focusRows
			m.rowCursor = len(m.rows) - 1
			m.col = colAmount
		}
	} else if m.col == colAmount {
		m.col = colName
	} else if m.rowCursor > 0 {
		m.rowCursor--
		m.col = colAmount
	} else {
		m.area = focusIncome
	}
	m.refreshFocus()
}

func (m *Model) refreshFocus() {
	m.income.Blur()
	for i := range m.rows {
		m.rows[i].name.Blur()
		m.rows[i].amount.Blur()
	}
	if m.area == focusIncome {
		m.income.Focus()
		return
	}
	if m.rowCursor < len(m.rows) {
		if m.col == colName {
			m.rows[m.rowCursor].name.Focus()
		} else {
			m.rows[m.rowCursor].amount.Focus()
		}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Trợ Lý Tài Chính"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	var left string
	if m.sess.View() == session.ViewAI {
		left = m.renderAIPanel()
	} else {
		left = m.renderManualPanel()
	}
	right := m.renderResults()

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderTabs() string {
	manual := m.styles.TabInactive.Render("Nhập thủ công")
	ai := m.styles.TabInactive.Render("Phân tích AI")
	if m.sess.View() == session.ViewManual {
		manual = m.styles.TabActive.Render("Nhập thủ công")
	} else {
		ai = m.styles.TabActive.Render("Phân tích AI")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, manual, ai)
}

func (m *Model) renderManualPanel() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Tổng thu nhập (VNĐ)"))
	b.WriteString("\n")
	b.WriteString(m.income.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Các khoản chi tiêu"))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(m.styles.Hint.Render("Chưa có khoản chi tiêu nào. Hãy thêm nhé!"))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		cursor := "  "
		if m.area == focusRows && i == m.rowCursor {
			cursor = m.styles.RowCursor.Render("> ")
		}
		b.WriteString(cursor + row.name.View())
		b.WriteString("\n")
		b.WriteString("  " + row.amount.View())
		b.WriteString("\n")
	}

	return m.styles.Panel.Render(b.String())
}

func (m *Model) renderAIPanel() string {
	var b strings.Builder
	b.WriteString("Hãy kể cho mình nghe về thu nhập và các\nkhoản chi tiêu của bạn nhé!")
	b.WriteString("\n\n")
	b.WriteString(m.aiText.View())
	b.WriteString("\n")

	if advisory := m.sess.AIAdvisory(); advisory != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Advisory.Render(advisory))
		b.WriteString("\n")
	}

	if m.sess.Analyzing() {
		b.WriteString("\n" + m.spin.View() + " Đang phân tích...")
		b.WriteString("\n")
	}

	return m.styles.Panel.Render(b.String())
}

func (m *Model) renderResults() string {
	ledgerState := m.sess.Ledger()
	totals := ledgerState.Totals()

	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render("Tổng thu nhập   "))
	b.WriteString(m.styles.CardValue.Render(currency.FormatVND(ledgerState.Income())))
	b.WriteString("\n")
	b.WriteString(m.styles.CardTitle.Render("Tổng chi tiêu   "))
	b.WriteString(m.styles.CardValue.Render(currency.FormatVND(totals.TotalExpense)))
	b.WriteString("\n")
	b.WriteString(m.styles.CardTitle.Render("Số dư cuối tháng"))
	b.WriteString(" ")
	balanceStyle := m.styles.CardValue
	if totals.Balance.IsNegative() {
		balanceStyle = m.styles.CardNegative
	}
	b.WriteString(balanceStyle.Render(currency.FormatVND(totals.Balance)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.TableHeader.Render(fmt.Sprintf("%-4s %-24s %16s", "STT", "Nội dung chi tiêu", "Số tiền (VNĐ)")))
	b.WriteString("\n")
	expenses := ledgerState.Expenses()
	if len(expenses) == 0 {
		b.WriteString(m.styles.Hint.Render("Chưa có dữ liệu chi tiêu"))
		b.WriteString("\n")
	}
	for i, expense := range expenses {
		name := expense.Name
		if name == "" {
			name = "(chưa nhập tên)"
		}
		b.WriteString(fmt.Sprintf("%-4d %-24s %16s", i+1, name, currency.FormatVND(expense.Amount)))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.SummaryRow.Render(fmt.Sprintf("%-29s %16s", exporter.LabelTotalExpense, currency.FormatVND(totals.TotalExpense))))
	b.WriteString("\n")
	b.WriteString(m.styles.SummaryRow.Render(fmt.Sprintf("%-29s %16s", exporter.LabelBalance, currency.FormatVND(totals.Balance))))
	b.WriteString("\n")

	if advisory := m.sess.ExportAdvisory(); advisory != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Advisory.Render(advisory))
		b.WriteString("\n")
	}

	return m.styles.Panel.Render(b.String())
}

func (m *Model) helpLine() string {
	if m.sess.View() == session.ViewAI {
		return "ctrl+e phân tích · ctrl+t đổi tab · ctrl+s xuất file · esc thoát"
	}
	return "tab/enter trường kế · ctrl+n thêm khoản chi · ctrl+d xóa · ctrl+t đổi tab · ctrl+s xuất file · esc thoát"
}
