package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ctp/internal/config"
	"ctp/internal/domain"
	"ctp/internal/parser"
)

// RecordViewer displays parsed test invocations in an interactive TUI
type RecordViewer struct {
	config *config.Config
}

// NewRecordViewer creates a new RecordViewer
func NewRecordViewer(cfg *config.Config) *RecordViewer {
	return &RecordViewer{config: cfg}
}

// View displays parsed test invocations in an interactive TUI
func (rv *RecordViewer) View(results *domain.ParseRunOutput) error {
	if len(results.Records) == 0 {
		color.Yellow("No test invocations in the last parse run")
		return nil
	}

	app := tview.NewApplication()

	// List of test invocations (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		record := results.Records[index]
		testName := record.TestName
		if testName == "" {
			testName = fmt.Sprintf("Invocation %d", index+1)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, testName)
	}

	for i := range results.Records {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header (shows executable and directory of the selection)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Record details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// List on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Test Invocations (%d parsed from %s) | Use ↑↓ to navigate, → to view details, ← to go back, Q or Ctrl+C to exit ",
		len(results.Records), results.Meta.Source,
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Records) {
			record := results.Records[index]
			statsView.SetText(rv.formatRecordStats(record, index+1))
			detailsView.SetText(rv.formatRecordDetails(record))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatRecordDetails formats a record for display using tview color tags ([cyan], [yellow], etc.)
func (rv *RecordViewer) formatRecordDetails(record domain.TestInvocationRecord) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[green]▸ Test: %s[white]\n\n", record.TestName)
	fmt.Fprintf(w, "[yellow]Command:[white]\n%s\n\n", record.Command)
	fmt.Fprintf(w, "[yellow]Executable:[white]\n%s\n\n", record.Executable)
	fmt.Fprintf(w, "[yellow]Working Directory:[white]\n%s\n\n", record.WorkingDirectory)
	fmt.Fprintf(w, "[yellow]Serialized:[white]\n%s\n", parser.Serialize([]domain.TestInvocationRecord{record}))

	w.Flush()
	return builder.String()
}

// formatRecordStats formats the stats header for a record
func (rv *RecordViewer) formatRecordStats(record domain.TestInvocationRecord, number int) string {
	testName := record.TestName
	if testName == "" {
		testName = fmt.Sprintf("Invocation %d", number)
	}
	return fmt.Sprintf("[cyan]test:[white] [yellow]%s[white] [cyan]exe:[white] [yellow]%s[white]\n", testName, record.Executable)
}
