package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/orveth/blaze/internal/api"
)

// outputMode selects how command results are rendered. The mode is fixed
// once per invocation.
type outputMode int

const (
	modeTable outputMode = iota
	modeJSON
	modeQuiet
)

const (
	shortIDWidth     = 8
	titleSnipWidth   = 40
	boardBarWidth    = 20
	snipIndicator    = "…"
	overdueMark      = " !"
	dueDisplayLayout = "2006-01-02"
)

func shortID(id string) string {
	if len(id) <= shortIDWidth {
		return id
	}
	return id[:shortIDWidth]
}

func snip(value string, width int) string {
	return text.Snip(value, width, snipIndicator)
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func dueCell(card api.Card, now time.Time, colorize bool) string {
	if card.DueDate == nil {
		return ""
	}
	cell := card.DueDate.UTC().Format(dueDisplayLayout)
	if card.Overdue(now) {
		cell += overdueMark
		if colorize {
			cell = text.FgRed.Sprint(cell)
		}
	}
	return cell
}

func renderCards(w io.Writer, cards []api.Card, mode outputMode) error {
	switch mode {
	case modeJSON:
		return writeJSON(w, cards)
	case modeQuiet:
		for _, card := range cards {
			fmt.Fprintln(w, card.ID)
		}
		return nil
	}

	if len(cards) == 0 {
		fmt.Fprintln(w, "No cards")
		return nil
	}

	now := time.Now().UTC()
	colorize := shouldColorize(w)
	rows := make([][]string, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, []string{
			shortID(card.ID),
			snip(card.Title, titleSnipWidth),
			card.Column.DisplayName(),
			card.Priority.Emoji() + " " + card.Priority.String(),
			dueCell(card, now, colorize),
			strings.Join(card.Tags, ","),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"ID", "Title", "Column", "Priority", "Due", "Tags"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func renderCardDetail(w io.Writer, card api.Card, mode outputMode) error {
	switch mode {
	case modeJSON:
		return writeJSON(w, card)
	case modeQuiet:
		fmt.Fprintln(w, card.ID)
		return nil
	}

	now := time.Now().UTC()
	colorize := shouldColorize(w)

	fmt.Fprintf(w, "%s %s\n", card.Priority.Emoji(), card.Title)
	fmt.Fprintf(w, "  ID:       %s\n", card.ID)
	fmt.Fprintf(w, "  Column:   %s\n", card.Column.DisplayName())
	fmt.Fprintf(w, "  Priority: %s\n", card.Priority)
	if card.Description != "" {
		fmt.Fprintf(w, "  Desc:     %s\n", card.Description)
	}
	if cell := dueCell(card, now, colorize); cell != "" {
		fmt.Fprintf(w, "  Due:      %s\n", cell)
	}
	if len(card.Tags) > 0 {
		fmt.Fprintf(w, "  Tags:     %s\n", strings.Join(card.Tags, ", "))
	}
	fmt.Fprintf(w, "  Updated:  %s\n", humanize.Time(card.UpdatedAt))

	if card.AgentAssignable {
		status := "unset"
		if card.AgentStatus != nil {
			status = card.AgentStatus.Emoji() + " " + card.AgentStatus.String()
		}
		fmt.Fprintf(w, "  Agent:    %s\n", status)
		if card.BlockedReason != nil && *card.BlockedReason != "" {
			fmt.Fprintf(w, "  Blocked:  %s\n", *card.BlockedReason)
		}
		for i, criterion := range card.AcceptanceCriteria {
			mark := "[ ]"
			if i < len(card.AcceptanceChecked) && card.AcceptanceChecked[i] {
				mark = "[x]"
			}
			fmt.Fprintf(w, "  %s %s\n", mark, criterion)
		}
		for _, entry := range card.AgentProgress {
			fmt.Fprintf(w, "  %s  %s\n", entry.Timestamp.UTC().Format(time.RFC3339), entry.Message)
		}
	}
	return nil
}

// renderDeleted reports a successful deletion: full id in quiet mode for
// pipelines, a small JSON object in JSON mode, a glyph line otherwise.
func renderDeleted(w io.Writer, id string, mode outputMode) error {
	switch mode {
	case modeJSON:
		return writeJSON(w, map[string]string{"deleted": id})
	case modeQuiet:
		fmt.Fprintln(w, id)
		return nil
	}
	fmt.Fprintf(w, "%s Deleted %s\n", glyphOK, shortID(id))
	return nil
}

func buildBoardSummary(cards []api.Card) []api.ColumnSummary {
	summaries := make([]api.ColumnSummary, 0, len(api.Columns))
	for _, column := range api.Columns {
		count := 0
		for _, card := range cards {
			if card.Column == column {
				count++
			}
		}
		summaries = append(summaries, api.ColumnSummary{Column: column.DisplayName(), Count: count})
	}
	return summaries
}

func renderBoard(w io.Writer, summaries []api.ColumnSummary, mode outputMode) error {
	switch mode {
	case modeJSON:
		return writeJSON(w, summaries)
	case modeQuiet:
		for _, s := range summaries {
			fmt.Fprintf(w, "%s:%d\n", strings.ToLower(strings.ReplaceAll(s.Column, " ", "_")), s.Count)
		}
		return nil
	}

	max := 0
	for _, s := range summaries {
		if s.Count > max {
			max = s.Count
		}
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{s.Column, fmt.Sprintf("%d", s.Count), boardBar(s.Count, max)})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Column", "Count", ""},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	))
	return nil
}

// boardBar renders a bar proportional to count, scaled so the fullest
// column spans the whole bar width.
func boardBar(count, max int) string {
	if max == 0 || count == 0 {
		return ""
	}
	width := count * boardBarWidth / max
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func renderStats(w io.Writer, stats api.BoardStats, mode outputMode) error {
	switch mode {
	case modeJSON:
		return writeJSON(w, stats)
	case modeQuiet:
		fmt.Fprintf(w, "total:%d\n", stats.TotalCards)
		for _, column := range api.Columns {
			fmt.Fprintf(w, "%s:%d\n", column, stats.ByColumn[column.String()])
		}
		for _, priority := range api.Priorities {
			fmt.Fprintf(w, "%s:%d\n", priority, stats.ByPriority[priority.String()])
		}
		fmt.Fprintf(w, "overdue:%d\n", stats.OverdueCount)
		return nil
	}

	rows := [][]string{{"Total cards", fmt.Sprintf("%d", stats.TotalCards)}}
	for _, column := range api.Columns {
		rows = append(rows, []string{column.DisplayName(), fmt.Sprintf("%d", stats.ByColumn[column.String()])})
	}
	for _, priority := range api.Priorities {
		rows = append(rows, []string{priority.Emoji() + " " + priority.String(), fmt.Sprintf("%d", stats.ByPriority[priority.String()])})
	}
	rows = append(rows, []string{"Overdue", fmt.Sprintf("%d", stats.OverdueCount)})

	fmt.Fprintln(w, renderTable(
		[]string{"Metric", "Count"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	return nil
}

func renderPlans(w io.Writer, plans []api.Plan, mode outputMode) error {
	switch mode {
	case modeJSON:
		return writeJSON(w, plans)
	case modeQuiet:
		for _, plan := range plans {
			fmt.Fprintln(w, plan.ID)
		}
		return nil
	}

	if len(plans) == 0 {
		fmt.Fprintln(w, "No plans")
		return nil
	}

	rows := make([][]string, 0, len(plans))
	for _, plan := range plans {
		rows = append(rows, []string{
			shortID(plan.ID),
			snip(plan.Title, titleSnipWidth),
			plan.Status.Emoji() + " " + plan.Status.String(),
			fmt.Sprintf("%d", len(plan.Files)),
			humanize.Time(plan.UpdatedAt),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"ID", "Title", "Status", "Files", "Updated"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	))
	return nil
}

func renderPlanDetail(w io.Writer, plan api.Plan, mode outputMode) error {
	switch mode {
	case modeJSON:
		return writeJSON(w, plan)
	case modeQuiet:
		fmt.Fprintln(w, plan.ID)
		return nil
	}

	fmt.Fprintf(w, "%s %s\n", plan.Status.Emoji(), plan.Title)
	fmt.Fprintf(w, "  ID:      %s\n", plan.ID)
	fmt.Fprintf(w, "  Status:  %s\n", plan.Status)
	fmt.Fprintf(w, "  Updated: %s\n", humanize.Time(plan.UpdatedAt))
	if len(plan.Files) > 0 {
		fmt.Fprintln(w, "  Files:")
		for _, file := range plan.Files {
			fmt.Fprintf(w, "    %s (%d bytes)\n", file.Name, len(file.Content))
		}
	}
	return nil
}

func renderPlanFile(w io.Writer, file api.PlanFile, mode outputMode) error {
	switch mode {
	case modeJSON:
		return writeJSON(w, file)
	case modeQuiet:
		fmt.Fprintln(w, file.Name)
		return nil
	}

	fmt.Fprint(w, file.Content)
	if !strings.HasSuffix(file.Content, "\n") {
		fmt.Fprintln(w)
	}
	return nil
}
