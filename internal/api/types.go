package api

import (
	"fmt"
	"strings"
	"time"
)

// Priority is a card priority level, ordered from low to urgent.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists all priority levels in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

var priorityEmoji = map[Priority]string{
	PriorityLow:    "🟢",
	PriorityMedium: "🟡",
	PriorityHigh:   "🟠",
	PriorityUrgent: "🔴",
}

// ParsePriority converts a user-supplied string into a Priority.
func ParsePriority(value string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(value)))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, nil
	}
	return "", fmt.Errorf("invalid priority %q (expected low, medium, high, or urgent)", value)
}

// Emoji returns the marker shown next to the priority in table output.
func (p Priority) Emoji() string {
	return priorityEmoji[p]
}

func (p Priority) String() string { return string(p) }

// Column is a workflow stage on the board.
type Column string

const (
	ColumnBacklog    Column = "backlog"
	ColumnTodo       Column = "todo"
	ColumnInProgress Column = "in_progress"
	ColumnReview     Column = "review"
	ColumnDone       Column = "done"
)

// Columns lists all board columns in workflow order.
var Columns = []Column{ColumnBacklog, ColumnTodo, ColumnInProgress, ColumnReview, ColumnDone}

var columnDisplayNames = map[Column]string{
	ColumnBacklog:    "Backlog",
	ColumnTodo:       "Todo",
	ColumnInProgress: "In Progress",
	ColumnReview:     "Review",
	ColumnDone:       "Done",
}

// ParseColumn converts a user-supplied string into a Column.
func ParseColumn(value string) (Column, error) {
	c := Column(strings.ToLower(strings.TrimSpace(value)))
	switch c {
	case ColumnBacklog, ColumnTodo, ColumnInProgress, ColumnReview, ColumnDone:
		return c, nil
	}
	return "", fmt.Errorf("invalid column %q (expected backlog, todo, in_progress, review, or done)", value)
}

// DisplayName returns the human-readable column title.
func (c Column) DisplayName() string {
	if name, ok := columnDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

func (c Column) String() string { return string(c) }

// AgentStatus tracks a card through the agent workflow.
type AgentStatus string

const (
	AgentReady       AgentStatus = "ready"
	AgentInProgress  AgentStatus = "in_progress"
	AgentBlocked     AgentStatus = "blocked"
	AgentNeedsReview AgentStatus = "needs_review"
)

var agentStatusEmoji = map[AgentStatus]string{
	AgentReady:       "🟢",
	AgentInProgress:  "🔵",
	AgentBlocked:     "🟡",
	AgentNeedsReview: "🔴",
}

// ParseAgentStatus converts a user-supplied string into an AgentStatus.
func ParseAgentStatus(value string) (AgentStatus, error) {
	s := AgentStatus(strings.ToLower(strings.TrimSpace(value)))
	switch s {
	case AgentReady, AgentInProgress, AgentBlocked, AgentNeedsReview:
		return s, nil
	}
	return "", fmt.Errorf("invalid agent status %q (expected ready, in_progress, blocked, or needs_review)", value)
}

// Emoji returns the marker shown next to the status in table output.
func (s AgentStatus) Emoji() string {
	return agentStatusEmoji[s]
}

func (s AgentStatus) String() string { return string(s) }

// PlanStatus is the approval state of a plan.
type PlanStatus string

const (
	PlanDraft    PlanStatus = "draft"
	PlanReady    PlanStatus = "ready"
	PlanApproved PlanStatus = "approved"
)

var planStatusEmoji = map[PlanStatus]string{
	PlanDraft:    "📝",
	PlanReady:    "👀",
	PlanApproved: "✅",
}

// ParsePlanStatus converts a user-supplied string into a PlanStatus.
func ParsePlanStatus(value string) (PlanStatus, error) {
	s := PlanStatus(strings.ToLower(strings.TrimSpace(value)))
	switch s {
	case PlanDraft, PlanReady, PlanApproved:
		return s, nil
	}
	return "", fmt.Errorf("invalid plan status %q (expected draft, ready, or approved)", value)
}

// Emoji returns the marker shown next to the status in table output.
func (s PlanStatus) Emoji() string {
	return planStatusEmoji[s]
}

func (s PlanStatus) String() string { return string(s) }

// AgentProgressEntry is one line in a card's agent progress log.
type AgentProgressEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Card is a unit of work tracked on the board.
type Card struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Column      Column     `json:"column"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Position    int        `json:"position"`

	// Agent workflow fields; pass-through data the CLI displays but does
	// not interpret.
	AgentAssignable    bool                 `json:"agent_assignable"`
	AgentStatus        *AgentStatus         `json:"agent_status,omitempty"`
	AgentProgress      []AgentProgressEntry `json:"agent_progress,omitempty"`
	AcceptanceCriteria []string             `json:"acceptance_criteria,omitempty"`
	AcceptanceChecked  []bool               `json:"acceptance_checked,omitempty"`
	BlockedReason      *string              `json:"blocked_reason,omitempty"`
}

// Overdue reports whether the card's due date is strictly before now.
// Cards without a due date are never overdue.
func (c Card) Overdue(now time.Time) bool {
	return c.DueDate != nil && c.DueDate.Before(now)
}

// CardCreate is the request body for creating a card.
type CardCreate struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Column      Column     `json:"column"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// CardUpdate is the request body for updating a card. Nil fields are
// omitted from the request entirely rather than sent as null.
type CardUpdate struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Priority        *Priority  `json:"priority,omitempty"`
	Column          *Column    `json:"column,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Tags            *[]string  `json:"tags,omitempty"`
	AgentAssignable *bool      `json:"agent_assignable,omitempty"`
}

// Empty reports whether the update carries no fields.
func (u CardUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil &&
		u.Column == nil && u.DueDate == nil && u.Tags == nil && u.AgentAssignable == nil
}

// CardMove is the request body for moving a card between columns.
type CardMove struct {
	Column Column `json:"column"`
}

// AgentProgressRequest appends a message to a card's progress log.
type AgentProgressRequest struct {
	Message string `json:"message"`
}

// AgentStatusRequest changes a card's agent status.
type AgentStatusRequest struct {
	Status        AgentStatus `json:"status"`
	BlockedReason string      `json:"blocked_reason,omitempty"`
}

// CriterionCheckRequest sets the checked state of one acceptance criterion.
type CriterionCheckRequest struct {
	Checked bool `json:"checked"`
}

// BoardStats is the server-computed board statistics summary.
type BoardStats struct {
	TotalCards   int            `json:"total_cards"`
	ByColumn     map[string]int `json:"by_column"`
	ByPriority   map[string]int `json:"by_priority"`
	OverdueCount int            `json:"overdue_count"`
}

// ColumnSummary is one row of the board overview.
type ColumnSummary struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

// PlanFile is a named text file attached to a plan.
type PlanFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Plan is a titled container of files with an approval-style status.
type Plan struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Status    PlanStatus `json:"status"`
	Files     []PlanFile `json:"files"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Position  int        `json:"position"`
}

// PlanCreate is the request body for creating a plan.
type PlanCreate struct {
	Title string           `json:"title"`
	Files []PlanFileCreate `json:"files,omitempty"`
}

// PlanFileCreate is the request body for adding a file to a plan.
type PlanFileCreate struct {
	Name    string `json:"name"`
	Content string `json:"content,omitempty"`
}

// PlanUpdate is the request body for updating a plan.
type PlanUpdate struct {
	Title  *string     `json:"title,omitempty"`
	Status *PlanStatus `json:"status,omitempty"`
}

// PlanFileUpdate is the request body for updating a plan file.
type PlanFileUpdate struct {
	Name    *string `json:"name,omitempty"`
	Content *string `json:"content,omitempty"`
}

// LoginRequest authenticates with the board password.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the API token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// HealthResponse is the unauthenticated health-check payload.
type HealthResponse struct {
	Status string `json:"status"`
}
