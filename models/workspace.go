// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemStatus is the lifecycle status shared by ideas and tasks.
type ItemStatus string

const (
	StatusPlanned    ItemStatus = "planned"
	StatusInProgress ItemStatus = "in_progress"
	StatusCompleted  ItemStatus = "completed"
	StatusOnHold     ItemStatus = "on_hold"
	StatusStopped    ItemStatus = "stopped"
	StatusDiscarded  ItemStatus = "discarded"
)

// PriorityInputs are the 1..5 scores the API derives an idea's priority from.
type PriorityInputs struct {
	Impact  int `json:"impact"`
	Effort  int `json:"effort"`
	Risk    int `json:"risk"`
	Urgency int `json:"urgency"`
}

// Idea is a research topic. Tasks, deliverables and update logs hang off it.
type Idea struct {
	ID             string         `json:"id"`
	WorkspaceID    string         `json:"workspace_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Status         ItemStatus     `json:"status"`
	MainTopicFlag  bool           `json:"main_topic_flag"`
	StartMonth     string         `json:"start_month"`
	TargetMonth    string         `json:"target_month"`
	PriorityInputs PriorityInputs `json:"priority_inputs"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Task is a unit of work inside an idea. Months use the "YYYY-MM" format.
type Task struct {
	ID           string     `json:"id"`
	WorkspaceID  string     `json:"workspace_id"`
	IdeaID       string     `json:"idea_id"`
	Title        string     `json:"title"`
	Status       ItemStatus `json:"status"`
	Importance   int        `json:"importance"`
	StartMonth   string     `json:"start_month"`
	EndMonth     string     `json:"end_month"`
	DueMonth     string     `json:"due_month"`
	Dependencies []string   `json:"dependencies"`
	SortOrder    int        `json:"sort_order"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TaskWithIdea is a row of GET /tasks, which joins the parent idea title.
type TaskWithIdea struct {
	Task
	IdeaTitle string `json:"idea_title"`
}

// TaskUpdate is a PATCH /tasks/{id} body. Nil fields are left untouched.
type TaskUpdate struct {
	Title      *string     `json:"title,omitempty"`
	Status     *ItemStatus `json:"status,omitempty"`
	Importance *int        `json:"importance,omitempty"`
	StartMonth *string     `json:"start_month,omitempty"`
	EndMonth   *string     `json:"end_month,omitempty"`
	DueMonth   *string     `json:"due_month,omitempty"`
}

// Deliverable is an expected output of an idea (paper, dataset, demo...).
type Deliverable struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	IdeaID      string `json:"idea_id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	DueMonth    string `json:"due_month"`
	Status      string `json:"status"`
}

// UpdateLog is a note or ingested daily report attached to an idea.
type UpdateLog struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	IdeaID      string    `json:"idea_id"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	BodyMD      string    `json:"body_md"`
	AISummary   *string   `json:"ai_summary"`
	AITags      []string  `json:"ai_tags"`
	AIRiskFlags []string  `json:"ai_risk_flags"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateLogCreate is the body of POST /ideas/{id}/update_logs.
type UpdateLogCreate struct {
	Source string `json:"source"`
	Title  string `json:"title"`
	BodyMD string `json:"body_md"`
	IdeaID string `json:"idea_id,omitempty"`
}

// IdeaProgress is the API-computed completion of an idea, each in 0..1.
type IdeaProgress struct {
	IdeaID                string  `json:"idea_id"`
	TaskCompletion        float64 `json:"task_completion"`
	DeliverableCompletion float64 `json:"deliverable_completion"`
	IdeaProgress          float64 `json:"idea_progress"`
}

// RiskItem is one API-computed risk of an idea for a month.
type RiskItem struct {
	Code          string  `json:"code"`
	Severity      string  `json:"severity"`
	Message       string  `json:"message"`
	RelatedEntity *string `json:"related_entity"`
	RelatedID     *string `json:"related_id"`
}

// NextActions are API-suggested follow-ups for an idea.
type NextActions struct {
	IdeaID  string   `json:"idea_id"`
	Actions []string `json:"actions"`
}

// DashboardOverview holds workspace counters for a month.
type DashboardOverview struct {
	TotalIdeas       int            `json:"total_ideas"`
	IdeaStatusCounts map[string]int `json:"idea_status_counts"`
	DelayedTasks     int            `json:"delayed_tasks"`
	LowActivityTasks int            `json:"low_activity_tasks"`
}

// SyncSettings is GET /settings/sync: where the API looks for daily reports.
type SyncSettings struct {
	ReportsDir     string `json:"reports_dir"`
	ReportsPattern string `json:"reports_pattern"`
	ViewYear       int    `json:"view_year"`
}

// BulkIngestResult is the response of POST /ingest/daily_reports/bulk.
type BulkIngestResult struct {
	ImportedLogs int `json:"imported_logs"`
}

// IdeaSnapshot bundles everything the dashboard shows for the selected idea.
type IdeaSnapshot struct {
	Idea         Idea
	Tasks        []Task
	Deliverables []Deliverable
	Logs         []UpdateLog
	Progress     *IdeaProgress
	Risks        []RiskItem
	NextActions  []string
}

// Overview is the full dashboard payload for one month.
type Overview struct {
	Month    string
	Counters *DashboardOverview
	Ideas    []Idea
	Selected *IdeaSnapshot
	LoadedAt time.Time
}
