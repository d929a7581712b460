package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ActionKind is the category of behaviour that can progress a quest.
type ActionKind string

const (
	ActionVote   ActionKind = "vote"
	ActionUpload ActionKind = "upload"
	ActionStreak ActionKind = "streak"
	ActionUpvote ActionKind = "upvote"
)

// ActionKinds lists every kind in catalog order.
var ActionKinds = []ActionKind{ActionVote, ActionUpload, ActionStreak, ActionUpvote}

// Valid reports whether k is one of the known kinds.
func (k ActionKind) Valid() bool {
	switch k {
	case ActionVote, ActionUpload, ActionStreak, ActionUpvote:
		return true
	default:
		return false
	}
}

// Absolute reports whether progress for k is set to the reported value instead of
// being incremented.
func (k ActionKind) Absolute() bool {
	return k == ActionStreak
}

// QuestTemplate is immutable catalog data.
type QuestTemplate struct {
	bun.BaseModel `bun:"table:quest_templates,alias:qt"`

	ID          int64      `bun:"id,pk,autoincrement"`
	Name        string     `bun:"name,notnull,unique"`
	Description string     `bun:"description,notnull"`
	ActionKind  ActionKind `bun:"action_kind,notnull"`
	TargetCount int        `bun:"target_count,notnull"`
	Reward      int64      `bun:"reward,notnull"`
}

// QuestAssignment is a user's instance of a template for the current week.
type QuestAssignment struct {
	bun.BaseModel `bun:"table:quest_assignments,alias:qa"`

	ID              int64     `bun:"id,pk,autoincrement"`
	UserID          int64     `bun:"user_id,notnull,unique:user_template"`
	QuestTemplateID int64     `bun:"quest_template_id,notnull,unique:user_template"`
	Progress        int       `bun:"progress,notnull,default:0"`
	Completed       bool      `bun:"completed,notnull,default:false"`
	ExpiresAt       time.Time `bun:"expires_at,notnull"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:current_timestamp"`

	Template *QuestTemplate `bun:"rel:belongs-to,join:quest_template_id=id"`
}

// Expired reports whether the assignment is no longer part of the active week.
func (a *QuestAssignment) Expired(now time.Time) bool {
	return !a.ExpiresAt.After(now)
}

// ReachedTarget reports whether progress meets the template's target.
func (a *QuestAssignment) ReachedTarget() bool {
	return a.Template != nil && a.Progress >= a.Template.TargetCount
}

// ProgressPercentage returns progress towards the target, capped at 100.
func (a *QuestAssignment) ProgressPercentage() float64 {
	if a.Template == nil || a.Template.TargetCount == 0 {
		return 0
	}

	percentage := float64(a.Progress) / float64(a.Template.TargetCount) * 100
	if percentage > 100 {
		percentage = 100
	}

	return percentage
}
