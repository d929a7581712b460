package services

import (
	"time"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/leveling"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/streak"
)

// StatsView is UserStats plus the values derived from level and experience.
type StatsView struct {
	UserID int64 `json:"user_id"`
	leveling.Progress
	Diamonds       int64      `json:"diamonds"`
	Streak         int        `json:"streak"`
	LongestStreak  int        `json:"longest_streak"`
	StreakActive   bool       `json:"streak_active"`
	LastActiveDate string     `json:"last_active_date,omitempty"`
	LastUploadDate *time.Time `json:"last_upload_date,omitempty"`
	PostsCount     int64      `json:"posts_count"`
}

func newStatsView(st *models.UserStats, today streak.Date) *StatsView {
	last := streak.DateFromTime(st.LastActiveDate)
	return &StatsView{
		UserID:         st.UserID,
		Progress:       leveling.Describe(st.Level, st.Experience),
		Diamonds:       st.Diamonds,
		Streak:         st.Streak,
		LongestStreak:  st.LongestStreak,
		StreakActive:   streak.IsActive(last, today),
		LastActiveDate: last.String(),
		LastUploadDate: st.LastUploadDate,
		PostsCount:     st.PostsCount,
	}
}

// QuestView is one assignment of the weekly set as shown to the user.
type QuestView struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	ActionKind         models.ActionKind `json:"action_kind"`
	TargetCount        int               `json:"target_count"`
	Reward             int64             `json:"reward"`
	Progress           int               `json:"progress"`
	Completed          bool              `json:"completed"`
	ProgressPercentage float64           `json:"progress_percentage"`
	ExpiresAt          time.Time         `json:"expires_at"`
}

func newQuestView(a *models.QuestAssignment) QuestView {
	v := QuestView{
		ID:                 a.QuestTemplateID,
		Progress:           a.Progress,
		Completed:          a.Completed,
		ProgressPercentage: a.ProgressPercentage(),
		ExpiresAt:          a.ExpiresAt,
	}
	if t := a.Template; t != nil {
		v.Name = t.Name
		v.Description = t.Description
		v.ActionKind = t.ActionKind
		v.TargetCount = t.TargetCount
		v.Reward = t.Reward
	}
	return v
}

// CompletedQuest is an assignment that reached its target during an action.
type CompletedQuest struct {
	QuestID    int64             `json:"quest_id"`
	Name       string            `json:"name"`
	ActionKind models.ActionKind `json:"action_kind"`
	Reward     int64             `json:"reward"`
}

// LevelUpDetail reports a cascade and the bonus diamonds it paid.
type LevelUpDetail struct {
	leveling.LevelUp
	BonusDiamonds int64 `json:"bonus_diamonds"`
}

// Outcome is the composed result of one rewarded action.
type Outcome struct {
	ExperienceGained int64            `json:"experience_gained"`
	DiamondsGained   int64            `json:"diamonds_gained"`
	LevelUp          *LevelUpDetail   `json:"level_up,omitempty"`
	Streak           streak.Result    `json:"streak"`
	CompletedQuests  []CompletedQuest `json:"completed_quests"`
	QuestRewardCount int              `json:"quest_reward_count"`
	QuestRewardTotal int64            `json:"quest_reward_total"`
	Stats            *StatsView       `json:"stats"`
}

// TotalDiamonds is everything credited by the action: base reward, level bonus and
// quest rewards.
func (o *Outcome) TotalDiamonds() int64 {
	total := o.DiamondsGained + o.QuestRewardTotal
	if o.LevelUp != nil {
		total += o.LevelUp.BonusDiamonds
	}
	return total
}

type VoteOutcome struct {
	Outcome
	PostID   int64           `json:"post_id"`
	VoteKind models.VoteKind `json:"vote_kind"`
}

type UploadOutcome struct {
	Outcome
	Post *models.Post `json:"post"`
}

type ClaimOutcome struct {
	QuestID int64      `json:"quest_id"`
	Reward  int64      `json:"reward"`
	Stats   *StatsView `json:"stats"`
}
