package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/quests"
)

// Range is an inclusive interval a reward is drawn from.
type Range struct {
	Min int64 `toml:"min"`
	Max int64 `toml:"max"`
}

// Draw returns a uniform value in [Min, Max].
func (r Range) Draw(rng quests.Rand) int64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + int64(rng.IntN(int(r.Max-r.Min+1)))
}

type RewardConfig struct {
	VoteExperience             Range `toml:"vote_experience"`
	UpvoteExperienceBonus      Range `toml:"upvote_experience_bonus"`
	VoteDiamonds               Range `toml:"vote_diamonds"`
	UpvoteDiamondBonus         Range `toml:"upvote_diamond_bonus"`
	UploadExperience           Range `toml:"upload_experience"`
	UploadDiamonds             Range `toml:"upload_diamonds"`
	UploadCooldownHours        int   `toml:"upload_cooldown_hours" env:"UPLOAD_COOLDOWN_HOURS"`
	ReducedUploadCooldownHours int   `toml:"reduced_upload_cooldown_hours" env:"REDUCED_UPLOAD_COOLDOWN_HOURS"`
}

func DefaultRewardConfig() RewardConfig {
	return RewardConfig{
		VoteExperience:             Range{Min: 10, Max: 20},
		UpvoteExperienceBonus:      Range{Min: 5, Max: 10},
		VoteDiamonds:               Range{Min: 1, Max: 3},
		UpvoteDiamondBonus:         Range{Min: 1, Max: 2},
		UploadExperience:           Range{Min: 40, Max: 60},
		UploadDiamonds:             Range{Min: 5, Max: 10},
		UploadCooldownHours:        24,
		ReducedUploadCooldownHours: 12,
	}
}

func (c RewardConfig) Validate() error {
	ranges := map[string]Range{
		"vote_experience":         c.VoteExperience,
		"upvote_experience_bonus": c.UpvoteExperienceBonus,
		"vote_diamonds":           c.VoteDiamonds,
		"upvote_diamond_bonus":    c.UpvoteDiamondBonus,
		"upload_experience":       c.UploadExperience,
		"upload_diamonds":         c.UploadDiamonds,
	}
	for name, r := range ranges {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("rewards.%s: invalid range [%d, %d]", name, r.Min, r.Max)
		}
	}
	if c.UploadCooldownHours < 0 || c.ReducedUploadCooldownHours < 0 {
		return fmt.Errorf("rewards: upload cooldown must not be negative")
	}
	return nil
}

func (c RewardConfig) uploadCooldown(reduced bool) time.Duration {
	if reduced {
		return time.Duration(c.ReducedUploadCooldownHours) * time.Hour
	}
	return time.Duration(c.UploadCooldownHours) * time.Hour
}

// lockedRand makes a quests.Rand safe for concurrent actions.
type lockedRand struct {
	mu  sync.Mutex
	rng quests.Rand
}

func newLockedRand(rng quests.Rand) *lockedRand {
	if rng == nil {
		rng = quests.DefaultRand
	}
	return &lockedRand{rng: rng}
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rng.Shuffle(n, swap)
}
