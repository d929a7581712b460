package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/logger"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/metrics"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/quests"
)

// RewardPipeline applies votes and uploads. Each call is a single transaction.
type RewardPipeline struct {
	store   repositories.Store
	quests  *QuestService
	rewards RewardConfig
	rng     quests.Rand
	loc     *time.Location
	metrics metrics.Recorder
}

func NewRewardPipeline(store repositories.Store, questService *QuestService, rewards RewardConfig, rng quests.Rand, loc *time.Location, rec metrics.Recorder) *RewardPipeline {
	if loc == nil {
		loc = time.UTC
	}
	if rec == nil {
		rec = metrics.Noop()
	}
	return &RewardPipeline{
		store:   store,
		quests:  questService,
		rewards: rewards,
		rng:     newLockedRand(rng),
		loc:     loc,
		metrics: rec,
	}
}

// credit runs the shared tail of every action for the acting user. st must already be
// locked.
func (p *RewardPipeline) credit(ctx context.Context, repos *repositories.Repositories, st *models.UserStats, kind models.ActionKind, experience, diamonds int64, now time.Time) (Outcome, error) {
	out := Outcome{
		ExperienceGained: experience,
		DiamondsGained:   diamonds,
	}
	userID := st.UserID

	res, err := applyStreak(ctx, repos, st, statsDay(now, p.loc), now, p.metrics)
	if err != nil {
		return out, err
	}
	out.Streak = res

	out.LevelUp, err = creditExperience(ctx, repos, userID, experience, now, p.metrics)
	if err != nil {
		return out, err
	}
	if err := creditDiamonds(ctx, repos, userID, diamonds, string(kind), now, p.metrics); err != nil {
		return out, err
	}

	if _, err := p.quests.refreshWeeklySet(ctx, repos, userID, now); err != nil {
		return out, err
	}

	completed, err := p.quests.advance(ctx, repos, userID, kind, 1, now)
	if err != nil {
		return out, err
	}
	streakDone, err := p.quests.advance(ctx, repos, userID, models.ActionStreak, st.Streak, now)
	if err != nil {
		return out, err
	}
	completed = append(completed, streakDone...)

	out.CompletedQuests = completed
	out.QuestRewardCount = len(completed)
	out.QuestRewardTotal = sumRewards(completed)
	if err := creditDiamonds(ctx, repos, userID, out.QuestRewardTotal, "quest", now, p.metrics); err != nil {
		return out, err
	}

	return out, nil
}

func (p *RewardPipeline) snapshot(ctx context.Context, repos *repositories.Repositories, userID int64, now time.Time) (*StatsView, error) {
	st, err := repos.Stats.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload stats: %w", err)
	}
	return newStatsView(st, statsDay(now, p.loc)), nil
}

// ApplyVote records the vote and rewards the voter. An upvote also advances the post
// author's upvote quests by the author's lifetime upvote total and credits the author
// for any it completes.
func (p *RewardPipeline) ApplyVote(ctx context.Context, userID, postID int64, kind models.VoteKind, now time.Time) (*VoteOutcome, error) {
	if !kind.Valid() {
		p.metrics.IncActions("vote", string(KindInvalidVoteKind))
		return nil, ErrInvalidVoteKind
	}

	var out VoteOutcome
	err := p.store.RunInTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		post, err := repos.Posts.GetByID(ctx, postID)
		if err != nil {
			if repositories.IsNotFound(err) {
				return ErrPostNotFound
			}
			return fmt.Errorf("failed to load post: %w", err)
		}
		if post.UserID == userID {
			return ErrSelfVote
		}

		locked, err := lockUsers(ctx, repos, now, userID, post.UserID)
		if err != nil {
			return err
		}

		inserted, err := repos.Posts.InsertVote(ctx, &models.Vote{
			UserID:    userID,
			PostID:    postID,
			Kind:      kind,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to record vote: %w", err)
		}
		if !inserted {
			return ErrDuplicateVote
		}
		if err := repos.Posts.IncrementVoteCount(ctx, postID, kind); err != nil {
			return fmt.Errorf("failed to count vote: %w", err)
		}

		experience := p.rewards.VoteExperience.Draw(p.rng)
		diamonds := p.rewards.VoteDiamonds.Draw(p.rng)
		if kind == models.VoteUp {
			experience += p.rewards.UpvoteExperienceBonus.Draw(p.rng)
			diamonds += p.rewards.UpvoteDiamondBonus.Draw(p.rng)
		}

		out.Outcome, err = p.credit(ctx, repos, locked[userID], models.ActionVote, experience, diamonds, now)
		if err != nil {
			return err
		}

		if kind == models.VoteUp {
			if err := p.rewardAuthor(ctx, repos, post.UserID, now); err != nil {
				return err
			}
		}

		out.Stats, err = p.snapshot(ctx, repos, userID, now)
		return err
	})
	if err != nil {
		if pe, ok := AsPrecondition(err); ok {
			p.metrics.IncActions("vote", string(pe.Kind))
		} else {
			p.metrics.IncActions("vote", "error")
		}
		return nil, err
	}

	out.PostID = postID
	out.VoteKind = kind
	p.metrics.IncActions("vote", "ok")
	logger.LogAction("vote", userID,
		slog.Int64("post_id", postID),
		slog.String("vote_kind", string(kind)),
		slog.Int64("experience", out.ExperienceGained),
		slog.Int64("diamonds", out.TotalDiamonds()),
		slog.Int("quests_completed", out.QuestRewardCount))
	return &out, nil
}

func (p *RewardPipeline) rewardAuthor(ctx context.Context, repos *repositories.Repositories, authorID int64, now time.Time) error {
	total, err := repos.Posts.TotalUpvotesForUser(ctx, authorID)
	if err != nil {
		return fmt.Errorf("failed to count author upvotes: %w", err)
	}

	if _, err := p.quests.refreshWeeklySet(ctx, repos, authorID, now); err != nil {
		return err
	}
	// upvote quests count one step per upvote; the total only goes to the log
	completed, err := p.quests.advance(ctx, repos, authorID, models.ActionUpvote, int(total), now)
	if err != nil {
		return err
	}
	if len(completed) == 0 {
		return nil
	}

	reward := sumRewards(completed)
	if err := creditDiamonds(ctx, repos, authorID, reward, "quest", now, p.metrics); err != nil {
		return err
	}
	logger.LogAction("author_quests", authorID,
		slog.Int64("total_upvotes", total),
		slog.Int("quests_completed", len(completed)),
		slog.Int64("reward", reward))
	return nil
}

// ApplyUpload creates the post and rewards the uploader. Uploads are gated by a
// cooldown that owning the Cooldown Reducer shortens.
func (p *RewardPipeline) ApplyUpload(ctx context.Context, userID int64, imageURL string, now time.Time) (*UploadOutcome, error) {
	var out UploadOutcome
	err := p.store.RunInTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		st, err := ensureStats(ctx, repos, userID, now)
		if err != nil {
			return err
		}

		if st.LastUploadDate != nil {
			reduced, err := repos.Items.OwnsByName(ctx, userID, models.ItemCooldownReducer)
			if err != nil {
				return fmt.Errorf("failed to check items: %w", err)
			}
			next := st.LastUploadDate.Add(p.rewards.uploadCooldown(reduced))
			if now.Before(next) {
				return uploadCooldownError(next.Sub(now))
			}
		}

		post := &models.Post{
			UserID:    userID,
			ImageURL:  imageURL,
			CreatedAt: now,
		}
		if err := repos.Posts.Create(ctx, post); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		if err := repos.Stats.RecordUpload(ctx, userID, now); err != nil {
			return fmt.Errorf("failed to record upload: %w", err)
		}
		out.Post = post

		experience := p.rewards.UploadExperience.Draw(p.rng)
		diamonds := p.rewards.UploadDiamonds.Draw(p.rng)

		out.Outcome, err = p.credit(ctx, repos, st, models.ActionUpload, experience, diamonds, now)
		if err != nil {
			return err
		}

		out.Stats, err = p.snapshot(ctx, repos, userID, now)
		return err
	})
	if err != nil {
		if pe, ok := AsPrecondition(err); ok {
			p.metrics.IncActions("upload", string(pe.Kind))
		} else {
			p.metrics.IncActions("upload", "error")
		}
		return nil, err
	}

	p.metrics.IncActions("upload", "ok")
	logger.LogAction("upload", userID,
		slog.Int64("post_id", out.Post.ID),
		slog.Int64("experience", out.ExperienceGained),
		slog.Int64("diamonds", out.TotalDiamonds()),
		slog.Int("quests_completed", out.QuestRewardCount))
	return &out, nil
}
