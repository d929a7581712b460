package handlers

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SzerokiGeralt/MemeSwipe/backend/models"
	"github.com/SzerokiGeralt/MemeSwipe/backend/utils"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe"
	dbmodels "github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/quests"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/services"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	Stats       *services.StatsService
	Quests      *services.QuestService
	Pipeline    *services.RewardPipeline
	Shop        *services.ShopService
	Leaderboard *services.LeaderboardService
	Feed        *services.FeedService

	Ping    func(ctx context.Context) error
	Version string
	Commit  string

	// Now is read once per request and handed to the engine.
	Now func() time.Time
}

func NewWebApp(app *memeswipe.App) *WebApp {
	return &WebApp{
		Stats:       app.Stats,
		Quests:      app.Quests,
		Pipeline:    app.Pipeline,
		Shop:        app.Shop,
		Leaderboard: app.Leaderboard,
		Feed:        app.Feed,
		Ping:        app.Ping,
		Version:     app.Version,
		Commit:      app.Commit,
		Now:         time.Now,
	}
}

// parseBody decodes and validates a JSON body, writing the error response itself.
// It returns false when the handler should stop.
func parseBody(c *fiber.Ctx, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		slog.Debug("Request body rejected",
			slog.String("type", "http"),
			slog.String("path", c.Path()),
			slog.Any("error", err))
		return false, utils.SendBadRequest(c, "Invalid request body", map[string]string{
			"body": "must be a JSON object matching the endpoint schema",
		})
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return false, utils.HandleValidationErrors(c, errs)
	}
	return true, nil
}

func currentUser(c *fiber.Ctx) int64 {
	id, _ := utils.UserID(c)
	return id
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := models.NewHealthCheck(webApp.Version, webApp.Commit, webApp.Now())

		if err := webApp.Ping(c.UserContext()); err != nil {
			health.AddComponent("database", "unhealthy", "ping failed")
			slog.Error("Health check failed",
				slog.String("type", "db"),
				slog.Any("error", err))
			return utils.SendJSON(c, fiber.StatusServiceUnavailable, models.NewSuccessResponse(health, "Service unhealthy"))
		}
		health.AddComponent("database", "healthy", "")

		return utils.SendSuccess(c, health, "Health check successful")
	}
}

// =============================================================================
// STATS
// =============================================================================

func CreateStats(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateStatsRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}

		stats, err := webApp.Stats.CreateStats(c.UserContext(), req.UserID, webApp.Now())
		if err != nil {
			return sendServiceError(c, err, "create stats")
		}
		return utils.SendCreated(c, stats, "Stats created")
	}
}

func GetStats(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.ParseInt(c.Params("userID"), 10, 64)
		if err != nil || userID <= 0 {
			return utils.SendBadRequest(c, "Invalid user ID", map[string]string{
				"user_id": c.Params("userID"),
			})
		}

		stats, err := webApp.Stats.GetStats(c.UserContext(), userID, webApp.Now())
		if err != nil {
			return sendServiceError(c, err, "get stats")
		}
		return utils.SendSuccess(c, stats, "Stats retrieved")
	}
}

func CheckStreak(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := webApp.Stats.CheckAndProcessStreak(c.UserContext(), currentUser(c), webApp.Now())
		if err != nil {
			return sendServiceError(c, err, "check streak")
		}
		return utils.SendSuccess(c, res, res.Message)
	}
}

// =============================================================================
// ACTIONS
// =============================================================================

func Vote(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.VoteRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}

		out, err := webApp.Pipeline.ApplyVote(c.UserContext(), currentUser(c), req.PostID, dbmodels.VoteKind(req.VoteKind), webApp.Now())
		if err != nil {
			return sendServiceError(c, err, "vote")
		}
		return utils.SendSuccess(c, out, "Vote recorded")
	}
}

func Upload(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UploadRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}

		out, err := webApp.Pipeline.ApplyUpload(c.UserContext(), currentUser(c), req.ImageURL, webApp.Now())
		if err != nil {
			return sendServiceError(c, err, "upload")
		}
		return utils.SendCreated(c, out, "Post uploaded")
	}
}

// =============================================================================
// QUESTS
// =============================================================================

type weeklyQuestsResponse struct {
	Quests []services.QuestView   `json:"quests"`
	Reset  quests.ResetCountdown `json:"reset"`
}

func WeeklyQuests(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := webApp.Now()

		views, err := webApp.Quests.GetWeeklyQuests(c.UserContext(), currentUser(c), now)
		if err != nil {
			return sendServiceError(c, err, "weekly quests")
		}
		return utils.SendSuccess(c, weeklyQuestsResponse{
			Quests: views,
			Reset:  webApp.Quests.TimeUntilReset(now),
		}, "Weekly quests retrieved")
	}
}

func ClaimQuest(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ClaimQuestRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}

		out, err := webApp.Quests.ClaimQuestReward(c.UserContext(), currentUser(c), req.QuestID, webApp.Now())
		if err != nil {
			return sendServiceError(c, err, "claim quest")
		}
		return utils.SendSuccess(c, out, "Quest reward claimed")
	}
}

func QuestReset(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, webApp.Quests.TimeUntilReset(webApp.Now()), "")
	}
}

// =============================================================================
// SHOP
// =============================================================================

func ShopItems(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := webApp.Shop.ListItems(c.UserContext(), currentUser(c))
		if err != nil {
			return sendServiceError(c, err, "list items")
		}
		return utils.SendSuccess(c, items, "")
	}
}

func Purchase(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.PurchaseRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}

		out, err := webApp.Shop.Purchase(c.UserContext(), currentUser(c), req.ItemID, webApp.Now())
		if err != nil {
			return sendServiceError(c, err, "purchase")
		}
		return utils.SendSuccess(c, out, "Item purchased")
	}
}

func VIPStatus(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := webApp.Shop.VIPStatus(c.UserContext(), currentUser(c))
		if err != nil {
			return sendServiceError(c, err, "vip status")
		}
		return utils.SendSuccess(c, status, "")
	}
}

// =============================================================================
// LEADERBOARD & FEED
// =============================================================================

func Leaders(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := services.ParsePeriod(c.Query("period"))

		rows, err := webApp.Leaderboard.TopByUpvotes(c.UserContext(), period, webApp.Now())
		if err != nil {
			return sendServiceError(c, err, "leaderboard")
		}
		return utils.SendSuccess(c, fiber.Map{
			"period":  period,
			"leaders": rows,
		}, "")
	}
}

func NextPost(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := webApp.Feed.NextPost(c.UserContext(), currentUser(c))
		if err != nil {
			return sendServiceError(c, err, "next post")
		}
		if post == nil {
			return utils.SendNotFound(c, "No more posts to swipe")
		}
		return utils.SendSuccess(c, post, "")
	}
}

func MyPosts(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := webApp.Feed.UserPosts(c.UserContext(), currentUser(c))
		if err != nil {
			return sendServiceError(c, err, "user posts")
		}
		return utils.SendSuccess(c, posts, "")
	}
}
