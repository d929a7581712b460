package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
)

type questRepository struct {
	db bun.IDB
}

func NewQuestRepository(db bun.IDB) QuestRepository {
	return &questRepository{db: db}
}

func (r *questRepository) ListTemplates(ctx context.Context) ([]*models.QuestTemplate, error) {
	var templates []*models.QuestTemplate
	err := r.db.NewSelect().
		Model(&templates).
		Order("action_kind ASC", "target_count ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrap("list", "quest_templates", err)
	}
	return templates, nil
}

func (r *questRepository) ListAssignments(ctx context.Context, userID int64) ([]*models.QuestAssignment, error) {
	var assignments []*models.QuestAssignment
	err := r.db.NewSelect().
		Model(&assignments).
		Relation("Template").
		Where("qa.user_id = ?", userID).
		Order("qa.completed ASC").
		OrderExpr(`"template"."reward" DESC`).
		Order("qa.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrap("list", "quest_assignments", err)
	}
	return assignments, nil
}

func (r *questRepository) GetAssignment(ctx context.Context, userID, templateID int64) (*models.QuestAssignment, error) {
	assignment := new(models.QuestAssignment)
	err := r.db.NewSelect().
		Model(assignment).
		Relation("Template").
		Where("qa.user_id = ?", userID).
		Where("qa.quest_template_id = ?", templateID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "quest", ID: templateID}
		}
		return nil, wrap("get", "quest_assignments", err)
	}
	return assignment, nil
}

func (r *questRepository) DeleteAssignments(ctx context.Context, userID int64) error {
	_, err := r.db.NewDelete().
		Model((*models.QuestAssignment)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	return wrap("delete", "quest_assignments", err)
}

func (r *questRepository) InsertAssignments(ctx context.Context, assignments []*models.QuestAssignment) (int64, error) {
	if len(assignments) == 0 {
		return 0, nil
	}

	res, err := r.db.NewInsert().
		Model(&assignments).
		On("CONFLICT (user_id, quest_template_id) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return 0, wrap("insert", "quest_assignments", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, wrap("insert", "quest_assignments", err)
	}
	return affected, nil
}

func (r *questRepository) ListOpenByKind(ctx context.Context, userID int64, kind models.ActionKind, now time.Time) ([]*models.QuestAssignment, error) {
	var assignments []*models.QuestAssignment
	err := r.db.NewSelect().
		Model(&assignments).
		Relation("Template").
		Where("qa.user_id = ?", userID).
		Where("qa.completed = ?", false).
		Where("qa.expires_at > ?", now).
		Where(`"template"."action_kind" = ?`, kind).
		Order("qa.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrap("list open", "quest_assignments", err)
	}
	return assignments, nil
}

func (r *questRepository) IncrementProgress(ctx context.Context, assignmentID int64, delta int) (int, error) {
	return r.updateProgress(ctx, assignmentID, "progress = progress + ?", delta)
}

func (r *questRepository) SetProgress(ctx context.Context, assignmentID int64, progress int) (int, error) {
	return r.updateProgress(ctx, assignmentID, "progress = ?", progress)
}

func (r *questRepository) updateProgress(ctx context.Context, assignmentID int64, set string, value int) (int, error) {
	var progress int
	err := r.db.NewUpdate().
		Model((*models.QuestAssignment)(nil)).
		Set(set, value).
		Where("id = ?", assignmentID).
		Where("completed = ?", false).
		Returning("progress").
		Scan(ctx, &progress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, &NotFoundError{Entity: "open quest assignment", ID: assignmentID}
		}
		return 0, wrap("update progress", "quest_assignments", err)
	}
	return progress, nil
}

func (r *questRepository) MarkCompleted(ctx context.Context, assignmentID int64) (bool, error) {
	res, err := r.db.NewUpdate().
		Model((*models.QuestAssignment)(nil)).
		Set("completed = ?", true).
		Where("id = ?", assignmentID).
		Where("completed = ?", false).
		Exec(ctx)
	if err != nil {
		return false, wrap("complete", "quest_assignments", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, wrap("complete", "quest_assignments", err)
	}
	return affected == 1, nil
}
