package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tracksense/goalnet/internal/goal/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

const goalColumns = `id, user_id, title, COALESCE(description, ''), status, progress,
	target_date, COALESCE(milestones, '[]'), COALESCE(tags, '{}'), created_at, updated_at`

func scanGoal(row interface{ Scan(...any) error }) (*entity.Goal, error) {
	var (
		g          entity.Goal
		status     string
		milestones []byte
	)

	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &status, &g.Progress,
		&g.TargetDate, &milestones, &g.Tags, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}

	g.Status = entity.GoalStatusFromString(status)
	if err := json.Unmarshal(milestones, &g.Milestones); err != nil {
		return nil, err
	}

	return &g, nil
}

func (s *DB) ListGoals(ctx context.Context, userID int64, status entity.GoalStatus) (goals []entity.Goal, err error) {
	ctx, span := s.startSpan(ctx, "ListGoals")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + goalColumns + ` FROM goals
		WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`

	rows, err := s.conn.Query(ctx, query, userID, status.String())
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	goals = make([]entity.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, s.mapError(err)
		}
		goals = append(goals, *g)
	}

	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return goals, nil
}

func (s *DB) GetGoal(ctx context.Context, userID, id int64) (goal *entity.Goal, err error) {
	ctx, span := s.startSpan(ctx, "GetGoal")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`

	goal, err = scanGoal(s.conn.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, s.mapError(err)
	}

	return goal, nil
}

func (s *DB) CreateGoal(ctx context.Context, in entity.Goal) (err error) {
	ctx, span := s.startSpan(ctx, "CreateGoal")
	defer func() { s.endSpan(span, err) }()

	milestones, err := json.Marshal(in.Milestones)
	if err != nil {
		return err
	}

	query := `INSERT INTO goals (id, user_id, title, description, status, progress, target_date, milestones, tags)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9)`

	_, err = s.conn.Exec(ctx, query, in.ID, in.UserID, in.Title, in.Description,
		in.Status.String(), in.Progress, in.TargetDate, milestones, in.Tags)

	return s.mapError(err)
}

// UpdateGoal touches only the fields carried by in. Returns
// goerror.ErrNotFound when the row does not exist or belongs to another
// user.
func (s *DB) UpdateGoal(ctx context.Context, in entity.UpdateGoal) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateGoal")
	defer func() { s.endSpan(span, err) }()

	sets := []string{"updated_at = now()"}
	args := []any{in.ID, in.UserID}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Title != nil {
		addSet("title", *in.Title)
	}
	if in.Description != nil {
		addSet("description", *in.Description)
	}
	if in.Status != nil {
		addSet("status", in.Status.String())
	}
	if in.Progress != nil {
		addSet("progress", *in.Progress)
	}
	if in.TargetDate != nil {
		addSet("target_date", *in.TargetDate)
	}
	if in.Milestones != nil {
		milestones, err := json.Marshal(*in.Milestones)
		if err != nil {
			return err
		}
		addSet("milestones", milestones)
	}
	if in.Tags != nil {
		addSet("tags", *in.Tags)
	}

	query := fmt.Sprintf(`UPDATE goals SET %s WHERE id = $1 AND user_id = $2`, strings.Join(sets, ", "))

	tag, err := s.conn.Exec(ctx, query, args...)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) DeleteGoal(ctx context.Context, userID, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteGoal")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
