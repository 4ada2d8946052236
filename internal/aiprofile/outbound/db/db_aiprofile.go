package db

import (
	"context"
	"encoding/json"

	"github.com/tracksense/goalnet/internal/aiprofile/entity"
)

const aiProfileColumns = `id, user_id, summary,
COALESCE(current_focus, '{}'), COALESCE(strengths, '{}'), COALESCE(highlights, '{}'),
last_generated, created_at, updated_at`

func scanAIProfile(row interface{ Scan(...any) error }) (*entity.AIProfile, error) {
	var p entity.AIProfile
	err := row.Scan(&p.ID, &p.UserID, &p.Summary, &p.CurrentFocus, &p.Strengths,
		&p.Highlights, &p.LastGenerated, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DB) GetAIProfileByUserID(ctx context.Context, userID int64) (p *entity.AIProfile, err error) {
	ctx, span := s.startSpan(ctx, "GetAIProfileByUserID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + aiProfileColumns + ` FROM ai_profiles WHERE user_id = $1`

	p, err = scanAIProfile(s.conn.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, s.mapError(err)
	}
	return p, nil
}

func (s *DB) UpsertAIProfile(ctx context.Context, in entity.AIProfile) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertAIProfile")
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO ai_profiles
(id, user_id, summary, current_focus, strengths, highlights, last_generated, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id) DO UPDATE SET
summary = EXCLUDED.summary,
current_focus = EXCLUDED.current_focus,
strengths = EXCLUDED.strengths,
highlights = EXCLUDED.highlights,
last_generated = EXCLUDED.last_generated,
updated_at = EXCLUDED.updated_at`

	_, err = s.conn.Exec(ctx, query, in.ID, in.UserID, in.Summary, in.CurrentFocus,
		in.Strengths, in.Highlights, in.LastGenerated, in.CreatedAt, in.UpdatedAt)
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *DB) GetProfileSource(ctx context.Context, userID int64) (src *entity.ProfileSource, err error) {
	ctx, span := s.startSpan(ctx, "GetProfileSource")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT id, COALESCE(role, ''), COALESCE(primary_goal, ''), COALESCE(company, ''),
COALESCE(website, ''), COALESCE(location, ''), COALESCE(one_liner, '')
FROM users WHERE id = $1`

	var s2 entity.ProfileSource
	err = s.conn.QueryRow(ctx, query, userID).Scan(&s2.UserID, &s2.Role, &s2.PrimaryGoal,
		&s2.Company, &s2.Website, &s2.Location, &s2.OneLiner)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &s2, nil
}

func (s *DB) ListActiveGoals(ctx context.Context, userID int64, limit int32) (goals []entity.ActiveGoal, err error) {
	ctx, span := s.startSpan(ctx, "ListActiveGoals")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT title, COALESCE(milestones, '[]') FROM goals
WHERE user_id = $1 AND status = 'active' ORDER BY created_at DESC LIMIT $2`

	rows, err := s.conn.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	goals = make([]entity.ActiveGoal, 0, limit)
	for rows.Next() {
		var (
			g   entity.ActiveGoal
			raw []byte
		)
		if err = rows.Scan(&g.Title, &raw); err != nil {
			return nil, s.mapError(err)
		}

		var milestones []struct {
			Completed bool `json:"completed"`
		}
		if err = json.Unmarshal(raw, &milestones); err != nil {
			return nil, err
		}
		for _, m := range milestones {
			if m.Completed {
				g.CompletedMilestones++
			}
		}
		goals = append(goals, g)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}
	return goals, nil
}

func (s *DB) CountDocuments(ctx context.Context, userID int64) (count int64, err error) {
	ctx, span := s.startSpan(ctx, "CountDocuments")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT COUNT(*) FROM documents WHERE user_id = $1`

	if err = s.conn.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, s.mapError(err)
	}
	return count, nil
}
