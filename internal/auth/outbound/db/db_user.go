package db

import (
	"context"

	"github.com/tracksense/goalnet/internal/auth/entity"
)

const userColumns = `
	id, email,
	COALESCE(full_name, ''), COALESCE(role, ''), COALESCE(primary_goal, ''),
	COALESCE(company, ''), COALESCE(website, ''), COALESCE(location, ''),
	COALESCE(one_liner, ''), COALESCE(photo_url, ''),
	COALESCE(interests, '{}'), COALESCE(skills, '{}'),
	connection_count, created_at, updated_at`

func (s *DB) scanUser(row interface{ Scan(...any) error }) (*entity.User, error) {
	var u entity.User
	var role, primaryGoal string

	err := row.Scan(
		&u.ID, &u.Email,
		&u.FullName, &role, &primaryGoal,
		&u.Company, &u.Website, &u.Location,
		&u.OneLiner, &u.PhotoURL,
		&u.Interests, &u.Skills,
		&u.ConnectionCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Role = entity.UserRole(role)
	u.PrimaryGoal = entity.PrimaryGoal(primaryGoal)

	return &u, nil
}

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	user, err := s.scanUser(s.conn.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	user, err := s.scanUser(s.conn.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	const query = `INSERT INTO users (id, email) VALUES ($1, $2)`

	_, err = s.conn.Exec(ctx, query, user.ID, user.Email)
	return s.mapError(err)
}

func (s *DB) UpdateUserProfile(ctx context.Context, in entity.UpdateUserProfile) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserProfile")
	defer func() { s.endSpan(span, err) }()

	const query = `
		UPDATE users SET
			full_name = NULLIF($2, ''),
			role = NULLIF($3, ''),
			primary_goal = NULLIF($4, ''),
			company = NULLIF($5, ''),
			website = NULLIF($6, ''),
			location = NULLIF($7, ''),
			one_liner = NULLIF($8, ''),
			photo_url = NULLIF($9, ''),
			interests = COALESCE($10, '{}'),
			skills = COALESCE($11, '{}'),
			updated_at = now()
		WHERE id = $1`

	_, err = s.conn.Exec(ctx, query,
		in.ID, in.FullName, in.Role.String(), in.PrimaryGoal.String(),
		in.Company, in.Website, in.Location, in.OneLiner, in.PhotoURL,
		in.Interests, in.Skills,
	)
	return s.mapError(err)
}
