package db

import (
	"context"
	"time"

	"github.com/tracksense/goalnet/internal/auth/entity"
)

func (s *DB) CountOTPRequestsSince(ctx context.Context, email string, since time.Time) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "CountOTPRequestsSince")
	defer func() { s.endSpan(span, err) }()

	const query = `SELECT COUNT(*) FROM otp_requests WHERE email = $1 AND created_at > $2`

	var count int64
	if err = s.conn.QueryRow(ctx, query, email, since).Scan(&count); err != nil {
		return 0, s.mapError(err)
	}

	return count, nil
}

func (s *DB) CreateOTPRequest(ctx context.Context, in entity.OTPRequest) (err error) {
	ctx, span := s.startSpan(ctx, "CreateOTPRequest")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO otp_requests (id, email, code_hash, expires_at)
		VALUES ($1, $2, $3, $4)`

	_, err = s.conn.Exec(ctx, query, in.ID, in.Email, in.CodeHash, in.ExpiresAt)
	return s.mapError(err)
}

func (s *DB) GetLatestValidOTPRequest(ctx context.Context, email string, now time.Time) (_ *entity.OTPRequest, err error) {
	ctx, span := s.startSpan(ctx, "GetLatestValidOTPRequest")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, email, code_hash, expires_at, consumed, created_at
		FROM otp_requests
		WHERE email = $1 AND consumed = false AND expires_at > $2
		ORDER BY created_at DESC
		LIMIT 1`

	var rec entity.OTPRequest
	err = s.conn.QueryRow(ctx, query, email, now).
		Scan(&rec.ID, &rec.Email, &rec.CodeHash, &rec.ExpiresAt, &rec.Consumed, &rec.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &rec, nil
}

// ConsumeOTPRequest flips consumed on that exact record, conditionally. It
// returns false when another request already consumed it.
func (s *DB) ConsumeOTPRequest(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ConsumeOTPRequest")
	defer func() { s.endSpan(span, err) }()

	const query = `UPDATE otp_requests SET consumed = true WHERE id = $1 AND consumed = false`

	tag, err := s.conn.Exec(ctx, query, id)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}
