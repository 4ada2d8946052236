package db

import (
	"context"

	"github.com/tracksense/goalnet/internal/event/entity"
)

const eventColumns = `id, name, COALESCE(headline, ''), COALESCE(description, ''),
	COALESCE(tags, '{}'), COALESCE(location, ''), starts_at, created_by, created_at`

func scanEvent(row interface{ Scan(...any) error }) (*entity.Event, error) {
	var e entity.Event

	err := row.Scan(&e.ID, &e.Name, &e.Headline, &e.Description,
		&e.Tags, &e.Location, &e.StartsAt, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *DB) GetEvent(ctx context.Context, id int64) (ev *entity.Event, err error) {
	ctx, span := s.startSpan(ctx, "GetEvent")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	ev, err = scanEvent(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return ev, nil
}

func (s *DB) ListUpcomingEvents(ctx context.Context, limit int32) (events []entity.Event, err error) {
	ctx, span := s.startSpan(ctx, "ListUpcomingEvents")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + eventColumns + ` FROM events
		WHERE starts_at > now() ORDER BY starts_at ASC LIMIT $1`

	rows, err := s.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	events = make([]entity.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, s.mapError(err)
		}
		events = append(events, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return events, nil
}

func (s *DB) CreateEventConnection(ctx context.Context, in entity.EventConnection) (err error) {
	ctx, span := s.startSpan(ctx, "CreateEventConnection")
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO event_connections (id, event_id, organizer_id, participant_id, joined_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = s.conn.Exec(ctx, query, in.ID, in.EventID, in.OrganizerID, in.ParticipantID, in.JoinedAt)

	return s.mapError(err)
}

func (s *DB) ListEventParticipants(ctx context.Context, eventID int64) (participants []entity.Participant, err error) {
	ctx, span := s.startSpan(ctx, "ListEventParticipants")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ec.id, u.id, COALESCE(u.full_name, ''), u.email, COALESCE(u.photo_url, ''), ec.joined_at
		FROM event_connections ec
		JOIN users u ON u.id = ec.participant_id
		WHERE ec.event_id = $1
		ORDER BY ec.joined_at ASC`

	rows, err := s.conn.Query(ctx, query, eventID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	participants = make([]entity.Participant, 0)
	for rows.Next() {
		var p entity.Participant
		if err := rows.Scan(&p.ConnectionID, &p.UserID, &p.FullName, &p.Email, &p.PhotoURL, &p.JoinedAt); err != nil {
			return nil, s.mapError(err)
		}
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return participants, nil
}

func (s *DB) GetUserProfile(ctx context.Context, userID int64) (profile *entity.UserProfile, err error) {
	ctx, span := s.startSpan(ctx, "GetUserProfile")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT id, COALESCE(full_name, ''), COALESCE(role, ''), COALESCE(primary_goal, ''),
		COALESCE(interests, '{}'), COALESCE(skills, '{}'), COALESCE(location, '')
		FROM users WHERE id = $1`

	var p entity.UserProfile
	err = s.conn.QueryRow(ctx, query, userID).Scan(&p.ID, &p.FullName, &p.Role,
		&p.PrimaryGoal, &p.Interests, &p.Skills, &p.Location)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &p, nil
}
