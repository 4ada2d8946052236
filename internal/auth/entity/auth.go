package entity

import "time"

type User struct {
	ID              int64
	Email           string
	FullName        string
	Role            UserRole
	PrimaryGoal     PrimaryGoal
	Company         string
	Website         string
	Location        string
	OneLiner        string
	PhotoURL        string
	Interests       []string
	Skills          []string
	ConnectionCount int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OTPRequest is one issued verification code. The plaintext code is never
// stored; CodeHash is a keyed one-way digest.
type OTPRequest struct {
	ID        int64
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	Consumed  bool
	CreatedAt time.Time
}

type UpdateUserProfile struct {
	ID          int64
	FullName    string
	Role        UserRole
	PrimaryGoal PrimaryGoal
	Company     string
	Website     string
	Location    string
	OneLiner    string
	PhotoURL    string
	Interests   []string
	Skills      []string
}
