package inbound

import (
	"time"

	"github.com/tracksense/goalnet/internal/auth/entity"
)

type RequestOTPRequest struct {
	Email string `json:"email"`
}

type RequestOTPResponse struct {
	Success bool `json:"success"`
}

func (RequestOTPResponse) Message() string {
	return "A verification code has been sent to your email."
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type VerifyOTPResponse struct {
	Token     string      `json:"token"`
	IsNewUser bool        `json:"is_new_user"`
	User      UserPayload `json:"user"`
}

func (VerifyOTPResponse) Message() string {
	return "Verification successful."
}

type ProfileUpdateRequest struct {
	FullName    string   `json:"full_name"`
	Role        string   `json:"role"`
	PrimaryGoal string   `json:"primary_goal"`
	Company     string   `json:"company"`
	Website     string   `json:"website"`
	Location    string   `json:"location"`
	OneLiner    string   `json:"one_liner"`
	PhotoURL    string   `json:"photo_url"`
	Interests   []string `json:"interests"`
	Skills      []string `json:"skills"`
}

type UserPayload struct {
	ID              int64     `json:"id,string"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name,omitempty"`
	Role            string    `json:"role,omitempty"`
	PrimaryGoal     string    `json:"primary_goal,omitempty"`
	Company         string    `json:"company,omitempty"`
	Website         string    `json:"website,omitempty"`
	Location        string    `json:"location,omitempty"`
	OneLiner        string    `json:"one_liner,omitempty"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	Interests       []string  `json:"interests,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	ConnectionCount int32     `json:"connection_count"`
	CreatedAt       time.Time `json:"created_at"`
}

func newUserPayload(u entity.User) UserPayload {
	return UserPayload{
		ID:              u.ID,
		Email:           u.Email,
		FullName:        u.FullName,
		Role:            u.Role.String(),
		PrimaryGoal:     u.PrimaryGoal.String(),
		Company:         u.Company,
		Website:         u.Website,
		Location:        u.Location,
		OneLiner:        u.OneLiner,
		PhotoURL:        u.PhotoURL,
		Interests:       u.Interests,
		Skills:          u.Skills,
		ConnectionCount: u.ConnectionCount,
		CreatedAt:       u.CreatedAt,
	}
}
