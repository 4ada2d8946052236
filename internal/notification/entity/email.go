package entity

import "time"

// OTPEmail is one verification code delivery to a recipient.
type OTPEmail struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}
