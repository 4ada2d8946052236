package event

const OTPRequestedDestination string = "goalnet_otp_requested"
const OTPRequestedConsumerNotification string = "goalnet_otp_requested_notification"

type OTPRequestedMessage struct {
	Email         string `json:"email"`
	Code          string `json:"code"`
	ExpiresAtUnix int64  `json:"expires_at_unix"`
}
