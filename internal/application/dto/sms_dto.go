package dto

// SendSMSRequest cuerpo de POST /api/sms.
type SendSMSRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
