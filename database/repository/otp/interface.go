package otpRepo

import "citixo/models"

// OTPRepository defines data access for pending verification codes. A record
// is identified by its (email, purpose) pair; issuing a new code replaces any
// previous one for that pair.
type OTPRepository interface {
	Put(rec *models.OTPRecord) error
	Get(email, purpose string) (*models.OTPRecord, error)
	IncrementAttempts(email, purpose string) error
	MarkUsed(email, purpose string) error
}
