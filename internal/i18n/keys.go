package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"
	// ErrKeyPersistenceUnavailable is used when no database is configured or its breaker is open.
	ErrKeyPersistenceUnavailable = "error.persistence_unavailable"
	ErrKeyFeedingTargetNotFound  = "error.feeding_target_not_found"
)

// Validation message translation keys, one per rejected request field.
const (
	ErrKeyWeightRequired              = "error.validation.weight_required"
	ErrKeyInvalidWeight               = "error.validation.weight_kg"
	ErrKeyInvalidObjective            = "error.validation.objective"
	ErrKeyInvalidBodyCondition        = "error.validation.body_condition"
	ErrKeyInvalidActivityLevel        = "error.validation.activity_level"
	ErrKeyInvalidAgeMonths            = "error.validation.age_months"
	ErrKeyInvalidBirthDate            = "error.validation.birth_date"
	ErrKeyInvalidEstimatedAdultWeight = "error.validation.estimated_adult_weight_kg"
	ErrKeyInvalidDogID                = "error.validation.dog_id"
	ErrKeyInvalidLimit                = "error.validation.limit"
)
