package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingDataKey          = "data"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingResponseCountKey = "response_count"

	LoggingCartSessionKey        = "cart_session_id"
	LoggingProductIDKey          = "product_id"
	LoggingQuantityKey           = "quantity"
	LoggingSubtotalCentsKey      = "subtotal_cents"
	LoggingStageKey              = "stage"
	LoggingPatientIDKey          = "patient_id"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingInstitutionIDKey      = "institution_id"
	LoggingConfirmationKey       = "confirmation_id"
	LoggingQueueKey              = "queue"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
