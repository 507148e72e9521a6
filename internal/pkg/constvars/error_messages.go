package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"numeric":          "must be a number",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"url":              "must be a valid URL",
	"uuid":             "must be a valid UUID",
	"datetime":         "must be a valid date in the %s format",
	"cpf":              "must be a valid CPF document number",
	"slot_time":        "must be one of the bookable half-hour slots",
	"appointment_type": "must be 'consultation', 'follow-up' or 'emergency'",
	"not_past_date":    "must not be in the past",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientCartEmpty                     = "your cart is empty"
	ErrClientCartSessionMissing            = "no cart session supplied"
	ErrClientProductNotFound               = "the product you requested is not available"
	ErrClientInvalidDisplayPrice           = "the product price could not be read"
	ErrClientCheckoutNotStarted            = "checkout has not been started for this cart"
	ErrClientCheckoutAlreadyDone           = "this checkout was already completed"
	ErrClientPaymentNotConfirmed           = "your payment was not confirmed"
	ErrClientSlotNotBookable               = "the requested time is not a bookable slot"
	ErrClientBookingIncomplete             = "doctor, date and time are all required to book"
	ErrClientRegistrationLinkInvalid       = "this registration link is invalid or expired"
	ErrClientSchedulingFailedAfterRegister = "your registration was saved, but the first appointment could not be scheduled; please try scheduling again"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime            = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDisplayPrice    = "cannot parse display price string into centavos"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevCartSessionMissing         = "cart session id missing from request context"
	ErrDevCartEmptyOnCheckout        = "checkout entry attempted with an empty cart"
	ErrDevCheckoutStageTransition    = "illegal checkout stage transition"
	ErrDevPaymentNotConfirmed        = "payment gateway did not confirm the payment"
	ErrDevSlotNotBookable            = "appointment time is not one of the canonical slots"
	ErrDevBookingFieldsMissing       = "doctor, date and time must all be present"
	ErrDevRegistrationLinkInvalid    = "registration link token invalid or expired"
	ErrDevSchedulingStepFailed       = "appointment scheduling failed after patient commit"
	ErrDevURLParamIDValidationFailed = "failed to validate URL param %s"
	ErrDevTooManyRequests            = "rate limit quota exceeded"

	// Mongo
	ErrDevDBFailedToFindDocument     = "failed to find document on mongoDB"
	ErrDevDBFailedToInsertDocument   = "failed to insert document on mongoDB"
	ErrDevDBFailedToIterateDocuments = "failed to iterate mongoDB documents"
	ErrDevDBStringNotObjectID        = "failed converting string to mongoDB ObjectID"

	// Redis
	ErrDevRedisGetNoData      = "failed to get data with key %s from redis"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisIncrementValue = "failed to increment value on redis"
	ErrDevRedisUnlock         = "failed to release redis lock"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// Minio
	ErrDevMinioFailedToCreateObject  = "failed to create object on bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object URL on bucket %s"

	// Record store
	ErrDevStoreCreateResource = "failed to create %s resource on record store"
	ErrDevStoreGetResource    = "failed to get %s resource from record store"
	ErrDevStoreDecodeResponse = "failed to decode record store response for %s"

	// Payment gateway
	ErrDevGatewayConfirmPayment = "failed to confirm payment with gateway"

	ErrDevServerProcess          = "server unable to process the request"
	ErrDevServerDeadlineExceeded = "server took too long to process the request"
)
