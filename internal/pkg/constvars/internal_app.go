package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CART_SESSION_KEY         ContextKey = "cart_session_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "MDPLT_SVC_"
)

const (
	MongoCollectionProducts = "products"
	MongoCollectionDoctors  = "doctors"
)

const (
	ResourcePatient     = "Patient"
	ResourceAppointment = "Appointment"
)

const (
	RedisKeyCartFormat            = "cart:%s"
	RedisKeyCheckoutSessionFormat = "checkout_session:%s"
	RedisKeyCartLockFormat        = "cart_lock:%s"
)

const (
	CurrencyBrazilianReal = "BRL"
)

const (
	RegistrationDefaultNote = "Initial consultation booked during patient registration"

	RegistrationStageCompleted        = "completed"
	RegistrationStageSchedulingFailed = "scheduling_failed"
)
