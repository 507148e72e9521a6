package constvars

const (
	ListProductsSuccessMessage  = "successfully retrieved products"
	ListDoctorsSuccessMessage   = "successfully retrieved doctors"
	CreateProductSuccessMessage = "successfully created product"
	CreateDoctorSuccessMessage  = "successfully created doctor"

	CreateCartSessionSuccessMessage  = "successfully created cart session"
	GetCartSuccessMessage            = "successfully retrieved cart"
	AddCartItemSuccessMessage        = "successfully added item to cart"
	UpdateCartQuantitySuccessMessage = "successfully updated cart quantity"
	ClearCartSuccessMessage          = "successfully cleared cart"

	BeginCheckoutSuccessMessage   = "successfully started checkout"
	BackToCartSuccessMessage      = "successfully returned to cart"
	CompletePaymentSuccessMessage = "successfully completed payment"
	GetCheckoutSuccessMessage     = "successfully retrieved checkout session"

	ListSlotsSuccessMessage         = "successfully retrieved bookable slots"
	CreateAppointmentSuccessMessage = "successfully created appointment"

	RegisterPatientSuccessMessage = "successfully registered patient"
	RetrySchedulingSuccessMessage = "successfully scheduled appointment"
)
