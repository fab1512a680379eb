package constvars

// Client-facing messages. These are the only strings that leave the service
// in production mode.
const (
	ErrClientCannotProcessRequest          = "we cannot process your request, please check your input"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please try again later"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "your session is invalid or expired, please log in again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientRatingOutOfRange              = "rating must be between 1 and 5"
	ErrClientInvalidImageFormat            = "invalid image, please upload a valid picture"
	ErrClientServerLongRespond             = "server took too long to respond, please try again"
)

// Dev messages, logged and returned only outside production.
const (
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON request body"
	ErrDevCannotParseQueryParams   = "cannot parse query parameters"
	ErrDevCannotMarshalJSON        = "cannot marshal value to JSON"
	ErrDevRatingScoreOutOfRange    = "rating score outside allowed range"
	ErrDevServerDeadlineExceeded   = "request deadline exceeded"
	ErrDevURLParamIDValidation     = "url parameter %s is missing or invalid"
	ErrDevInvalidCredentials       = "credentials do not match any admin account"
	ErrDevAuthTokenMissing         = "authorization token missing from request"
	ErrDevAuthTokenInvalid         = "authorization token invalid"
	ErrDevAuthSigningMethod        = "unexpected jwt signing method"
	ErrDevAuthGenerateToken        = "failed to generate jwt token"
	ErrDevAuthInvalidSession       = "session not found or expired"
	ErrDevDBFailedToFindDocument   = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument = "mongodb failed to update document"
	ErrDevDBFailedToDeleteDocument = "mongodb failed to delete document"
	ErrDevDBFailedToIterateCursor  = "mongodb failed to iterate cursor"
	ErrDevDBStringNotObjectID      = "value is not a valid mongodb object id"
	ErrDevDoctorNotFound           = "doctor document does not exist"
	ErrDevRedisGetData             = "redis failed to get data"
	ErrDevRedisSetData             = "redis failed to set data"
	ErrDevRedisDeleteData          = "redis failed to delete data"
	ErrDevMinioFailedToPutObject   = "minio failed to put object into bucket %s"
	ErrDevRabbitMQPublishMessage   = "rabbitmq failed to publish message to queue %s"
)
