package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY   ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "DCPNT_SVC_"
)

const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionUsers        = "users"
	MongoCollectionAdmins       = "admins"
	MongoCollectionDeviceTokens = "device_tokens"
)

// The push dispatcher consumes at most this many tokens per queue message.
const (
	PushTokenBatchSize = 100
)

const (
	SortByNameAsc    = "name_asc"
	SortByNameDesc   = "name_desc"
	SortByRatingAsc  = "rating_asc"
	SortByRatingDesc = "rating_desc"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
