package middleware

// keys of values stored in context
type MiddleWareContextKey string

const (
	APPLICATION_ID = MiddleWareContextKey("application_id") // The context value is a string representing the ID of the API key used.
	REQUESTER      = MiddleWareContextKey("requester")      // The context value is a string representing the name of the API key used.
)
