package response

const (
	MessageSuccess         = "Success"
	MessageTooManyRequests = "too many requests"
	DefaultErrorMessage    = "Something went wrong"
)
