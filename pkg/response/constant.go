package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode      = 1
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500

	DateFormat = "2006-01-02"
)
