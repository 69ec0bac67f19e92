package constant

const (
	ERR_VALIDATION_CODE                 = "VALIDATION_ERROR"
	ERR_INVALID_REQUEST_BODY_ERROR_CODE = "INVALID_REQUEST_BODY_ERROR"
	ERR_INTENRAL_SERVER_ERROR_MESSAGE   = "Something went wrong. If the problem persists, please contact support"
	ERR_INVALID_REQUEST_BODY_MESSAGE    = "The request is invalid or malformed"
	ERR_NOT_FOUND_ERROR                 = "NOT_FOUND_ERROR"
	ERR_UNATHORIZED_ERROR               = "UNAUTHORIZED_ERROR"
	ERR_CONFLICT_MESSAGE                = "The resource is being changed by another request, please try again."

	ERR_EMAIL_TAKEN_MESSAGE     = "The email has already been taken."
	ERR_ALREADY_APPLIED_MESSAGE = "You already applied on this job."
	ERR_ALREADY_SAVED_MESSAGE   = "You already saved this job."

	ERR_PROFILE_PICTURE_FAILED_MESSAGE   = "Unable to update your profile picture, please try again."
	ERR_PROFILE_PICTURE_CONFLICT_MESSAGE = "Another profile picture update is in progress, please try again."
)
