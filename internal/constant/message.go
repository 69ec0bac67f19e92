package constant

const (
	MSG_PROFILE_UPDATED         = "User profile updated successfully!"
	MSG_PROFILE_PICTURE_UPDATED = "Profile picture updated successfully!"
	MSG_JOB_CREATED             = "Job created successfully!"
	MSG_JOB_UPDATED             = "Job updated successfully!"
	MSG_JOB_DELETED             = "Job deleted successfully!"
	MSG_JOB_DELETE_FORBIDDEN    = "Either job was deleted or you are not authorized to delete this job!"
	MSG_JOB_APPLIED             = "You have successfully applied for this job."
	MSG_JOB_SAVED               = "Job saved successfully."
	MSG_APPLICATION_REMOVED     = "Job application removed successfully!"
	MSG_APPLICATION_FORBIDDEN   = "Either job application was removed or you are not authorized to remove this job!"
	MSG_SAVED_JOB_REMOVED       = "Saved job removed successfully!"
	MSG_SAVED_JOB_FORBIDDEN     = "Either saved job was removed or you are not authorized to remove this job!"
	MSG_REGISTERED              = "You have registered successfully."
	MSG_PASSWORD_RESET_SENT     = "If the email is registered, a reset code has been sent to it."
	MSG_PASSWORD_RESET          = "Your password has been reset successfully."
	MSG_LOGGED_OUT              = "You have been logged out."
)
