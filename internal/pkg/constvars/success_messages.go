package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Doctor-related messages
	DoctorListSuccess    = "doctors fetched successfully"
	DoctorGetSuccess     = "doctor fetched successfully"
	DoctorCreatedSuccess = "doctor created successfully"
	DoctorUpdatedSuccess = "doctor updated successfully"
	DoctorDeletedSuccess = "doctor deleted successfully"
	DoctorPhotoSuccess   = "doctor photo uploaded successfully"

	// Rating messages
	RatingSubmittedSuccess = "rating submitted successfully"

	// Device / notification messages
	DeviceRegisteredSuccess   = "device registered successfully"
	NotificationQueuedSuccess = "notification queued for delivery"

	// Auth messages
	LoginSuccess = "successfully login"
)
