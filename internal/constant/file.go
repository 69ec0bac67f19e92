package constant

const (
	MAX_FILE_SIZE = 2 * 1024 * 1024 // 2MB, inclusive

	PROFILE_PICTURE_DIR           = "profile_picture"
	PROFILE_PICTURE_THUMBNAIL_DIR = "profile_picture/thumbnail"
	PROFILE_PICTURE_FIELD         = "image"
	THUMBNAIL_WIDTH               = 200
	THUMBNAIL_HEIGHT              = 200
)
