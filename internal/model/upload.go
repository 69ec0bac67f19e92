package model

// Upload is a file received from a multipart form, already read into memory.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
	Size        int64
}

type ProfilePictureResponse struct {
	Image             string `json:"image"`
	ImageURL          string `json:"imageUrl"`
	ThumbnailImageURL string `json:"thumbnailImageUrl"`
}
