package transfer

type MediaUploadResponse struct {
	Files []UploadedFile `json:"files"`
}

type UploadedFile struct {
	URL string `json:"url"`
}
