package upload

type UploadResponse struct {
	URL string `json:"url" example:"/static/uploads/3f0c9a52-7d1e-4b8e-9d0a-1f2e3d4c5b6a.png"`
}
