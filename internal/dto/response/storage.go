package response

type BucketListResponse struct {
	Buckets []string `json:"buckets"`
}

type PictureListResponse struct {
	Files []string `json:"files"`
}

type PictureURLResponse struct {
	URL string `json:"url"`
}
