package request

import "fmt"

const (
	picturePrefixFormat = "music-halls:%d:"
	pictureSuffix       = ".JPG"
)

// PictureParams are the path parameters of a picture lookup.
type PictureParams struct {
	HallID   int64  `json:"hall_id" validate:"gt=0"`
	FileName string `json:"file_name" validate:"required,number,max=20"`
}

// PicturePrefix is the key prefix shared by all pictures of a hall.
func PicturePrefix(hallID int64) string {
	return fmt.Sprintf(picturePrefixFormat, hallID)
}

// Key is the object key: music-halls:{hall_id}:{file_name}.JPG
func (p PictureParams) Key() string {
	return PicturePrefix(p.HallID) + p.FileName + pictureSuffix
}
