package request

type ClassificationRequest struct {
	Name string `json:"classification_name" validate:"required"`
}

type AttachClassificationRequest struct {
	ClassificationID int64 `json:"classification_id" validate:"required,gt=0"`
}
