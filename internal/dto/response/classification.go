package response

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
)

type ClassificationResponse struct {
	ClassificationID int64  `json:"classification_id"`
	Name             string `json:"classification_name"`
}

func ClassificationsToResponse(classifications []*entity.Classification) []ClassificationResponse {
	out := make([]ClassificationResponse, 0, len(classifications))
	for _, c := range classifications {
		out = append(out, ClassificationResponse{
			ClassificationID: c.ID,
			Name:             c.Name,
		})
	}
	return out
}
