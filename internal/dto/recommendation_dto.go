package dto

import (
	"github.com/google/uuid"
)

type RecommendByUserRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
	TopK   int       `json:"top_k" validate:"omitempty,min=1,max=20"`
}

type RecommendByTitleRequest struct {
	Title string `json:"title" validate:"required"`
	TopK  int    `json:"top_k" validate:"omitempty,min=1,max=20"`
}

type RecommendByQueryRequest struct {
	Query string `json:"query" validate:"required"`
	TopK  int    `json:"top_k" validate:"omitempty,min=1,max=20"`
}

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}
