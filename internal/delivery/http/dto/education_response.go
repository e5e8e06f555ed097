package dto

import "profolio/internal/repository"

type AuthEducationResponse struct {
	ID        int64   `json:"id"`
	School    string  `json:"school"`
	Degree    *string `json:"degree"`
	Field     *string `json:"field"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type PublicEducationResponse struct {
	School    string  `json:"school"`
	Degree    *string `json:"degree"`
	Field     *string `json:"field"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func NewAuthEducations(items []repository.Education) []AuthEducationResponse {
	out := make([]AuthEducationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, AuthEducationResponse{
			ID:        it.ID,
			School:    it.School,
			Degree:    it.Degree,
			Field:     it.Field,
			StartDate: it.StartDate,
			EndDate:   it.EndDate,
		})
	}
	return out
}

func NewPublicEducations(items []repository.Education) []PublicEducationResponse {
	out := make([]PublicEducationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, PublicEducationResponse{
			School:    it.School,
			Degree:    it.Degree,
			Field:     it.Field,
			StartDate: it.StartDate,
			EndDate:   it.EndDate,
		})
	}
	return out
}
