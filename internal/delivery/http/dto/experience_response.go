package dto

import "profolio/internal/repository"

type AuthExperienceResponse struct {
	ID          int64   `json:"id"`
	Company     string  `json:"company"`
	Title       string  `json:"title"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	ExpType     *string `json:"exp_type"`
	Description *string `json:"description"`
}

type PublicExperienceResponse struct {
	Company     string  `json:"company"`
	Title       string  `json:"title"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	ExpType     *string `json:"exp_type"`
	Description *string `json:"description"`
}

func NewAuthExperiences(items []repository.Experience) []AuthExperienceResponse {
	out := make([]AuthExperienceResponse, 0, len(items))
	for _, it := range items {
		out = append(out, AuthExperienceResponse{
			ID:          it.ID,
			Company:     it.Company,
			Title:       it.Title,
			StartDate:   it.StartDate,
			EndDate:     it.EndDate,
			ExpType:     it.ExpType,
			Description: it.Description,
		})
	}
	return out
}

func NewPublicExperiences(items []repository.Experience) []PublicExperienceResponse {
	out := make([]PublicExperienceResponse, 0, len(items))
	for _, it := range items {
		out = append(out, PublicExperienceResponse{
			Company:     it.Company,
			Title:       it.Title,
			StartDate:   it.StartDate,
			EndDate:     it.EndDate,
			ExpType:     it.ExpType,
			Description: it.Description,
		})
	}
	return out
}
