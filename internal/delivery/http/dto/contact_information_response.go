package dto

import "profolio/internal/repository"

type AuthContactInformationResponse struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type PublicContactInformationResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func NewAuthContactInformation(items []repository.ContactInformation) []AuthContactInformationResponse {
	out := make([]AuthContactInformationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, AuthContactInformationResponse{ID: it.ID, Type: it.Type, Value: it.Value})
	}
	return out
}

func NewPublicContactInformation(items []repository.ContactInformation) []PublicContactInformationResponse {
	out := make([]PublicContactInformationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, PublicContactInformationResponse{Type: it.Type, Value: it.Value})
	}
	return out
}
