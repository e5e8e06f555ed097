package dto

import "profolio/internal/repository"

type AuthCertificationResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Organization   string  `json:"organization"`
	IssueDate      *string `json:"issue_date"`
	ExpirationDate *string `json:"expiration_date"`
	CredentialID   *string `json:"credential_id"`
	CredentialURL  *string `json:"credential_url"`
}

type PublicCertificationResponse struct {
	Name           string  `json:"name"`
	Organization   string  `json:"organization"`
	IssueDate      *string `json:"issue_date"`
	ExpirationDate *string `json:"expiration_date"`
	CredentialID   *string `json:"credential_id"`
	CredentialURL  *string `json:"credential_url"`
}

func NewAuthCertifications(items []repository.Certification) []AuthCertificationResponse {
	out := make([]AuthCertificationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, AuthCertificationResponse{
			ID:             it.ID,
			Name:           it.Name,
			Organization:   it.Organization,
			IssueDate:      it.IssueDate,
			ExpirationDate: it.ExpirationDate,
			CredentialID:   it.CredentialID,
			CredentialURL:  it.CredentialURL,
		})
	}
	return out
}

func NewPublicCertifications(items []repository.Certification) []PublicCertificationResponse {
	out := make([]PublicCertificationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, PublicCertificationResponse{
			Name:           it.Name,
			Organization:   it.Organization,
			IssueDate:      it.IssueDate,
			ExpirationDate: it.ExpirationDate,
			CredentialID:   it.CredentialID,
			CredentialURL:  it.CredentialURL,
		})
	}
	return out
}
