package profile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"profolio/internal/repository"
	"profolio/internal/usecase/visibility"
)

type mockUserRepo struct {
	byUsername map[string]repository.User
}

func (m mockUserRepo) FindByID(context.Context, int64) (*repository.User, error) { return nil, nil }
func (m mockUserRepo) FindByUsername(_ context.Context, username string) (repository.User, error) {
	u, ok := m.byUsername[username]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}
func (m mockUserRepo) FindByIdentifier(context.Context, string) (*repository.User, error) {
	return nil, nil
}
func (m mockUserRepo) UsernameExists(context.Context, string) (bool, error) { return false, nil }
func (m mockUserRepo) EmailExists(context.Context, string) (bool, error)    { return false, nil }
func (m mockUserRepo) CreateWithProfile(context.Context, string, string, string) (repository.User, error) {
	return repository.User{}, nil
}
func (m mockUserRepo) UpdateUsername(context.Context, int64, string) error { return nil }
func (m mockUserRepo) UpdateEmail(context.Context, int64, string) error    { return nil }
func (m mockUserRepo) UpdatePassword(context.Context, int64, string) error { return nil }
func (m mockUserRepo) Update(context.Context, int64, string, string, string) error {
	return nil
}
func (m mockUserRepo) Delete(context.Context, int64) error                { return nil }
func (m mockUserRepo) ListAll(context.Context) ([]repository.User, error) { return nil, nil }

type mockProfileRepo struct {
	profile repository.Profile
	updated *repository.ProfileUpdate
}

func (m *mockProfileRepo) FindByUserID(context.Context, int64) (repository.Profile, error) {
	return m.profile, nil
}
func (m *mockProfileRepo) Update(_ context.Context, userID int64, in repository.ProfileUpdate) (repository.Profile, error) {
	m.updated = &in
	return repository.Profile{
		UserID:    userID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Pronouns:  in.Pronouns,
		Headline:  in.Headline,
		Country:   in.Country,
		City:      in.City,
		Bio:       in.Bio,
	}, nil
}

// capAware repos record the limit they were asked for and return that many
// synthetic rows, so the test can see exactly which caps the aggregate used.

type mockCertRepo struct{ total int }

func (m mockCertRepo) ListByUser(_ context.Context, userID int64) ([]repository.Certification, error) {
	out := make([]repository.Certification, m.total)
	for i := range out {
		out[i] = repository.Certification{ID: int64(i + 1), UserID: userID}
	}
	return out, nil
}
func (m mockCertRepo) ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]repository.Certification, error) {
	items, _ := m.ListByUser(ctx, userID)
	if limit > 0 && int(limit) < len(items) {
		items = items[:limit]
	}
	return items, nil
}
func (m mockCertRepo) CountByUser(context.Context, int64) (int64, error) { return int64(m.total), nil }
func (m mockCertRepo) Create(context.Context, int64, repository.CertificationInput) (int64, error) {
	return 0, nil
}
func (m mockCertRepo) Update(context.Context, int64, int64, repository.CertificationInput) error {
	return nil
}
func (m mockCertRepo) Delete(context.Context, int64, int64) error { return nil }
func (m mockCertRepo) AdminDelete(context.Context, int64) error   { return nil }

type mockEduRepo struct{ total int }

func (m mockEduRepo) ListByUser(_ context.Context, userID int64) ([]repository.Education, error) {
	out := make([]repository.Education, m.total)
	for i := range out {
		out[i] = repository.Education{ID: int64(i + 1), UserID: userID}
	}
	return out, nil
}
func (m mockEduRepo) ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]repository.Education, error) {
	items, _ := m.ListByUser(ctx, userID)
	if limit > 0 && int(limit) < len(items) {
		items = items[:limit]
	}
	return items, nil
}
func (m mockEduRepo) CountByUser(context.Context, int64) (int64, error) { return int64(m.total), nil }
func (m mockEduRepo) Create(context.Context, int64, repository.EducationInput) (int64, error) {
	return 0, nil
}
func (m mockEduRepo) Update(context.Context, int64, int64, repository.EducationInput) error {
	return nil
}
func (m mockEduRepo) Delete(context.Context, int64, int64) error { return nil }
func (m mockEduRepo) AdminDelete(context.Context, int64) error   { return nil }

type mockExpRepo struct{ total int }

func (m mockExpRepo) ListByUser(_ context.Context, userID int64) ([]repository.Experience, error) {
	out := make([]repository.Experience, m.total)
	for i := range out {
		out[i] = repository.Experience{ID: int64(i + 1), UserID: userID}
	}
	return out, nil
}
func (m mockExpRepo) ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]repository.Experience, error) {
	items, _ := m.ListByUser(ctx, userID)
	if limit > 0 && int(limit) < len(items) {
		items = items[:limit]
	}
	return items, nil
}
func (m mockExpRepo) CountByUser(context.Context, int64) (int64, error) { return int64(m.total), nil }
func (m mockExpRepo) Create(context.Context, int64, repository.ExperienceInput) (int64, error) {
	return 0, nil
}
func (m mockExpRepo) Update(context.Context, int64, int64, repository.ExperienceInput) error {
	return nil
}
func (m mockExpRepo) Delete(context.Context, int64, int64) error { return nil }
func (m mockExpRepo) AdminDelete(context.Context, int64) error   { return nil }

type mockContactRepo struct{ total int }

func (m mockContactRepo) ListByUser(_ context.Context, userID int64) ([]repository.ContactInformation, error) {
	out := make([]repository.ContactInformation, m.total)
	for i := range out {
		out[i] = repository.ContactInformation{ID: int64(i + 1), UserID: userID, Type: "email", Value: fmt.Sprintf("a%d@b.com", i)}
	}
	return out, nil
}
func (m mockContactRepo) ListPublicByUser(ctx context.Context, userID int64, limit int32) ([]repository.ContactInformation, error) {
	items, _ := m.ListByUser(ctx, userID)
	if limit > 0 && int(limit) < len(items) {
		items = items[:limit]
	}
	return items, nil
}
func (m mockContactRepo) CountByUser(context.Context, int64) (int64, error) {
	return int64(m.total), nil
}
func (m mockContactRepo) DuplicateExists(context.Context, int64, repository.ContactInformationInput, int64) (bool, error) {
	return false, nil
}
func (m mockContactRepo) Create(context.Context, int64, repository.ContactInformationInput) (int64, error) {
	return 0, nil
}
func (m mockContactRepo) Update(context.Context, int64, int64, repository.ContactInformationInput) error {
	return nil
}
func (m mockContactRepo) Delete(context.Context, int64, int64) error { return nil }
func (m mockContactRepo) AdminDelete(context.Context, int64) error   { return nil }

func strPtr(s string) *string { return &s }

func newAggregateService(total int) *Service {
	return NewService(
		mockUserRepo{byUsername: map[string]repository.User{"alice": {ID: 1, Username: "alice"}}},
		&mockProfileRepo{profile: repository.Profile{UserID: 1}},
		mockCertRepo{total: total},
		mockEduRepo{total: total},
		mockExpRepo{total: total},
		mockContactRepo{total: total},
	)
}

func TestUpdate_ExpandsPronounShorthand(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"he", "he/him"},
		{"she", "she/her"},
		{"they", "they/them"},
		{"ze/zir", "ze/zir"},
	}

	for _, tc := range cases {
		repo := &mockProfileRepo{}
		svc := NewService(mockUserRepo{}, repo, mockCertRepo{}, mockEduRepo{}, mockExpRepo{}, mockContactRepo{})

		p, err := svc.Update(context.Background(), 1, UpdateInput{Pronouns: strPtr(tc.in)})
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tc.in, err)
		}
		if p.Pronouns == nil || *p.Pronouns != tc.want {
			t.Fatalf("%s: expected pronouns %q, got %v", tc.in, tc.want, p.Pronouns)
		}
	}
}

func TestUpdate_NilPronounsUntouched(t *testing.T) {
	repo := &mockProfileRepo{}
	svc := NewService(mockUserRepo{}, repo, mockCertRepo{}, mockEduRepo{}, mockExpRepo{}, mockContactRepo{})

	if _, err := svc.Update(context.Background(), 1, UpdateInput{Bio: strPtr("hi")}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.updated.Pronouns != nil {
		t.Fatalf("expected nil pronouns in write, got %q", *repo.updated.Pronouns)
	}
}

func TestPublicByUsername_UnknownUser(t *testing.T) {
	svc := newAggregateService(0)
	_, err := svc.PublicByUsername(context.Background(), "ghost", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPublicByUsername_AnonymousCapped(t *testing.T) {
	svc := newAggregateService(10)

	agg, err := svc.PublicByUsername(context.Background(), "alice", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if agg.Projection != visibility.ProjectionPublic {
		t.Fatalf("expected public projection")
	}
	if len(agg.Certifications) != 3 || len(agg.Educations) != 3 || len(agg.Experiences) != 3 {
		t.Fatalf("expected 3-row previews, got %d/%d/%d",
			len(agg.Certifications), len(agg.Educations), len(agg.Experiences))
	}
	if len(agg.ContactInformation) != 4 {
		t.Fatalf("expected 4 contact rows, got %d", len(agg.ContactInformation))
	}
}

func TestPublicByUsername_OtherUserCapped(t *testing.T) {
	svc := newAggregateService(10)
	viewer := &repository.User{ID: 2, Username: "bob"}

	agg, err := svc.PublicByUsername(context.Background(), "alice", viewer)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if agg.Projection != visibility.ProjectionPublic {
		t.Fatalf("a logged-in non-owner must get the public projection")
	}
	if len(agg.Certifications) != 3 {
		t.Fatalf("expected 3-row preview, got %d", len(agg.Certifications))
	}
}

func TestPublicByUsername_OwnerUncapped(t *testing.T) {
	svc := newAggregateService(10)
	viewer := &repository.User{ID: 1, Username: "alice"}

	agg, err := svc.PublicByUsername(context.Background(), "alice", viewer)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if agg.Projection != visibility.ProjectionOwner {
		t.Fatalf("expected owner projection")
	}
	if len(agg.Certifications) != 10 || len(agg.ContactInformation) != 10 {
		t.Fatalf("owner view must be uncapped, got %d/%d",
			len(agg.Certifications), len(agg.ContactInformation))
	}
}
