package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"profolio/internal/delivery/http/middleware"
	"profolio/internal/infrastructure/session"
	"profolio/internal/repository"
	"profolio/internal/usecase/authz"
	uccertification "profolio/internal/usecase/certification"
	uccontactinfo "profolio/internal/usecase/contactinfo"
	uceducation "profolio/internal/usecase/education"
	ucexperience "profolio/internal/usecase/experience"
	ucprofile "profolio/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

type emptyCertRepo struct{}

func (emptyCertRepo) ListByUser(context.Context, int64) ([]repository.Certification, error) {
	return nil, nil
}
func (emptyCertRepo) ListPublicByUser(context.Context, int64, int32) ([]repository.Certification, error) {
	return nil, nil
}
func (emptyCertRepo) CountByUser(context.Context, int64) (int64, error) { return 0, nil }
func (emptyCertRepo) Create(context.Context, int64, repository.CertificationInput) (int64, error) {
	return 0, nil
}
func (emptyCertRepo) Update(context.Context, int64, int64, repository.CertificationInput) error {
	return nil
}
func (emptyCertRepo) Delete(context.Context, int64, int64) error { return nil }
func (emptyCertRepo) AdminDelete(context.Context, int64) error   { return nil }

type emptyEduRepo struct{}

func (emptyEduRepo) ListByUser(context.Context, int64) ([]repository.Education, error) {
	return nil, nil
}
func (emptyEduRepo) ListPublicByUser(context.Context, int64, int32) ([]repository.Education, error) {
	return nil, nil
}
func (emptyEduRepo) CountByUser(context.Context, int64) (int64, error) { return 0, nil }
func (emptyEduRepo) Create(context.Context, int64, repository.EducationInput) (int64, error) {
	return 0, nil
}
func (emptyEduRepo) Update(context.Context, int64, int64, repository.EducationInput) error {
	return nil
}
func (emptyEduRepo) Delete(context.Context, int64, int64) error { return nil }
func (emptyEduRepo) AdminDelete(context.Context, int64) error   { return nil }

type emptyExpRepo struct{}

func (emptyExpRepo) ListByUser(context.Context, int64) ([]repository.Experience, error) {
	return nil, nil
}
func (emptyExpRepo) ListPublicByUser(context.Context, int64, int32) ([]repository.Experience, error) {
	return nil, nil
}
func (emptyExpRepo) CountByUser(context.Context, int64) (int64, error) { return 0, nil }
func (emptyExpRepo) Create(context.Context, int64, repository.ExperienceInput) (int64, error) {
	return 0, nil
}
func (emptyExpRepo) Update(context.Context, int64, int64, repository.ExperienceInput) error {
	return nil
}
func (emptyExpRepo) Delete(context.Context, int64, int64) error { return nil }
func (emptyExpRepo) AdminDelete(context.Context, int64) error   { return nil }

type emptyContactRepo struct{}

func (emptyContactRepo) ListByUser(context.Context, int64) ([]repository.ContactInformation, error) {
	return nil, nil
}
func (emptyContactRepo) ListPublicByUser(context.Context, int64, int32) ([]repository.ContactInformation, error) {
	return nil, nil
}
func (emptyContactRepo) CountByUser(context.Context, int64) (int64, error) { return 0, nil }
func (emptyContactRepo) DuplicateExists(context.Context, int64, repository.ContactInformationInput, int64) (bool, error) {
	return false, nil
}
func (emptyContactRepo) Create(context.Context, int64, repository.ContactInformationInput) (int64, error) {
	return 0, nil
}
func (emptyContactRepo) Update(context.Context, int64, int64, repository.ContactInformationInput) error {
	return nil
}
func (emptyContactRepo) Delete(context.Context, int64, int64) error { return nil }
func (emptyContactRepo) AdminDelete(context.Context, int64) error   { return nil }

// newPublicProfileApp mounts the public profile routes for user "alice"
// (id 7) with an empty set of category records and one logged-in session.
func newPublicProfileApp(t *testing.T) *fiber.App {
	t.Helper()

	repo := &stubUserRepo{user: repository.User{
		ID:       7,
		Username: "alice",
		Email:    "alice@x.com",
		Role:     repository.RoleUser,
	}}

	store := session.NewMemoryStore(time.Hour)
	if err := store.Set(context.Background(), "sid-1", 7); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	sessionMw := middleware.NewSessionMiddleware(authz.NewGate(store, repo), time.Hour)

	profileSvc := ucprofile.NewService(repo, stubProfileRepo{}, emptyCertRepo{}, emptyEduRepo{}, emptyExpRepo{}, emptyContactRepo{})
	certSvc := uccertification.NewService(emptyCertRepo{}, repo, nil)
	eduSvc := uceducation.NewService(emptyEduRepo{}, repo, nil)
	expSvc := ucexperience.NewService(emptyExpRepo{}, repo, nil)
	contactSvc := uccontactinfo.NewService(emptyContactRepo{}, repo, nil)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	NewPublicProfileHandler(profileSvc, certSvc, eduSvc, expSvc, contactSvc, sessionMw).RegisterRoutes(app)

	return app
}

func TestAggregate_OwnerProfileFields(t *testing.T) {
	app := newPublicProfileApp(t)

	req := httptest.NewRequest(http.MethodGet, "/profile/alice", nil)
	req.AddCookie(sessionCookie())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("got %d body=%s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), `"user_id":7`) {
		t.Fatalf("owner aggregate should carry the full profile record, got %s", body)
	}
}

func TestAggregate_AnonymousProfileFields(t *testing.T) {
	app := newPublicProfileApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile/alice", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("got %d body=%s", resp.StatusCode, body)
	}
	if strings.Contains(string(body), "user_id") {
		t.Fatalf("public aggregate must not expose the foreign key, got %s", body)
	}
}

func TestAggregate_UnknownUser(t *testing.T) {
	app := newPublicProfileApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile/nobody", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("got %d, want 404", resp.StatusCode)
	}
}
