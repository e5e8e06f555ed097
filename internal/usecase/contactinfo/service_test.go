package contactinfo

import (
	"context"
	"errors"
	"testing"

	"profolio/internal/database"
	"profolio/internal/repository"
	"profolio/internal/usecase/visibility"
)

type fakeDB struct{ count int64 }

func (f fakeDB) Ping(context.Context) error                          { return nil }
func (f fakeDB) Close() error                                        { return nil }
func (f fakeDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (f fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (f fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return countRow{count: f.count}
}
func (f fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not implemented")
}

type countRow struct{ count int64 }

func (r countRow) Scan(dest ...any) error {
	if p, ok := dest[0].(*int64); ok {
		*p = r.count
	}
	return nil
}

type mockContactRepo struct {
	count int64
	dups  map[string]int64 // "type/value" -> record id holding it

	createdID      int64
	updatedID      int64
	lastDupExclude int64
}

func (m *mockContactRepo) ListByUser(context.Context, int64) ([]repository.ContactInformation, error) {
	return nil, nil
}
func (m *mockContactRepo) ListPublicByUser(context.Context, int64, int32) ([]repository.ContactInformation, error) {
	return nil, nil
}
func (m *mockContactRepo) CountByUser(context.Context, int64) (int64, error) { return m.count, nil }
func (m *mockContactRepo) DuplicateExists(_ context.Context, _ int64, in repository.ContactInformationInput, excludeID int64) (bool, error) {
	m.lastDupExclude = excludeID
	id, ok := m.dups[in.Type+"/"+in.Value]
	if !ok {
		return false, nil
	}
	return id != excludeID, nil
}
func (m *mockContactRepo) Create(context.Context, int64, repository.ContactInformationInput) (int64, error) {
	m.createdID = 21
	return 21, nil
}
func (m *mockContactRepo) Update(_ context.Context, _ int64, id int64, _ repository.ContactInformationInput) error {
	m.updatedID = id
	return nil
}
func (m *mockContactRepo) Delete(context.Context, int64, int64) error { return nil }
func (m *mockContactRepo) AdminDelete(context.Context, int64) error   { return nil }

func TestValidType(t *testing.T) {
	for _, typ := range []string{
		"email", "phone", "website", "linkedin", "github", "twitter", "facebook", "instagram",
	} {
		if !ValidType(typ) {
			t.Fatalf("%q should be a valid contact type", typ)
		}
	}
	if ValidType("Email") {
		t.Fatalf("contact types are case sensitive")
	}
	if ValidType("") {
		t.Fatalf("empty contact type should be rejected")
	}
	if ValidType("carrier-pigeon") {
		t.Fatalf("unknown contact type should be rejected")
	}
}

func TestCreate_AtLimit(t *testing.T) {
	repo := &mockContactRepo{count: visibility.MaxRecordsPerCategory}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{}))

	_, err := svc.Create(context.Background(), 1, repository.ContactInformationInput{Type: "email", Value: "a@b.com"})
	if !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
}

func TestCreate_InvalidType(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{}))

	_, err := svc.Create(context.Background(), 1, repository.ContactInformationInput{Type: "pager", Value: "123"})
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	repo := &mockContactRepo{dups: map[string]int64{"email/a@b.com": 4}}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{}))

	_, err := svc.Create(context.Background(), 1, repository.ContactInformationInput{Type: "email", Value: "a@b.com"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if repo.createdID != 0 {
		t.Fatalf("create must not reach the repository on duplicate")
	}
}

func TestCreate_SameTypeDifferentValue(t *testing.T) {
	repo := &mockContactRepo{dups: map[string]int64{"email/a@b.com": 4}}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{}))

	id, err := svc.Create(context.Background(), 1, repository.ContactInformationInput{Type: "email", Value: "other@b.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 21 {
		t.Fatalf("expected id 21, got %d", id)
	}
}

func TestUpdate_KeepingOwnValue(t *testing.T) {
	// Record 4 already holds email/a@b.com; re-saving record 4 with the same
	// pair must not trip the duplicate check.
	repo := &mockContactRepo{dups: map[string]int64{"email/a@b.com": 4}}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{count: 1}))

	if err := svc.Update(context.Background(), 1, 4, repository.ContactInformationInput{Type: "email", Value: "a@b.com"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastDupExclude != 4 {
		t.Fatalf("expected duplicate check to exclude record 4, got %d", repo.lastDupExclude)
	}
	if repo.updatedID != 4 {
		t.Fatalf("expected update of record 4, got %d", repo.updatedID)
	}
}

func TestUpdate_CollidesWithOtherRecord(t *testing.T) {
	repo := &mockContactRepo{dups: map[string]int64{"email/a@b.com": 4}}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{count: 1}))

	err := svc.Update(context.Background(), 1, 9, repository.ContactInformationInput{Type: "email", Value: "a@b.com"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUpdate_NotOwned(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{count: 0}))

	err := svc.Update(context.Background(), 1, 9, repository.ContactInformationInput{Type: "email", Value: "a@b.com"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
