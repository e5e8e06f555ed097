package education

import (
	"context"
	"errors"
	"testing"

	"profolio/internal/database"
	"profolio/internal/repository"
	"profolio/internal/usecase/visibility"
)

// fakeDB backs the ownership guard; every COUNT query scans out the
// configured value.
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

type mockEduRepo struct {
	count int64

	createdID int64
	updatedID int64
	deletedID int64
}

func (m *mockEduRepo) ListByUser(context.Context, int64) ([]repository.Education, error) {
	return nil, nil
}
func (m *mockEduRepo) ListPublicByUser(context.Context, int64, int32) ([]repository.Education, error) {
	return nil, nil
}
func (m *mockEduRepo) CountByUser(context.Context, int64) (int64, error) { return m.count, nil }
func (m *mockEduRepo) Create(context.Context, int64, repository.EducationInput) (int64, error) {
	m.createdID = 21
	return 21, nil
}
func (m *mockEduRepo) Update(_ context.Context, _ int64, id int64, _ repository.EducationInput) error {
	m.updatedID = id
	return nil
}
func (m *mockEduRepo) Delete(_ context.Context, _ int64, id int64) error {
	m.deletedID = id
	return nil
}
func (m *mockEduRepo) AdminDelete(_ context.Context, id int64) error {
	m.deletedID = id
	return nil
}

func TestCreate_AtLimit(t *testing.T) {
	repo := &mockEduRepo{count: visibility.MaxRecordsPerCategory}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{}))

	_, err := svc.Create(context.Background(), 1, repository.EducationInput{School: "MIT"})
	if !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
	if repo.createdID != 0 {
		t.Fatalf("create must not reach the repository at the limit")
	}
}

func TestCreate_UnderLimit(t *testing.T) {
	repo := &mockEduRepo{count: visibility.MaxRecordsPerCategory - 1}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{}))

	id, err := svc.Create(context.Background(), 1, repository.EducationInput{School: "MIT"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 21 {
		t.Fatalf("expected id 21, got %d", id)
	}
}

func TestUpdate_NotOwned(t *testing.T) {
	repo := &mockEduRepo{}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{count: 0}))

	err := svc.Update(context.Background(), 1, 99, repository.EducationInput{School: "MIT"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a record owned by someone else, got %v", err)
	}
	if repo.updatedID != 0 {
		t.Fatalf("update must not reach the repository without ownership")
	}
}

func TestUpdate_Owned(t *testing.T) {
	repo := &mockEduRepo{}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{count: 1}))

	if err := svc.Update(context.Background(), 1, 99, repository.EducationInput{School: "MIT"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.updatedID != 99 {
		t.Fatalf("expected update of record 99, got %d", repo.updatedID)
	}
}

func TestDelete_NotOwned(t *testing.T) {
	repo := &mockEduRepo{}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{count: 0}))

	err := svc.Delete(context.Background(), 1, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminDelete_Missing(t *testing.T) {
	repo := &mockEduRepo{}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{count: 0}))

	err := svc.AdminDelete(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminDelete_Exists(t *testing.T) {
	repo := &mockEduRepo{}
	svc := NewService(repo, nil, repository.NewOwnershipGuard(fakeDB{count: 1}))

	if err := svc.AdminDelete(context.Background(), 99); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.deletedID != 99 {
		t.Fatalf("expected delete of record 99, got %d", repo.deletedID)
	}
}
