package repository

import (
	"context"
	"fmt"

	"profolio/internal/database"
)

// Tables that carry a user_id foreign key and participate in ownership
// checks. The guard only ever interpolates names from this set.
const (
	TableCertifications     = "certifications"
	TableEducations         = "educations"
	TableExperiences        = "experiences"
	TableContactInformation = "contact_information"
)

var ownedTables = map[string]struct{}{
	TableCertifications:     {},
	TableEducations:         {},
	TableExperiences:        {},
	TableContactInformation: {},
}

// OwnershipGuard answers whether a child record belongs to a user. One
// parameterized query replaces a per-table existence check; zero rows is
// indistinguishable from a record owned by someone else, so callers report
// both as not-found.
type OwnershipGuard struct {
	db database.DB
}

func NewOwnershipGuard(db database.DB) *OwnershipGuard {
	return &OwnershipGuard{db: db}
}

func (g *OwnershipGuard) Owns(ctx context.Context, table string, recordID, userID int64) (bool, error) {
	if _, ok := ownedTables[table]; !ok {
		return false, fmt.Errorf("ownership check on unknown table %q", table)
	}

	var count int64
	row := g.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM `+table+` WHERE id = $1 AND user_id = $2`,
		recordID, userID,
	)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Exists is the admin variant: presence of the record regardless of owner.
func (g *OwnershipGuard) Exists(ctx context.Context, table string, recordID int64) (bool, error) {
	if _, ok := ownedTables[table]; !ok {
		return false, fmt.Errorf("existence check on unknown table %q", table)
	}

	var count int64
	row := g.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM `+table+` WHERE id = $1`,
		recordID,
	)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
