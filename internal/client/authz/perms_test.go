package authz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/personacli/internal/client/models"
)

var (
	admin    = models.Identity{ID: 1, Correo: "admin@test.com", Role: models.RoleAdministrator}
	standard = models.Identity{ID: 2, Correo: "juan@test.com", Role: models.RoleStandard}
)

func rec(id int64, correo string) models.PersonRecord {
	return models.PersonRecord{ID: id, Correo: correo}
}

func TestAdministrator_HasUnrestrictedRights(t *testing.T) {
	records := []models.PersonRecord{rec(1, "admin@test.com"), rec(2, "juan@test.com"), rec(3, "x@test.com")}

	require.True(t, CanCreate(admin))
	require.True(t, CanListAll(admin))
	for _, r := range records {
		require.True(t, CanView(admin, r))
		require.True(t, CanEdit(admin, r))
		require.True(t, CanDelete(admin, r))
	}
}

func TestStandardUser_OwnRecordOnly(t *testing.T) {
	own := rec(2, "juan@test.com")
	foreign := rec(3, "x@test.com")

	require.False(t, CanCreate(standard))
	require.False(t, CanListAll(standard))

	require.True(t, CanView(standard, foreign))
	require.True(t, CanEdit(standard, own))
	require.False(t, CanEdit(standard, foreign))

	// Delete stays administrator-only, even on the own record.
	require.False(t, CanDelete(standard, own))
	require.False(t, CanDelete(standard, foreign))
}

func TestScopeList(t *testing.T) {
	records := []models.PersonRecord{
		rec(2, "other-mail@test.com"),  // own id, different mail
		rec(7, "juan@test.com"),        // different id, own mail
		rec(9, "unrelated@test.com"),   // neither
		rec(1, "admin@test.com"),       // someone else's
	}

	scoped := ScopeList(standard, records)
	require.Len(t, scoped, 2)
	require.Equal(t, int64(2), scoped[0].ID)
	require.Equal(t, int64(7), scoped[1].ID)

	// Administrators see the input unchanged.
	require.Equal(t, records, ScopeList(admin, records))
}

func TestScopeList_EmptyInput(t *testing.T) {
	require.Empty(t, ScopeList(standard, nil))
}
