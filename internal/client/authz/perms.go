// Package authz holds the pure authorization decisions of the client: the
// permission resolver mapping (identity, record) to allowed actions, and
// the access guard deciding whether a protected view may render.
//
// Nothing here performs I/O. These checks gate what the UI offers and what
// requests it issues; the backend is still assumed to enforce authorization
// on its own.
package authz

import "github.com/dmitrijs2005/personacli/internal/client/models"

// CanCreate reports whether id may create persona records.
func CanCreate(id models.Identity) bool {
	return id.Role == models.RoleAdministrator
}

// CanListAll reports whether id may list every persona record. Identities
// without this right see only records matching ScopeList.
func CanListAll(id models.Identity) bool {
	return id.Role == models.RoleAdministrator
}

// CanView reports whether id may read rec. Read access is unrestricted in
// this design.
func CanView(id models.Identity, rec models.PersonRecord) bool {
	return true
}

// CanEdit reports whether id may modify rec: administrators always, other
// identities only their own record.
func CanEdit(id models.Identity, rec models.PersonRecord) bool {
	return id.Role == models.RoleAdministrator || rec.ID == id.ID
}

// CanDelete reports whether id may delete rec.
func CanDelete(id models.Identity, rec models.PersonRecord) bool {
	return id.Role == models.RoleAdministrator
}

// ScopeList narrows recs to what a non-administrator may see: records whose
// id or contact email matches the identity's own. Administrators get the
// slice back unchanged.
func ScopeList(id models.Identity, recs []models.PersonRecord) []models.PersonRecord {
	if CanListAll(id) {
		return recs
	}
	scoped := make([]models.PersonRecord, 0, 1)
	for _, rec := range recs {
		if rec.ID == id.ID || rec.Correo == id.Correo {
			scoped = append(scoped, rec)
		}
	}
	return scoped
}
