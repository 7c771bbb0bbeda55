package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// Role is the enumerated authorization role carried on Identity and
// referenced by PersonRecord.
type Role int

const (
	// RoleUnknown is the zero value; it never matches a real role.
	RoleUnknown Role = 0

	// RoleAdministrator has unrestricted list/create/edit/delete rights.
	RoleAdministrator Role = 1

	// RoleStandard may view everything but edit only its own record.
	RoleStandard Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return "administrador"
	case RoleStandard:
		return "cliente"
	default:
		return "desconocido"
	}
}

// UnmarshalJSON accepts both representations the backend emits for roles:
// a JSON number (1) and a quoted string ("1"). Different endpoints disagree,
// so normalization happens here, once, and nowhere else.
func (r *Role) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = RoleUnknown
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid role value %q: %w", data, err)
	}
	*r = Role(n)
	return nil
}

// MarshalJSON always emits the numeric form; the string form is a backend
// quirk the client never reproduces.
func (r Role) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(r))), nil
}
