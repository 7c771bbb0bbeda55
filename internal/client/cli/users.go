package cli

import (
	"context"
	"fmt"
)

// Users renders the read-only users screen.
func (a *App) Users(ctx context.Context) {
	users, err := a.users.List(ctx)
	if err != nil {
		renderError(err)
		return
	}
	if len(users) == 0 {
		fmt.Println("No hay usuarios registrados")
		return
	}

	fmt.Printf("%-5s %-30s %-30s %-15s\n", "ID", "NOMBRE", "CORREO", "ROL")
	for _, u := range users {
		fmt.Printf("%-5d %-30s %-30s %-15s\n",
			u.ID,
			Truncate(FormatFullName(u.Nombre, u.Apellido), 28),
			Truncate(u.Correo, 28),
			u.Role.String(),
		)
	}
}
