package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/personacli/internal/client/authz"
	"github.com/dmitrijs2005/personacli/internal/client/forms"
	"github.com/dmitrijs2005/personacli/internal/client/models"
)

func parseID(args []string, usage string) (int64, bool) {
	if len(args) != 1 {
		fmt.Println("Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Println("Invalid id:", args[0])
		return 0, false
	}
	return id, true
}

// List renders the personas table, optionally filtered by a search term.
func (a *App) List(ctx context.Context, search string) {
	recs, err := a.personas.List(ctx, search)
	if err != nil {
		renderError(err)
		return
	}
	if len(recs) == 0 {
		fmt.Println("No hay personas registradas")
		return
	}

	fmt.Printf("%-5s %-30s %-30s %-15s %-12s\n", "ID", "NOMBRE", "CORREO", "TELÉFONO", "NACIMIENTO")
	for _, rec := range recs {
		fmt.Printf("%-5d %-30s %-30s %-15s %-12s\n",
			rec.ID,
			Truncate(FormatFullName(rec.Nombre, rec.Apellido), 28),
			Truncate(rec.Correo, 28),
			FormatPhone(rec.Telefono),
			FormatDateShort(rec.FechaNacimiento),
		)
	}
	fmt.Printf("Total: %d\n", len(recs))
}

// Show renders the persona detail screen, including which actions the
// current identity may take on the record.
func (a *App) Show(ctx context.Context, args []string) {
	id, ok := parseID(args, "show <id>")
	if !ok {
		return
	}

	rec, err := a.personas.Get(ctx, id)
	if err != nil {
		renderError(err)
		return
	}

	fmt.Printf("[%s] %s\n", Initials(rec.Nombre, rec.Apellido), FormatFullName(rec.Nombre, rec.Apellido))
	fmt.Printf("  Correo:     %s\n", rec.Correo)
	fmt.Printf("  Teléfono:   %s\n", FormatPhone(rec.Telefono))
	fmt.Printf("  Nacimiento: %s", FormatDateShort(rec.FechaNacimiento))
	if age, ok := Age(rec.FechaNacimiento, time.Now()); ok {
		fmt.Printf(" (%d años)", age)
	}
	fmt.Println()
	if rec.Direccion != "" {
		fmt.Printf("  Dirección:  %s\n", rec.Direccion)
	}
	fmt.Printf("  Rol:        %s\n", rec.RolID.String())
	if rec.CreatedAt != nil {
		fmt.Printf("  Creado:     %s\n", rec.CreatedAt.Format("02/01/2006 15:04"))
	}
	if rec.UpdatedAt != nil {
		fmt.Printf("  Actualizado: %s\n", rec.UpdatedAt.Format("02/01/2006 15:04"))
	}

	if identity, ok := a.sessions.CurrentIdentity(); ok {
		actions := ""
		if authz.CanEdit(identity, rec) {
			actions += " edit"
		}
		if authz.CanDelete(identity, rec) {
			actions += " delete"
		}
		if actions != "" {
			fmt.Printf("  Acciones:  %s\n", actions)
		}
	}
}

// New renders the creation form. The create control is only offered to
// identities the resolver allows; the service re-checks before sending.
func (a *App) New(ctx context.Context) {
	identity, ok := a.sessions.CurrentIdentity()
	if !ok || !authz.CanCreate(identity) {
		fmt.Println("No tienes permisos para esta acción")
		return
	}

	form, err := a.promptPersona(forms.PersonaForm{})
	if err != nil {
		renderError(err)
		return
	}

	rec, err := a.personas.Create(ctx, form)
	if err != nil {
		renderError(err)
		return
	}
	fmt.Printf("Persona creada con id %d\n", rec.ID)
}

// Edit renders the edit form pre-filled with the record's current values;
// pressing Enter keeps a field unchanged.
func (a *App) Edit(ctx context.Context, args []string) {
	id, ok := parseID(args, "edit <id>")
	if !ok {
		return
	}

	rec, err := a.personas.Get(ctx, id)
	if err != nil {
		renderError(err)
		return
	}
	if identity, ok := a.sessions.CurrentIdentity(); !ok || !authz.CanEdit(identity, rec) {
		fmt.Println("No tienes permisos para esta acción")
		return
	}

	form, err := a.promptPersona(forms.PersonaForm{
		Nombre:          rec.Nombre,
		Apellido:        rec.Apellido,
		Correo:          rec.Correo,
		Telefono:        rec.Telefono,
		FechaNacimiento: rec.FechaNacimiento,
		Direccion:       rec.Direccion,
		RolID:           rec.RolID,
	})
	if err != nil {
		renderError(err)
		return
	}

	updated, err := a.personas.Update(ctx, id, form)
	if err != nil {
		renderError(err)
		return
	}
	fmt.Printf("Persona %d actualizada\n", updated.ID)
}

// Delete asks for confirmation before removing a record.
func (a *App) Delete(ctx context.Context, args []string) {
	id, ok := parseID(args, "delete <id>")
	if !ok {
		return
	}

	rec, err := a.personas.Get(ctx, id)
	if err != nil {
		renderError(err)
		return
	}

	answer, err := getSimpleText(a.reader,
		fmt.Sprintf("¿Estás seguro de eliminar a %s? (y/N)", FormatFullName(rec.Nombre, rec.Apellido)),
		os.Stdout)
	if err != nil || (answer != "y" && answer != "Y") {
		fmt.Println("Cancelado")
		return
	}

	if err := a.personas.Delete(ctx, id); err != nil {
		renderError(err)
		return
	}
	fmt.Printf("Persona %d eliminada\n", id)
}

// Stats renders the dashboard counters.
func (a *App) Stats(ctx context.Context) {
	st, err := a.personas.Stats(ctx)
	if err != nil {
		renderError(err)
		return
	}
	fmt.Printf("Total de personas: %d\n", st.Total)
	fmt.Printf("Con teléfono:      %d\n", st.ConTelefono)
	fmt.Printf("Con dirección:     %d\n", st.ConDireccion)
}

// Health probes the backend and reports the outcome.
func (a *App) Health(ctx context.Context) {
	if err := a.api.Health(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		fmt.Println("Servidor no disponible")
		return
	}
	a.setMode(ctx, ModeOnline)
	fmt.Println("Servidor disponible")
}

func (a *App) promptPersona(current forms.PersonaForm) (forms.PersonaForm, error) {
	var form forms.PersonaForm
	var err error
	w := os.Stdout

	if form.Nombre, err = GetOptionalText(a.reader, "Nombre", current.Nombre, w); err != nil {
		return form, err
	}
	if form.Apellido, err = GetOptionalText(a.reader, "Apellido", current.Apellido, w); err != nil {
		return form, err
	}
	if form.Correo, err = GetOptionalText(a.reader, "Correo", current.Correo, w); err != nil {
		return form, err
	}
	if form.Telefono, err = GetOptionalText(a.reader, "Teléfono", current.Telefono, w); err != nil {
		return form, err
	}
	if form.FechaNacimiento, err = GetOptionalText(a.reader, "Fecha de nacimiento (AAAA-MM-DD)", current.FechaNacimiento, w); err != nil {
		return form, err
	}
	if form.Direccion, err = GetOptionalText(a.reader, "Dirección", current.Direccion, w); err != nil {
		return form, err
	}
	form.RolID = current.RolID
	if form.RolID == models.RoleUnknown {
		form.RolID = models.RoleStandard
	}
	return form, nil
}
