package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/personacli/internal/client/forms"
)

// Input indirections used as test seams; tests swap these to avoid
// touching the terminal.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials and authenticates. On success, if a
// protected command was interrupted by the guard, that command is
// replayed.
func (a *App) Login(ctx context.Context) {
	correo, err := getSimpleText(a.reader, "Correo", os.Stdout)
	if err != nil {
		renderError(err)
		return
	}
	password, err := getPassword("Contraseña", os.Stdout)
	if err != nil {
		renderError(err)
		return
	}
	secret := string(password)
	wipe(password)

	id, err := a.sessions.Login(ctx, correo, secret)
	if err != nil {
		renderError(err)
		return
	}
	fmt.Printf("Bienvenido, %s\n", FormatFullName(id.Nombre, id.Apellido))

	if a.returnTo != "" {
		line := a.returnTo
		a.returnTo = ""
		a.dispatch(ctx, line)
	}
}

// Register prompts for the registration fields and creates an account.
// It never logs the new account in.
func (a *App) Register(ctx context.Context) {
	form, err := promptRegistration(a.reader, os.Stdout)
	if err != nil {
		renderError(err)
		return
	}

	msg, err := a.sessions.Register(ctx, form)
	if err != nil {
		renderError(err)
		return
	}
	if msg == "" {
		msg = "Usuario registrado correctamente"
	}
	fmt.Println(msg)
}

func promptRegistration(reader *bufio.Reader, w io.Writer) (forms.RegistrationForm, error) {
	var form forms.RegistrationForm
	var err error

	if form.Nombre, err = getSimpleText(reader, "Nombre", w); err != nil {
		return form, err
	}
	if form.Apellido, err = getSimpleText(reader, "Apellido", w); err != nil {
		return form, err
	}
	if form.Correo, err = getSimpleText(reader, "Correo", w); err != nil {
		return form, err
	}

	password, err := getPassword("Contraseña", w)
	if err != nil {
		return form, err
	}
	confirm, err := getPassword("Confirmar contraseña", w)
	if err != nil {
		wipe(password)
		return form, err
	}
	if string(password) != string(confirm) {
		wipe(password)
		wipe(confirm)
		return form, fmt.Errorf("las contraseñas no coinciden")
	}
	form.Contrasena = string(password)
	wipe(password)
	wipe(confirm)

	return form, nil
}

// Logout unconditionally drops the session.
func (a *App) Logout(ctx context.Context) {
	a.sessions.Logout(ctx)
	a.returnTo = ""
	fmt.Println("Sesión cerrada")
}
