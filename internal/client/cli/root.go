package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/personacli/internal/client/api"
	"github.com/dmitrijs2005/personacli/internal/client/authz"
	"github.com/dmitrijs2005/personacli/internal/client/forms"
	"github.com/dmitrijs2005/personacli/internal/client/models"
	"github.com/dmitrijs2005/personacli/internal/client/services"
)

func (a *App) status() string {
	s := ""
	if id, ok := a.sessions.CurrentIdentity(); ok {
		s = id.Correo + " " + id.Role.String()
	}
	if mode := a.getMode(); mode != "" {
		if s != "" {
			s += " "
		}
		s += string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the command loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Personas CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("personas %s> ", a.status())
		if !scanner.Scan() {
			break
		}
		if quit := a.dispatch(ctx, scanner.Text()); quit {
			return
		}
	}
}

// dispatch executes one command line and reports whether the REPL should
// terminate.
func (a *App) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "help":
		a.help()

	case "login":
		a.Login(ctx)
	case "register":
		a.Register(ctx)
	case "logout":
		a.Logout(ctx)

	case "list":
		if a.allow(ctx, line) {
			a.List(ctx, strings.Join(args, " "))
		}
	case "show":
		if a.allow(ctx, line) {
			a.Show(ctx, args)
		}
	case "new":
		if a.allow(ctx, line) {
			a.New(ctx)
		}
	case "edit":
		if a.allow(ctx, line) {
			a.Edit(ctx, args)
		}
	case "delete":
		if a.allow(ctx, line) {
			a.Delete(ctx, args)
		}
	case "users":
		if a.allow(ctx, line) {
			a.Users(ctx)
		}
	case "stats":
		if a.allow(ctx, line) {
			a.Stats(ctx)
		}

	case "health":
		a.Health(ctx)

	case "exit", "quit":
		fmt.Println("Bye!")
		return true

	default:
		fmt.Println("Unknown command:", cmd)
	}
	return false
}

func (a *App) help() {
	if _, ok := a.sessions.CurrentIdentity(); ok {
		fmt.Println("Available commands: list [search], show <id>, new, edit <id>, delete <id>, users, stats, health, logout, exit")
	} else {
		fmt.Println("Available commands: login, register, health, exit")
	}
}

// allow runs the access guard for a protected command. On redirect the
// requested command line is remembered and replayed after a successful
// login.
func (a *App) allow(ctx context.Context, line string) bool {
	v := authz.Decide(a.sessions.State(), line)
	switch v.Decision {
	case authz.DecisionAllow:
		return true
	case authz.DecisionWait:
		fmt.Println("Session check still pending, try again in a moment")
		return false
	default:
		fmt.Println("Please login first")
		a.returnTo = v.ReturnTo
		a.Login(ctx)
		return false
	}
}

// renderError prints any service or transport failure the way the
// original screens did: field errors next to their fields, server
// messages verbatim, one generic line for connectivity problems.
func renderError(err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, services.ErrNotAuthenticated):
		fmt.Println("Please login first")
	case errors.Is(err, services.ErrNotAllowed):
		fmt.Println("No tienes permisos para esta acción")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Println("Error de conexión con el servidor")
	default:
		if ve, ok := forms.AsValidationError(err); ok {
			renderFieldErrors(ve.Fields)
			return
		}
		if re, ok := api.AsRequestError(err); ok {
			if re.Message != "" {
				fmt.Println(re.Message)
			}
			renderFieldErrors(re.Fields)
			return
		}
		fmt.Println(err.Error())
	}
}

func renderFieldErrors(fields []models.FieldError) {
	for _, fe := range fields {
		fmt.Printf("  %s: %s\n", fe.Field, fe.Message)
	}
}
