package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/credittransfer/internal/client/client"
	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/dmitrijs2005/credittransfer/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and creates a new account.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.reader, a.out); err != nil {
		return err
	}
	if req.FirstName, err = getSimpleText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	if err := a.authService.Register(ctx, req); err != nil {
		return a.report(ctx, "register", err)
	}
	a.printf("Registered. You can log in now.\n")
	return nil
}

// Login prompts for credentials, opens a session and lands on the
// dashboard for the user's role.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	a.stopNotifications()
	screen, err := a.authService.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		a.setScreen(session.ScreenEntry)
		if errors.Is(err, client.ErrUnauthorized) {
			a.printf("Invalid username or password.\n")
			return err
		}
		return a.report(ctx, "login", err)
	}

	a.engine.Reset()
	a.land(ctx, screen)
	a.printf("Logged in. Landing: %s\n", screen)
	return nil
}

// Logout closes the session and returns to the entry screen.
func (a *App) Logout(ctx context.Context) error {
	a.stopNotifications()
	a.engine.Reset()
	screen, err := a.authService.Logout(ctx)
	a.setScreen(screen)
	if err != nil {
		return a.report(ctx, "logout", err)
	}
	a.printf("Logged out.\n")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.guard(viewWhoAmI); err != nil {
		return err
	}
	id, _ := a.gate.Identity()
	renderIdentity(a.out, id, session.Roles(id), session.Landing(id))
	return nil
}

// views guarded by the session gate. RequiredRoles only matter when role
// enforcement is switched on.
var (
	staffRoles = []session.Role{session.RoleAdmin, session.RoleFaculty}

	viewWhoAmI        = session.View{Name: "whoami", Path: "/me"}
	viewPending       = session.View{Name: "pending", Path: string(session.ScreenFacultyDashboard), RequiredRoles: staffRoles}
	viewResult        = session.View{Name: "result", Path: "/faculty/request/:id/result", RequiredRoles: staffRoles}
	viewHistory       = session.View{Name: "history", Path: "/faculty/history", RequiredRoles: staffRoles}
	viewReport        = session.View{Name: "report", Path: "/admin/request/:id/pdf", RequiredRoles: staffRoles}
	viewNotifications = session.View{Name: "notifications", Path: string(session.ScreenStudentDashboard), RequiredRoles: []session.Role{session.RoleStudent}}
	viewMyRequests    = session.View{Name: "requests", Path: "/student/requests", RequiredRoles: []session.Role{session.RoleStudent}}
)
