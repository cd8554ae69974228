package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/services"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

// getRequiredText and getPassword are indirections used to facilitate testing.
var getRequiredText = GetRequiredText
var getPassword = GetPassword

func (a *App) isLoggedIn(ctx context.Context) bool {
	sc, err := services.FromContext(ctx)
	if err != nil {
		return false
	}
	return sc.State().Authenticated()
}

// getStatus renders the prompt suffix: "(johndoe a@b.com)" when signed in,
// empty otherwise. Admins get a trailing "#".
func (a *App) getStatus(ctx context.Context) string {
	sc, err := services.FromContext(ctx)
	if err != nil {
		return ""
	}
	u := sc.State().User
	switch {
	case u == nil:
		return ""
	case u.HasRole(models.RoleAdmin):
		return fmt.Sprintf("(%s %s)#", u.Username, u.Email)
	default:
		return fmt.Sprintf("(%s %s)", u.Username, u.Email)
	}
}

// Register prompts for a username, email and password and creates an
// account through the session controller. The password is wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	sc, err := services.FromContext(ctx)
	if err != nil {
		return err
	}

	username, err := getRequiredText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getRequiredText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := sc.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Username)
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	sc, err := services.FromContext(ctx)
	if err != nil {
		return err
	}

	email, err := getRequiredText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := sc.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", user.Username, user.Email)
	return nil
}

// Logout signs out and clears the saved session.
func (a *App) Logout(ctx context.Context) error {
	sc, err := services.FromContext(ctx)
	if err != nil {
		return err
	}
	if err := sc.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	sc, err := services.FromContext(ctx)
	if err != nil {
		return err
	}

	u := sc.State().User
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r)
	}
	access := "standard"
	if u.HasRole(models.RoleAdmin) {
		access = "administrator"
	}
	fmt.Fprintf(a.out, "id:       %s\nusername: %s\nemail:    %s\nroles:    %s\naccess:   %s\nsince:    %s\n",
		u.ID, u.Username, u.Email, strings.Join(roles, ", "), access, u.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// ShowToken prints the opaque auth token of the current session.
func (a *App) ShowToken(ctx context.Context) error {
	sc, err := services.FromContext(ctx)
	if err != nil {
		return err
	}

	token := sc.Token()
	if token == "" {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintln(a.out, token)
	return nil
}
