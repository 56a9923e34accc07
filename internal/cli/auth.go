package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dklimov/pointctl/internal/render"
	"github.com/dklimov/pointctl/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authenticate against the Minut API and cache the token",
		Long: "Prompts for an OAuth client ID, username and password, exchanges them\n" +
			"for a bearer token (password grant) and stores it locally. On success\n" +
			"the device list is downloaded into the cache as well.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAuth(cmd)
		},
	}
}

// runAuth is the one flow allowed to run without a cached token: token
// exchange first, then a device refresh as an explicit second step. A
// failed refresh does not roll back the stored token.
func (a *App) runAuth(cmd *cobra.Command) error {
	ctx := cmd.Context()

	prompt := "Enter client ID"
	if a.cfg.ClientID != "" {
		prompt = fmt.Sprintf("Enter client ID (default %s)", a.cfg.ClientID)
	}
	clientID, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if clientID == "" {
		clientID = a.cfg.ClientID
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	authSvc := services.NewAuthService(a.newClient(""), a.store)
	if err := authSvc.Authenticate(ctx, clientID, username, password); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	fmt.Fprintln(a.out, "Authentication successful")

	client, err := a.authedClient()
	if err != nil {
		return err
	}
	devices, err := services.NewDeviceService(client, a.store).Refresh(ctx)
	if err != nil {
		// Token is already stored; the user can retry with 'fetch'.
		a.log.Warn(ctx, "device refresh failed", "err", err)
		fmt.Fprintf(a.out, "Could not fetch devices: %v\n", err)
		return nil
	}
	fmt.Fprintln(a.out, render.FetchSummary(devices))
	return nil
}

func (a *App) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the cached token and device list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			authSvc := services.NewAuthService(a.newClient(""), a.store)
			if err := authSvc.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}
