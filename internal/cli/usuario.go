package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/usuarios-api/pkg/client"
)

func newUsuarioListCmd() *cobra.Command {
	var activos, premium bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				users []client.Usuario
				err   error
			)
			switch {
			case premium:
				users, err = apiClient.Usuarios().ListPremiumActivos(ctx)
			case activos:
				users, err = apiClient.Usuarios().ListActivos(ctx)
			default:
				users, err = apiClient.Usuarios().List(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return renderUsuarios(cmd.OutOrStdout(), users)
		},
	}

	cmd.Flags().BoolVar(&activos, "activos", false, "only ACTIVO users")
	cmd.Flags().BoolVar(&premium, "premium", false, "only premium ACTIVO users")
	cmd.MarkFlagsMutuallyExclusive("activos", "premium")

	return cmd
}

func newUsuarioGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get user details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			u, err := apiClient.Usuarios().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return renderUsuario(cmd.OutOrStdout(), u)
		},
	}
}

func newUsuarioCreateCmd() *cobra.Command {
	var req client.CreateUsuarioRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := apiClient.Usuarios().Create(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			return renderUsuario(cmd.OutOrStdout(), u)
		},
	}

	cmd.Flags().StringVar(&req.Nombre, "nombre", "", "user name")
	cmd.Flags().StringVar(&req.Email, "email", "", "user email")
	cmd.Flags().BoolVar(&req.Premium, "premium", false, "create as premium")
	cmd.Flags().StringVar(&req.Estado, "estado", "", "initial state (default ACTIVO)")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUsuarioEstadoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estado <id> <ACTIVO|INACTIVO|ELIMINADO>",
		Short: "Change a user's state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			u, err := apiClient.Usuarios().UpdateEstado(context.Background(), id, strings.ToUpper(args[1]))
			if err != nil {
				return fmt.Errorf("failed to update user state: %w", err)
			}

			return renderUsuario(cmd.OutOrStdout(), u)
		},
	}
}

func newUsuarioPremiumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "premium <id>",
		Short: "Upgrade a user to premium",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			u, err := apiClient.Usuarios().UpgradePremium(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to upgrade user: %w", err)
			}

			return renderUsuario(cmd.OutOrStdout(), u)
		},
	}
}

func newUsuarioDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !yes && stdinIsTerminal() {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete user %d? [y/N]: ", id)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			if err := apiClient.Usuarios().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "User %d deleted\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")

	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID: %s", raw)
	}
	return id, nil
}
