package main

import (
	"fmt"
	"os"

	"github.com/BugHunter-Coder/fasting-friend/config"
	"github.com/BugHunter-Coder/fasting-friend/models"
	"github.com/BugHunter-Coder/fasting-friend/services"

	"github.com/spf13/cobra"
)

// fastctl is the operator CLI. Role changes happen here, never through
// the HTTP profile endpoints.
func main() {
	root := &cobra.Command{
		Use:   "fastctl",
		Short: "Operator tooling for the fasting-friend backend",
	}

	promote := &cobra.Command{
		Use:   "promote-admin <email>",
		Short: "Grant the admin role to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitDB()
			res := config.DB.Model(&models.User{}).
				Where("email = ?", args[0]).
				Update("role", models.RoleAdmin)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("no user with email %s", args[0])
			}
			cmd.Printf("promoted %s to admin\n", args[0])
			return nil
		},
	}

	demote := &cobra.Command{
		Use:   "demote-admin <email>",
		Short: "Revoke the admin role from a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitDB()
			res := config.DB.Model(&models.User{}).
				Where("email = ?", args[0]).
				Update("role", models.RoleUser)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("no user with email %s", args[0])
			}
			cmd.Printf("demoted %s to user\n", args[0])
			return nil
		},
	}

	var seedPassword string
	seed := &cobra.Command{
		Use:   "seed <email>",
		Short: "Create an account (for staging environments)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitDB()
			user, err := services.RegisterUser(args[0], seedPassword, "Seeded User")
			if err != nil {
				return err
			}
			cmd.Printf("created user %d (%s)\n", user.ID, user.Email)
			return nil
		},
	}
	seed.Flags().StringVar(&seedPassword, "password", "changeme123", "initial password")

	root.AddCommand(promote, demote, seed)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
