package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakumate/saku/internal/cli"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the user profile",
	}

	cmd.AddCommand(showProfileCmd())
	cmd.AddCommand(setProfileCmd())

	return cmd
}

func showProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profile, err := store.GetProfile(ctx)
			if err != nil {
				return err
			}
			if profile.Name == "" {
				fmt.Println(cli.StyleInfo("No profile yet. Use 'saku profile set --name <name>'."))
				return nil
			}

			content := fmt.Sprintf("%s %s", profile.AvatarEmoji, profile.Name)
			if profile.University != "" {
				content += "\n" + cli.SubtleStyle.Render(profile.University)
			}
			fmt.Println(cli.RenderBox("Profil", content))
			return nil
		},
	}
}

func setProfileCmd() *cobra.Command {
	var (
		flagName       string
		flagUniversity string
		flagAvatar     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if flagName == "" && flagUniversity == "" && flagAvatar == "" {
				return fmt.Errorf("nothing to set; pass --name, --university, or --avatar")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profile, err := store.GetProfile(ctx)
			if err != nil {
				return err
			}

			if flagName != "" {
				profile.Name = flagName
			}
			if flagUniversity != "" {
				profile.University = flagUniversity
			}
			if flagAvatar != "" {
				profile.AvatarEmoji = flagAvatar
			}

			if err := store.SaveProfile(ctx, profile); err != nil {
				return err
			}

			fmt.Println(cli.StyleSuccess("Profile saved."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagName, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&flagUniversity, "university", "u", "", "university or school")
	cmd.Flags().StringVarP(&flagAvatar, "avatar", "a", "", "avatar emoji")

	return cmd
}
