package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakumate/saku/internal/cli"
	"github.com/sakumate/saku/internal/finance"
	"github.com/sakumate/saku/internal/model"
	"github.com/sakumate/saku/internal/service"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage saving goals",
	}

	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(fundGoalCmd())
	cmd.AddCommand(updateGoalCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saving goals with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			goals, err := store.GetGoals(ctx)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println(cli.StyleInfo("No saving goals yet. Use 'saku goals add' to create one."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Target tabungan"))
			for _, goal := range goals {
				fmt.Println(renderGoalLine(&goal))
				if goal.Deadline != nil {
					fmt.Printf("     %s\n", cli.SubtleStyle.Render(
						fmt.Sprintf("deadline %s · id %s", goal.Deadline.Format("2006-01-02"), shortID(goal.ID))))
				} else {
					fmt.Printf("     %s\n", cli.SubtleStyle.Render("id "+shortID(goal.ID)))
				}
			}

			return nil
		},
	}
}

func addGoalCmd() *cobra.Command {
	var (
		flagEmoji    string
		flagDeadline string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <target>",
		Short: "Create a saving goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			if target <= 0 {
				return fmt.Errorf("target must be positive")
			}

			goal := &model.SavingGoal{
				CreatedAt:    time.Now(),
				Name:         args[0],
				Emoji:        flagEmoji,
				TargetAmount: target,
			}
			if flagDeadline != "" {
				deadline, err := parseDate(flagDeadline)
				if err != nil {
					return err
				}
				goal.Deadline = &deadline
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.CreateGoal(ctx, goal); err != nil {
				return err
			}

			fmt.Println(cli.StyleSuccess(fmt.Sprintf("Goal %q created, target %s.",
				goal.Name, finance.FormatRupiah(goal.TargetAmount))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagEmoji, "emoji", "e", "🎯", "emoji shown next to the goal")
	cmd.Flags().StringVarP(&flagDeadline, "deadline", "d", "", "optional deadline (yyyy-MM-dd)")

	return cmd
}

func fundGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund <id> <amount>",
		Short: "Add money toward a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			if amount <= 0 {
				return fmt.Errorf("amount must be positive")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			id, err := resolveGoal(ctx, store, args[0])
			if err != nil {
				return err
			}

			if err := store.AddToGoal(ctx, id, amount); err != nil {
				return err
			}

			goal, err := store.GetGoalByID(ctx, id)
			if err != nil {
				return err
			}

			fmt.Println(cli.StyleSuccess(fmt.Sprintf("Added %s to %q (%.0f%%).",
				finance.FormatRupiah(amount), goal.Name, goal.Progress())))
			if goal.Completed() {
				fmt.Println("🎉 " + cli.StyleSuccess("Target tercapai!"))
			}
			return nil
		},
	}
}

func updateGoalCmd() *cobra.Command {
	var (
		flagName     string
		flagEmoji    string
		flagTarget   string
		flagDeadline string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a goal's name, emoji, target, or deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if flagName == "" && flagEmoji == "" && flagTarget == "" && flagDeadline == "" {
				return fmt.Errorf("nothing to update; pass --name, --emoji, --target, or --deadline")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			id, err := resolveGoal(ctx, store, args[0])
			if err != nil {
				return err
			}
			goal, err := store.GetGoalByID(ctx, id)
			if err != nil {
				return err
			}

			if flagName != "" {
				goal.Name = flagName
			}
			if flagEmoji != "" {
				goal.Emoji = flagEmoji
			}
			if flagTarget != "" {
				target, err := parseAmount(flagTarget)
				if err != nil {
					return err
				}
				if target <= 0 {
					return fmt.Errorf("target must be positive")
				}
				goal.TargetAmount = target
			}
			if flagDeadline != "" {
				deadline, err := parseDate(flagDeadline)
				if err != nil {
					return err
				}
				goal.Deadline = &deadline
			}

			if err := store.UpdateGoal(ctx, goal); err != nil {
				return err
			}

			fmt.Println(cli.StyleSuccess(fmt.Sprintf("Goal %q updated.", goal.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagName, "name", "n", "", "new name")
	cmd.Flags().StringVarP(&flagEmoji, "emoji", "e", "", "new emoji")
	cmd.Flags().StringVarP(&flagTarget, "target", "t", "", "new target amount")
	cmd.Flags().StringVarP(&flagDeadline, "deadline", "d", "", "new deadline (yyyy-MM-dd)")

	return cmd
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saving goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			id, err := resolveGoal(ctx, store, args[0])
			if err != nil {
				return err
			}

			if err := store.DeleteGoal(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.StyleSuccess("Goal deleted."))
			return nil
		},
	}
}

// resolveGoal accepts a full id, a short id prefix, or a goal name.
func resolveGoal(ctx context.Context, store service.Storage, ref string) (string, error) {
	goals, err := store.GetGoals(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, goal := range goals {
		if goal.ID == ref {
			return goal.ID, nil
		}
		if len(ref) >= 4 && len(ref) < len(goal.ID) && goal.ID[:len(ref)] == ref {
			matches = append(matches, goal.ID)
		}
		if goal.Name == ref {
			matches = append(matches, goal.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no goal matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q is ambiguous (%d matches)", ref, len(matches))
	}
}
