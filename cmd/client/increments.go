package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var incrementsCmd = &cobra.Command{
	Use:     "increments",
	Aliases: []string{"inc"},
	Short:   "Manage counters",
}

var incrementsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List counter keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, cancel := newClient(cmd)
		defer cancel()

		keys, err := c.IncrementKeys(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd, keys)
	},
}

var incrementsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a counter value (0 when unset)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, cancel := newClient(cmd)
		defer cancel()

		inc, err := c.GetIncrement(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, inc)
	},
}

var incrementsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Overwrite a counter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("value must be an integer: %w", err)
		}

		c, ctx, cancel := newClient(cmd)
		defer cancel()

		inc, err := c.SetIncrement(ctx, args[0], value)
		if err != nil {
			return err
		}
		return printJSON(cmd, inc)
	},
}

var incrementsAddCmd = &cobra.Command{
	Use:   "add [key] [delta]",
	Short: "Atomically add delta to a counter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("delta must be an integer: %w", err)
		}

		c, ctx, cancel := newClient(cmd)
		defer cancel()

		if err := c.AddIncrement(ctx, args[0], delta); err != nil {
			return err
		}
		inc, err := c.GetIncrement(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, inc)
	},
}

var incrementsDeleteCmd = &cobra.Command{
	Use:   "delete [key]",
	Short: "Delete a counter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, cancel := newClient(cmd)
		defer cancel()

		if err := c.DeleteIncrement(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func init() {
	incrementsCmd.AddCommand(incrementsKeysCmd, incrementsGetCmd, incrementsSetCmd, incrementsAddCmd, incrementsDeleteCmd)
	rootCmd.AddCommand(incrementsCmd)
}
