package main

import (
	"github.com/spf13/cobra"
)

var helloCmd = &cobra.Command{
	Use:   "hello [name]",
	Short: "Call the greeting endpoint",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, cancel := newClient(cmd)
		defer cancel()

		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		g, err := c.Hello(ctx, name)
		if err != nil {
			return err
		}
		return printJSON(cmd, g)
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}
