package main

import (
	"github.com/spf13/cobra"

	"github.com/mdalaminab17/portfolio/content"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Work with the content file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Validate a content file and summarize its tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := content.Load(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s: ok\n", args[0])
			cmd.Printf("  profile       %s\n", c.Profile.Name)
			cmd.Printf("  certificates  %d\n", len(c.Certificates))
			cmd.Printf("  skills        %d categories\n", len(c.Skills))
			cmd.Printf("  projects      %d\n", len(c.Projects))
			cmd.Printf("  contact       %d channels, %d social links\n", len(c.Contact), len(c.Social))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in tables as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := content.Marshal(content.Default())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	})
	return cmd
}
