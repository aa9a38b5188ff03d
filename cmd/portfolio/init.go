package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mdalaminab17/portfolio/scaffold"
)

func newInitCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write .env.example, README.md and content.yaml for a new site",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			data := scaffold.DataFor(dir)
			if url != "" {
				data.SiteURL = url
			}
			created, err := scaffold.Write(dir, data)
			for _, p := range created {
				cmd.Printf("  created %s\n", p)
			}
			if errors.Is(err, scaffold.ErrExists) {
				return errors.New("content.yaml already exists; refusing to overwrite")
			}
			if err != nil {
				return err
			}
			cmd.Println("\nNext: copy .env.example to .env, edit content.yaml, then run 'portfolio serve'.")
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "public site URL (SITE_URL)")
	return cmd
}
