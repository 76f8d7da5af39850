package cli

import (
	"fmt"

	"github.com/Harshitr03/Code-Reviewer/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default project config to " + config.ConfigDirName + "/" + config.ConfigFileName,
		Args:  noArgs("init"),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, wrote, err := config.SaveProjectConfig(a.env.WorkDir, config.DefaultRawConfig())
			if err != nil {
				return fmt.Errorf("write config file: %w", err)
			}
			if !wrote {
				fmt.Fprintf(cmd.OutOrStdout(), "config already exists: %s\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created config: %s\n", path)
			return nil
		},
	}
}
