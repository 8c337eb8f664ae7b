package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seldom-dev/seldom/internal/config"
	"github.com/seldom-dev/seldom/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		outDir string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site to disk as static HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(wd)
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.Export.OutDir = outDir
			}

			site := demoSite()
			if err := export.Export(site, export.Options{
				OutDir: cfg.Export.OutDir,
				Pretty: pretty,
			}); err != nil {
				return err
			}

			success("Exported %d pages to %s", len(site), cfg.Export.OutDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print HTML output")

	return cmd
}
