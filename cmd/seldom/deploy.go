package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seldom-dev/seldom/internal/config"
	"github.com/seldom-dev/seldom/internal/deploy"
)

func deployCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
		srcDir string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload the exported site to S3",
		Long: `Upload the exported site to an S3 bucket.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY,
and optionally AWS_SESSION_TOKEN. Run "seldom export" first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(wd)
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Deploy.Bucket = bucket
			}
			if prefix != "" {
				cfg.Deploy.Prefix = prefix
			}
			if region != "" {
				cfg.Deploy.Region = region
			}
			if srcDir == "" {
				srcDir = cfg.Export.OutDir
			}

			if cfg.Deploy.Bucket == "" {
				return fmt.Errorf("no bucket configured: set deploy.bucket in %s or pass --bucket", config.FileName)
			}
			if _, err := os.Stat(srcDir); err != nil {
				return fmt.Errorf("nothing to deploy: %w (run \"seldom export\" first)", err)
			}

			client, err := deploy.NewClient(cfg.Deploy.Region)
			if err != nil {
				return err
			}
			uploader := deploy.NewUploader(client, cfg.Deploy.Bucket, cfg.Deploy.Prefix)

			info("Uploading %s to s3://%s/%s", srcDir, cfg.Deploy.Bucket, cfg.Deploy.Prefix)
			count, err := uploader.UploadDir(cmd.Context(), srcDir)
			if err != nil {
				return err
			}

			success("Uploaded %d files", count)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket name")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&region, "region", "", "AWS region")
	cmd.Flags().StringVar(&srcDir, "dir", "", "Directory to upload (default: export outDir)")

	return cmd
}
