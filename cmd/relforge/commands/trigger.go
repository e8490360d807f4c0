package commands

import (
	"time"

	"github.com/relforge/relforge/internal/app"
	"github.com/relforge/relforge/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newTriggerCmd() *cobra.Command {
	var (
		bucket       string
		uploadPath   string
		localFile    string
		contents     string
		statusPath   string
		timeout      time.Duration
		pollInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Upload a trigger object and wait for the downstream pipeline",
		Long: "Upload a trigger object to the configured object store and poll " +
			"the pipeline status resource until the execution finishes or the " +
			"wait times out.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := app.TriggerOptions{
				Bucket:       bucket,
				UploadPath:   uploadPath,
				LocalFile:    localFile,
				StatusPath:   statusPath,
				Timeout:      timeout,
				PollInterval: pollInterval,
			}
			if localFile == "" {
				opts.Contents = []byte(contents)
			}

			result, err := c.app.TriggerPipeline(cmd.Context(), c.configPath(), opts)
			if err != nil {
				return err
			}
			if result.TimedOut {
				return zerr.With(domain.ErrTriggerTimedOut, "operation", result.OperationID)
			}

			cmd.Println(result.Detail)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Object store bucket to upload into")
	cmd.Flags().StringVar(&uploadPath, "upload-path", "", "Object path inside the bucket")
	cmd.Flags().StringVar(&localFile, "file", "", "Local file to upload as the trigger object")
	cmd.Flags().StringVar(&contents, "contents", "", "Inline payload to upload instead of a file")
	cmd.Flags().StringVar(&statusPath, "status-path", "", "Status resource polled after the upload")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Maximum wait for the downstream execution (default 5m)")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", 10*time.Second, "Delay between status refreshes")

	_ = cmd.MarkFlagRequired("bucket")
	_ = cmd.MarkFlagRequired("upload-path")
	_ = cmd.MarkFlagRequired("status-path")

	return cmd
}
