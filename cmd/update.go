package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/meera/courseforge/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateTargetVersion string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update courseforge to the latest version",
	Long: `Update replaces the running binary with a release build.

Without flags it fetches the newest release; --version pins a specific
release tag, which also allows downgrading.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  updateTargetVersion,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("Already running the latest version.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo courseforge update", err)
		default:
			return err
		}
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTargetVersion, "version", "",
		"release tag to install (e.g. v1.2.0); default is the latest release")
}
