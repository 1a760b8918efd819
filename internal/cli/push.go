package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qoonic/forge/internal/github"
	"github.com/qoonic/forge/internal/push"
	"github.com/qoonic/forge/internal/redact"
)

var (
	flagRepo    string
	flagOwner   string
	flagMessage string
	flagPrivate bool
	flagQuiet   bool
)

var pushCmd = &cobra.Command{
	Use:   "push <zip-file>",
	Short: "Push a generated code bundle into a new GitHub repository",
	Long:  "Create the target repository and upload every file of the ZIP bundle into it, base64-encoded, with the known credential assignment scrubbed from text files.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading archive: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		repo := flagRepo
		if repo == "" {
			repo = viper.GetString("repo")
		}
		if repo == "" {
			fmt.Fprintln(os.Stderr, "Error: repository name is required (--repo or FORGE_REPO)")
			exitCode = ExitUsageError
			return nil
		}

		gh, err := github.NewClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		ctx := context.Background()

		owner := flagOwner
		if owner == "" {
			owner = viper.GetString("owner")
		}
		if owner == "" {
			owner, err = gh.AuthenticatedUser(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: resolving repository owner: %v\n", err)
				if github.IsAuthError(err) {
					exitCode = ExitAuthError
				} else {
					exitCode = ExitRuntimeError
				}
				return nil
			}
		}

		message := flagMessage
		if message == "" {
			message = viper.GetString("commit_message")
		}

		pusher := push.New(gh, redact.Default())
		if !flagQuiet {
			pusher.SetSink(&stderrSink{w: os.Stderr})
		}

		fmt.Fprintf(os.Stderr, "Creating repository %s/%s...\n", owner, repo)
		result, err := pusher.Push(ctx, owner, repo, archive, message, flagPrivate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			switch {
			case errors.Is(err, push.ErrBadArchive):
				exitCode = ExitUsageError
			case github.IsAuthError(err):
				exitCode = ExitAuthError
			default:
				exitCode = ExitRuntimeError
			}
			return nil
		}

		fmt.Fprintf(os.Stdout, "Push completed: %d attempted, %d succeeded, %d failed\n",
			result.Attempted, result.Succeeded, result.Failed)
		fmt.Fprintf(os.Stdout, "Repository: %s\n", result.RepoURL)
		return nil
	},
}

func init() {
	pushCmd.Flags().StringVar(&flagRepo, "repo", "", "Name of the repository to create")
	pushCmd.Flags().StringVar(&flagOwner, "owner", "", "Repository owner (default: the authenticated user)")
	pushCmd.Flags().StringVar(&flagMessage, "message", "", "Commit message for uploaded files")
	pushCmd.Flags().BoolVar(&flagPrivate, "private", false, "Create the repository as private")
	pushCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Suppress per-file progress output")
}

// stderrSink prints per-file progress during a push.
type stderrSink struct {
	w io.Writer
}

func (s *stderrSink) FileEvent(path string, event push.Event, detail string) {
	switch event {
	case push.EventBinaryDetected:
		fmt.Fprintf(s.w, "  %s (binary)\n", path)
	case push.EventUploading:
		fmt.Fprintf(s.w, "  uploading %s\n", path)
	case push.EventFailure:
		fmt.Fprintf(s.w, "  failed %s: %s\n", path, detail)
	}
}

func (s *stderrSink) Progress(fraction float64) {
	fmt.Fprintf(s.w, "  [%3.0f%%]\n", fraction*100)
}
