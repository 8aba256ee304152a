// Command prepare-credentials base64-encodes a Firebase service-account file
// for use as the FIREBASE_CREDENTIALS environment variable.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/smallie-ng/smallie-web/internal/credentials"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare-credentials path/to/firebase-credentials.json",
		Short: "Encode a Firebase service-account key for FIREBASE_CREDENTIALS",
		Long: `Converts a Firebase service account JSON file to a base64 encoded string
that can be used as the FIREBASE_CREDENTIALS environment variable in Vercel.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	})

	// Argument errors surface before RunE; report them with the usage line
	cmd.Args = func(c *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(c, args); err != nil {
			fmt.Fprintln(stderr, "Usage: prepare-credentials path/to/firebase-credentials.json")
			return err
		}
		return nil
	}

	return cmd
}

func run(path string, stdout, stderr io.Writer) error {
	encoded, err := credentials.Encode(path)
	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrFileNotFound):
			fmt.Fprintf(stderr, "Error: File not found: %s\n", path)
		case errors.Is(err, credentials.ErrInvalidJSON):
			fmt.Fprintf(stderr, "Error: File is not valid JSON: %s\n", path)
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return err
	}

	for _, w := range encoded.Warnings {
		fmt.Fprintln(stderr, w)
	}

	fmt.Fprintln(stdout, "\n--- Base64 Encoded Credentials ---")
	fmt.Fprintln(stdout, encoded.Value)
	fmt.Fprintln(stdout, "\n--- End Encoded Credentials ---")
	fmt.Fprintln(stdout, "\nCopy the above string and use it as the FIREBASE_CREDENTIALS environment variable in Vercel.")
	return nil
}
