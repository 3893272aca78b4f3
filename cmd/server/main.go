package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-builder",
	Short: "Edit a resume in memory and serve a live preview",
	Long: `resume-builder holds a single resume document for the session, applies
edit intents to it and re-renders the preview after every change.`,
}

func main() {
	rootCmd.AddCommand(serveCmd, previewCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
