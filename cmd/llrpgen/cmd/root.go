package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd is llrpgen's entry point.
var RootCmd = &cobra.Command{
	Use:   "llrpgen",
	Short: "compile an LLRP XML definition into a Go codec package set",
}

// Execute runs the command tree, exiting non-zero on failure.
func Execute() {
	log.SetLevel(log.InfoLevel)
	if err := RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
