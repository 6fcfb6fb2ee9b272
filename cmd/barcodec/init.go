// Init command: create config and data directories and the history
// database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize barcodec configuration and history storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and default config.yaml were created by the
		// persistent pre-run; attaching once creates the database.
		if _, err := openStore(); err != nil {
			return err
		}
		fmt.Println("barcodec initialized")
		return nil
	},
}
