// History clear command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history records",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	n, err := st.Clear()
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d records\n", n)
	return nil
}
