// History delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <record-id>",
	Short: "Delete one history record",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	if err := st.Delete(args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted", args[0])
	return nil
}
