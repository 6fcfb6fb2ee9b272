// History show command.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyShowCmd = &cobra.Command{
	Use:   "show <record-id>",
	Short: "Show one history record in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	record, err := st.Get(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(record)
	}

	fmt.Printf("ID:           %s\n", record.RecordID)
	fmt.Printf("Source:       %s\n", record.Source)
	fmt.Printf("Content type: %s\n", record.ContentType)
	fmt.Printf("Format:       %s\n", record.Format)
	if record.TemplateID != "" {
		fmt.Printf("Template:     %s\n", record.TemplateID)
	}
	fmt.Printf("Created:      %s\n", record.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Payload:      %s\n", record.Payload)
	for _, key := range sortedKeys(record.Fields) {
		fmt.Printf("  %s: %s\n", key, record.Fields[key])
	}
	return nil
}
