// History list command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glyphworks/barcodec/pkg/types"
)

var (
	histListType   string
	histListSource string
	histListLimit  int
)

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List history records, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

func init() {
	historyListCmd.Flags().StringVar(&histListType, "type", "", "filter by content type token")
	historyListCmd.Flags().StringVar(&histListSource, "source", "", "filter by source (generated or scanned)")
	historyListCmd.Flags().IntVar(&histListLimit, "limit", 0, "maximum records to show (0 = all)")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	records, err := st.List(types.Filter{
		ContentType: histListType,
		Source:      histListSource,
		Limit:       histListLimit,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		if records == nil {
			records = []*types.Record{}
		}
		return printJSON(records)
	}

	for _, r := range records {
		fmt.Printf("%s  %-9s %-8s %s\n", r.RecordID, r.Source, r.ContentType, truncatePayload(r.Payload))
	}
	return nil
}

// truncatePayload shortens long payloads for the one-line listing.
// Display only; stored payloads are never truncated.
func truncatePayload(payload string) string {
	const max = 60
	if len(payload) <= max {
		return payload
	}
	return payload[:max-3] + "..."
}
