// Classify command: determine the content type of raw decoded barcode
// text and extract structured fields.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/glyphworks/barcodec/pkg/barcode"
	"github.com/glyphworks/barcodec/pkg/types"
)

var (
	classifySave   bool
	classifyFormat string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [raw-text]",
	Short: "Classify raw barcode text and extract fields",
	Long: `Classify inspects a raw string decoded from a scanned barcode,
reports its semantic content type, and extracts structured fields where
the format allows. Classification never fails: unstructured input is
reported as plain text.

The raw text is taken from the argument, or from stdin when no argument
is given.

Example:
  barcodec classify 'WIFI:T:WPA;S:home;P:pass;;'
  barcodec classify 'tel:+1-555-0100' --json
  cat decoded.txt | barcodec classify --save --format qr`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifySave, "save", false, "record the scan in history")
	classifyCmd.Flags().StringVar(&classifyFormat, "format", string(barcode.FormatQR), "symbol format reported by the scanner")
}

func runClassify(cmd *cobra.Command, args []string) error {
	raw, err := classifyInput(args)
	if err != nil {
		return err
	}

	result := barcode.Decode(raw)

	if classifySave {
		format, err := barcode.ParseBarcodeFormat(classifyFormat)
		if err != nil {
			return fmt.Errorf("%q: %w", classifyFormat, err)
		}
		if err := saveScanned(result, format, raw); err != nil {
			return err
		}
	}

	if flagJSON {
		return printJSON(result)
	}

	fmt.Println(result.ContentType)
	for _, key := range sortedKeys(result.Fields) {
		fmt.Printf("  %s: %s\n", key, result.Fields[key])
	}
	return nil
}

// classifyInput returns the raw text from the argument or stdin.
func classifyInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no input: %w", errUsage)
	}
	return string(data), nil
}

// saveScanned records a scan in the history. Duplicate payloads are
// saved again on purpose: two scans of the same symbol are two events.
func saveScanned(result barcode.Result, format barcode.BarcodeFormat, raw string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	record := &types.Record{
		Source:      types.SourceScanned,
		ContentType: string(result.ContentType),
		Format:      string(format),
		Payload:     raw,
		Fields:      result.Fields,
	}
	if _, err := st.Save(record); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// sortedKeys returns the map keys in sorted order for stable output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
