// Package main provides the barcodec CLI: payload generation from
// templates, classification of scanned text, and a local scan/generate
// history.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/glyphworks/barcodec/pkg/barcode"
	"github.com/glyphworks/barcodec/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: recoverable user input
// problems exit 1, store and configuration failures exit 2.
func exitCode(err error) int {
	var verr *barcode.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, barcode.ErrUnknownTemplate),
		errors.Is(err, barcode.ErrUnknownBarcodeFormat),
		errors.Is(err, barcode.ErrPayloadTooLong),
		errors.Is(err, barcode.ErrCharsetViolation),
		errors.Is(err, barcode.ErrBadPayloadLength),
		errors.Is(err, barcode.ErrEmptyPayload),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, errUsage):
		return exitUserError
	}
	return exitSysError
}
