// Templates commands: list the built-in templates and show the field
// specs of one.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available payload templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesList,
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <template-id>",
	Short: "Show the fields of a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesShow,
}

func init() {
	templatesCmd.AddCommand(templatesShowCmd)
}

// templateJSON is the JSON shape for template listings.
type templateJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ContentType string          `json:"content_type"`
	Fields      []fieldSpecJSON `json:"fields,omitempty"`
}

// fieldSpecJSON is the JSON shape for one field spec.
type fieldSpecJSON struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Default  string `json:"default,omitempty"`
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	templates := registry.Templates()

	if flagJSON {
		out := make([]templateJSON, 0, len(templates))
		for _, t := range templates {
			out = append(out, templateJSON{ID: t.ID, Name: t.Name, ContentType: string(t.ContentType)})
		}
		return printJSON(out)
	}

	for _, t := range templates {
		fmt.Printf("%-16s %-24s %s\n", t.ID, t.Name, t.ContentType)
	}
	return nil
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	t, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		out := templateJSON{ID: t.ID, Name: t.Name, ContentType: string(t.ContentType)}
		for _, f := range t.Fields {
			out.Fields = append(out.Fields, fieldSpecJSON{
				Key: f.Key, Label: f.Label, Required: f.Required, Default: f.Default,
			})
		}
		return printJSON(out)
	}

	fmt.Printf("%s (%s) -> %s\n", t.ID, t.Name, t.ContentType)
	for _, f := range t.Fields {
		req := "optional"
		if f.Required {
			req = "required"
		}
		line := fmt.Sprintf("  %-12s %-16s %s", f.Key, f.Label, req)
		if f.Default != "" {
			line += fmt.Sprintf(" (default %q)", f.Default)
		}
		fmt.Println(line)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
