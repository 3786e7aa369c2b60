package cmd

import (
	"fmt"
	"io"

	"github.com/appseed/cli/internal/output"
	"github.com/appseed/cli/internal/templates"
)

// printTemplateList writes the allow-list grouped by framework.
func printTemplateList(w io.Writer) error {
	groups := templates.ByFamily()

	if _, err := fmt.Fprintln(w, output.StyleHeading.Render("Available templates:")); err != nil {
		return err
	}
	for _, family := range templates.Families() {
		fmt.Fprintf(w, "  %s\n", output.StyleURL.Render(family.DisplayName()))
		for _, t := range groups[family] {
			fmt.Fprintf(w, "    %s %-24s %s\n",
				output.StyleDim.Render("->"),
				output.StyleNoun.Render(t.ID),
				output.StyleDim.Render(t.Description))
		}
	}
	return nil
}
