package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/presentation"
)

var pagesFormat string

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Manage stored page schemas",
}

var pagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored pages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := presentation.ParseFormat(pagesFormat)
		if err != nil {
			return err
		}
		svc, db, err := openPages(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		list, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout(), format).FormatPages(presentation.FromPages(list))
	},
}

var pagesShowCmd = &cobra.Command{
	Use:   "show <page>",
	Short: "Print the schema the editor would open for a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, db, err := openPages(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		schema, err := svc.FetchPageSchema(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		var body any
		if err := json.Unmarshal(schema.Body, &body); err != nil {
			return fmt.Errorf("decode schema %s: %w", args[0], err)
		}
		return presentation.NewFormatter(cmd.OutOrStdout(), presentation.FormatJSON).FormatResult(body)
	},
}

var pagesSaveCmd = &cobra.Command{
	Use:   "save <page> [file]",
	Short: "Store a page schema from a file or stdin and print the diff",
	Long: `Store a page schema. The schema is read from file, or from stdin when file
is omitted or "-". The diff against the previously stored version is printed.

Examples:
  pagekit pages save home home.json
  cat about.json | pagekit pages save about`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			body []byte
			err  error
		)
		if len(args) == 1 || args[1] == "-" {
			body, err = io.ReadAll(cmd.InOrStdin())
		} else {
			body, err = os.ReadFile(args[1]) // #nosec G304 -- user-supplied schema path
		}
		if err != nil {
			return fmt.Errorf("reading schema: %w", err)
		}
		if !json.Valid(body) {
			return fmt.Errorf("schema for %s is not valid JSON", args[0])
		}

		svc, db, err := openPages(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		result, err := svc.SaveSchema(cmd.Context(), host.Schema{PageID: args[0], Body: body})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if result.Created {
			_, err = fmt.Fprintf(out, "created %s (v%d)\n", result.Page.ID, result.Page.Version)
			return err
		}
		if _, err := fmt.Fprintf(out, "saved %s (v%d)\n", result.Page.ID, result.Page.Version); err != nil {
			return err
		}
		return presentation.NewFormatter(out, presentation.FormatText).FormatDiff(result.Diff)
	},
}

var pagesDeleteCmd = &cobra.Command{
	Use:   "delete <page>",
	Short: "Delete a stored page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, db, err := openPages(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := svc.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return err
	},
}

var pagesPreviewCmd = &cobra.Command{
	Use:   "preview <page>",
	Short: "Print the preview URL for a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, db, err := openPages(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		url, err := svc.PreviewURL(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
		return err
	},
}

func init() {
	pagesListCmd.Flags().StringVarP(&pagesFormat, "format", "f", "text", "output format: text, json, yaml or markdown")
	pagesCmd.AddCommand(pagesListCmd, pagesShowCmd, pagesSaveCmd, pagesDeleteCmd, pagesPreviewCmd)
	rootCmd.AddCommand(pagesCmd)
}
