package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kiranj/helloguys/internal/cli/formatter"
)

func newKBCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Inspect and extend the knowledge base",
	}

	cmd.AddCommand(
		newKBStatsCmd(app),
		newKBCategoriesCmd(app),
		newKBImportCmd(app),
		newKBSearchCmd(app),
		newKBRandomCmd(app),
	)

	return cmd
}

func newKBStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show knowledge base size and availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(formatter.Header("Knowledge Base"))
			if !app.Store.IsAvailable() {
				cmd.Println(formatter.Dim("empty (no entries loaded)"))
				return nil
			}
			cmd.Printf("%s %d\n", formatter.Bold("Entries:"), app.Store.Size())
			cmd.Printf("%s %s\n", formatter.Bold("Categories:"), strings.Join(app.Store.Categories(), ", "))
			return nil
		},
	}
}

func newKBCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List knowledge base categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range app.Store.Categories() {
				cmd.Println(c)
			}
			return nil
		},
	}
}

func newKBImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Append entries from a CSV file",
		Long: `Append entries from a CSV file with id,category,question,answer columns.
The header row is skipped and malformed lines are dropped. Imported entries
get generated ids and live only for this process.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading csv file: %w", err)
			}

			added, err := app.Store.AppendCSV(string(data))
			if err != nil {
				return err
			}
			cmd.Printf("added %d entries (%d total)\n", added, app.Store.Size())
			return nil
		},
	}
}

func newKBSearchCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find the knowledge entries most relevant to a query",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" {
				for _, e := range app.Store.SearchByCategory(category) {
					cmd.Printf("%s %s\n", formatter.Bold(e.Question), formatter.Dim("("+e.Category+")"))
				}
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("provide a query or --category")
			}
			query := strings.Join(args, " ")
			entries := app.Store.FindRelevant(query, 5)
			if len(entries) == 0 {
				cmd.Println(formatter.Dim("no relevant entries"))
				return nil
			}
			for _, e := range entries {
				cmd.Printf("%s %s\n  %s\n", formatter.Bold(e.Question), formatter.Dim("("+e.Category+")"), e.Answer)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "list entries whose category matches instead of scoring a query")

	return cmd
}

func newKBRandomCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Print a random knowledge entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := app.Store.RandomEntry()
			if !ok {
				cmd.Println(formatter.Dim("the knowledge base is empty"))
				return nil
			}
			cmd.Printf("%s %s\n%s\n", formatter.Bold(entry.Question), formatter.Dim("("+entry.Category+")"), entry.Answer)
			return nil
		},
	}
}
