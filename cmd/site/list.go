package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/davideasaf/neuralnotes"
	"github.com/davideasaf/neuralnotes/pkg/content"
)

var (
	listJSON   bool
	listTag    string
	listDrafts bool
)

var listCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List content items of a kind (notes, projects)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := content.ParseKind(args[0])
		if err != nil {
			fatal("Error", err)
		}

		site := neuralnotes.New(contentRoot,
			neuralnotes.WithConfigPath(configPath),
			neuralnotes.WithLogger(slog.Default()),
			neuralnotes.WithDrafts(listDrafts),
		)

		items := site.Resolver.LoadAll(context.Background(), kind)

		if listTag != "" {
			filtered := items[:0:0]
			for _, item := range items {
				for _, t := range item.Meta.Base().Tags {
					if t == listTag {
						filtered = append(filtered, item)
						break
					}
				}
			}
			items = filtered
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(items); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, item := range items {
			base := item.Meta.Base()
			marker := " "
			if base.Draft {
				marker = "d"
			}
			fmt.Printf("%s %-30s %-12s %s\n", marker, item.Slug, base.Date, base.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag")
	listCmd.Flags().BoolVar(&listDrafts, "drafts", false, "Include drafts")
}
