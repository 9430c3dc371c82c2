package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/davideasaf/neuralnotes"
	"github.com/davideasaf/neuralnotes/pkg/content"
	"github.com/davideasaf/neuralnotes/pkg/media"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate all content, including drafts",
	Long: `Check resolves every document of every kind (drafts included) and
reports problems a reader would hit: missing dates, untrusted or
malformed video URLs. Exits non-zero when problems are found.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		site := neuralnotes.New(contentRoot,
			neuralnotes.WithConfigPath(configPath),
			neuralnotes.WithLogger(slog.Default()),
			neuralnotes.WithDrafts(true),
		)

		ctx := context.Background()
		problems := 0

		for _, kind := range content.Kinds() {
			for _, item := range site.Resolver.LoadAll(ctx, kind) {
				base := item.Meta.Base()

				if base.Date == content.SentinelDate {
					problems++
					fmt.Printf("%s/%s: missing date\n", kind, item.Slug)
				} else if base.Time().IsZero() {
					problems++
					fmt.Printf("%s/%s: unparseable date %q\n", kind, item.Slug, base.Date)
				}

				if base.VideoURL != "" {
					if _, err := media.ValidateVideoURL(base.VideoURL); err != nil {
						problems++
						fmt.Printf("%s/%s: video URL rejected (%s)\n", kind, item.Slug, err.Code)
					}
				}
			}
		}

		if problems > 0 {
			fmt.Printf("\n%d problem(s) found\n", problems)
			os.Exit(1)
		}
		fmt.Println("all content ok")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
