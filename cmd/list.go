package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/catalog"
	"github.com/ramanasai/caltrack/internal/utils"
)

var (
	limit      int
	page       string
	format     string
	noColor    bool
	fullIDs    bool
	categories string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List activities",
	Long: `Examples:
	caltrack list                                 # newest page, coloured
	caltrack list --format table --limit 50       # table format
	caltrack list --category exercise             # only exercise
	caltrack list --format json --limit 0         # everything, for scripts
	caltrack list --page last`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := utils.ParseFormat(format)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		list, err := filterByCategory(a.State().Activities, a.Catalog(), categories)
		if err != nil {
			return err
		}

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Format = f
		renderConfig.FullID = fullIDs
		renderConfig.Color = useColor()

		var pagination *utils.PaginationInfo
		if limit > 0 {
			pages := utils.NewPagination(len(list), limit, 1).TotalPages
			current, err := utils.ParsePage(page, pages)
			if err != nil {
				return err
			}
			pagination = utils.NewPagination(len(list), limit, current)
		}

		output, err := utils.NewRenderer(renderConfig).RenderActivityList(utils.NewActivityList(list, a.Catalog(), pagination))
		if err != nil {
			return err
		}
		if !strings.HasSuffix(output, "\n") {
			output += "\n"
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}

// useColor is false under --no-color or a non-empty NO_COLOR.
func useColor() bool {
	return !noColor && os.Getenv("NO_COLOR") == ""
}

// filterByCategory keeps activities whose category matches one of the
// comma-separated ids or names in refs. Empty refs keeps everything.
func filterByCategory(list []activity.Activity, cat *catalog.Catalog, refs string) ([]activity.Activity, error) {
	if strings.TrimSpace(refs) == "" {
		return list, nil
	}
	want := map[int]bool{}
	for _, ref := range strings.Split(refs, ",") {
		if strings.TrimSpace(ref) == "" {
			continue
		}
		id, err := categoryID(cat, ref)
		if err != nil {
			return nil, err
		}
		want[id] = true
	}
	out := []activity.Activity{}
	for _, a := range list {
		if want[a.Category] {
			out = append(out, a)
		}
	}
	return out, nil
}

func init() {
	listCmd.Flags().IntVar(&limit, "limit", 20, "activities per page; 0 shows everything")
	listCmd.Flags().StringVar(&page, "page", "1", "page to show: a number, first or last")
	listCmd.Flags().StringVar(&format, "format", "default", "output format: default, table, json, csv, compact, quiet")
	listCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	listCmd.Flags().BoolVar(&fullIDs, "full-ids", false, "print full activity ids instead of 8-character prefixes")
	listCmd.Flags().StringVar(&categories, "category", "", "only these categories (comma-separated ids or names)")
}
