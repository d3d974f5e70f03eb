package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/catalog"
	"github.com/ramanasai/caltrack/internal/form"
	"github.com/ramanasai/caltrack/internal/utils"
)

var (
	addCategory string
	addName     string
	addCalories string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food or exercise activity",
	Example: `  caltrack add -n "Porridge" -k 310
  caltrack add -c exercise -n "Cycling" -k 420
  caltrack add -c 2 -n "Swim" -k 280`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}

		f := form.New(a.Catalog())
		if cmd.Flags().Changed("category") {
			id, err := categoryID(a.Catalog(), addCategory)
			if err != nil {
				return err
			}
			f.SetCategory(id)
		}
		_ = f.SetField(form.FieldName, addName)
		_ = f.SetField(form.FieldCalories, addCalories)

		act, err := f.Submit()
		if err != nil {
			return err
		}
		a.Dispatch(act)

		saved := act.(activity.SaveActivity).Activity
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q, %s kcal [%s]\n",
			a.Catalog().Label(saved.Category), saved.Name, utils.DisplayCalories(saved.Calories), activity.ShortID(saved.ID))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", strconv.Itoa(catalog.DefaultID), "category id or name (see `caltrack categories`)")
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "what was eaten or done")
	addCmd.Flags().StringVarP(&addCalories, "calories", "k", "", "calories, greater than 0")
}

// categoryID resolves a --category value against the catalog.
func categoryID(cat *catalog.Catalog, ref string) (int, error) {
	c, ok := cat.Lookup(ref)
	if !ok {
		return 0, fmt.Errorf("unknown category %q (see `caltrack categories`)", ref)
	}
	return c.ID, nil
}
