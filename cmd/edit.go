package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/form"
	"github.com/ramanasai/caltrack/internal/utils"
)

var (
	editCategory string
	editName     string
	editCalories string
)

var editCmd = &cobra.Command{
	Use:   "edit <id-or-prefix>",
	Short: "Edit an existing activity in place",
	Example: `  caltrack edit 1b9d6bcd -k 350
  caltrack edit 1b9d -n "Porridge with honey" -c food`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("category") && !flags.Changed("name") && !flags.Changed("calories") {
			return errors.New("nothing to update - specify at least one of --category, --name, --calories")
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		target, err := activity.Resolve(a.State().Activities, args[0])
		if err != nil {
			return err
		}

		state := a.Dispatch(activity.SetActiveID{ID: target.ID})
		f := form.New(a.Catalog())
		if !f.Sync(state) {
			return fmt.Errorf("could not select activity %s", activity.ShortID(target.ID))
		}

		if flags.Changed("category") {
			id, err := categoryID(a.Catalog(), editCategory)
			if err != nil {
				return err
			}
			f.SetCategory(id)
		}
		if flags.Changed("name") {
			_ = f.SetField(form.FieldName, editName)
		}
		if flags.Changed("calories") {
			_ = f.SetField(form.FieldCalories, editCalories)
		}

		act, err := f.Submit()
		if err != nil {
			return err
		}
		a.Dispatch(act)

		saved := act.(activity.SaveActivity).Activity
		fmt.Fprintf(cmd.OutOrStdout(), "Updated [%s] %s %q, %s kcal\n",
			activity.ShortID(saved.ID), a.Catalog().Label(saved.Category), saved.Name, utils.DisplayCalories(saved.Calories))
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "new category id or name")
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "new name")
	editCmd.Flags().StringVarP(&editCalories, "calories", "k", "", "new calories")
}
