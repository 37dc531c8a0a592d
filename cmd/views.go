package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digcul/surveyscope/internal/views"
)

var (
	viewsType  string
	viewsState string
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Manage saved analysis views",
}

func viewStore() (*views.Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no configuration loaded")
	}
	return views.NewStore(cfg.ViewsPath), nil
}

var viewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved views",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := viewStore()
		if err != nil {
			return err
		}
		var all []views.SavedView
		if viewsType != "" {
			all, err = store.ByType(viewsType)
		} else {
			all, err = store.All()
		}
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No saved views")
			return nil
		}
		for _, v := range all {
			fmt.Printf("%s  %-20s  %-20s  %s\n", v.ID, v.Name, v.Type, v.Timestamp.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var viewsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a view with an opaque state blob",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := viewStore()
		if err != nil {
			return err
		}
		var state json.RawMessage
		if viewsState != "" {
			if !json.Valid([]byte(viewsState)) {
				return fmt.Errorf("--state must be valid JSON")
			}
			state = json.RawMessage(viewsState)
		}
		v, err := store.Save(args[0], viewsType, state)
		if err != nil {
			return err
		}
		fmt.Printf("Saved view %s (%s)\n", v.Name, v.ID)
		return nil
	},
}

var viewsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved view's state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := viewStore()
		if err != nil {
			return err
		}
		v, err := store.Get(args[0])
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

var viewsRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a saved view",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := viewStore()
		if err != nil {
			return err
		}
		if err := store.Rename(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Renamed %s to %s\n", args[0], args[1])
		return nil
	},
}

var viewsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := viewStore()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	viewsCmd.PersistentFlags().StringVar(&viewsType, "type", views.TypeParallelCategories,
		"view type: parallel-categories or 3d-plot")
	viewsSaveCmd.Flags().StringVar(&viewsState, "state", "", "state blob as JSON")
	viewsCmd.AddCommand(viewsListCmd, viewsSaveCmd, viewsShowCmd, viewsRenameCmd, viewsDeleteCmd)
	rootCmd.AddCommand(viewsCmd)
}
