package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goodnotes/internal/client/domain/entities"
)

func newItemsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"action-items"},
		Short:   "Manage action items",
	}

	var filter entities.ActionItemFilter
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List action items",
		Long: `List action items. With --note the items of one note are listed oldest first
and the other filters are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.stores.ActionItems.Fetch(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return c.printItems(items)
		},
	}
	listCmd.Flags().StringVar(&filter.NoteID, "note", "", "only items of this note")
	listCmd.Flags().BoolVar(&filter.IncompleteOnly, "incomplete", false, "only incomplete items, oldest first")
	listCmd.Flags().IntVar(&filter.Limit, "limit", 0, "maximum number of items (0 for no limit)")

	var limit int
	incompleteCmd := &cobra.Command{
		Use:   "incomplete",
		Short: "List the oldest incomplete action items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.stores.ActionItems.FetchIncomplete(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return c.printItems(items)
		},
	}
	incompleteCmd.Flags().IntVar(&limit, "limit", 5, "number of items")

	var draft entities.ActionItemDraft
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an action item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			item, err := c.stores.ActionItems.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			return c.printItem(item)
		},
	}
	createCmd.Flags().StringVar(&draft.Title, "title", "", "action item title")
	createCmd.Flags().StringVar(&draft.NoteID, "note", "", "note the item belongs to")
	_ = createCmd.MarkFlagRequired("title")

	var (
		newTitle  string
		completed bool
	)
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of an action item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch entities.ActionItemPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &newTitle
			}
			if flags.Changed("completed") {
				patch.Completed = &completed
			}
			if patch.IsEmpty() {
				return errors.New(ErrNothingToUpdate)
			}

			item, err := c.stores.ActionItems.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return c.printItem(item)
		},
	}
	updateCmd.Flags().StringVar(&newTitle, "title", "", "new title")
	updateCmd.Flags().BoolVar(&completed, "completed", false, "completion state")

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle completion of an action item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.stores.ActionItems.Fetch(ctx, entities.ActionItemFilter{}); err != nil {
				return err
			}
			item, err := c.stores.ActionItems.ToggleCompletion(ctx, args[0])
			if err != nil {
				return err
			}
			return c.printItem(item)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an action item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.stores.ActionItems.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(c.out, "Deleted action item %s\n", args[0])
			return err
		},
	}

	cmd.AddCommand(listCmd, incompleteCmd, createCmd, updateCmd, toggleCmd, deleteCmd)
	return cmd
}
