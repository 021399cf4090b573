package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"goodnotes/internal/client/app/dto"
	"goodnotes/internal/client/domain/entities"
)

// noteFlags - флаги create/update.
type noteFlags struct {
	title     string
	content   string
	attendees []string
	items     []string
	meeting   string
}

func (f *noteFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "note title")
	cmd.Flags().StringVar(&f.content, "content", "", "note content (markdown)")
	cmd.Flags().StringSliceVar(&f.attendees, "attendee", nil, "attendee name (repeatable)")
	cmd.Flags().StringArrayVar(&f.items, "item", nil, "action item title (repeatable)")
	cmd.Flags().StringVar(&f.meeting, "meeting-start", "", "meeting start time (RFC 3339 or YYYY-MM-DDTHH:MM:SS)")
}

func (f *noteFlags) meetingStart() (*time.Time, error) {
	if f.meeting == "" {
		return nil, nil
	}
	t, err := dto.ParseTime(f.meeting)
	if err != nil {
		return nil, fmt.Errorf("--meeting-start: %w", err)
	}
	return &t, nil
}

func drafts(titles []string) []entities.ActionItemDraft {
	out := make([]entities.ActionItemDraft, 0, len(titles))
	for _, title := range titles {
		out = append(out, entities.ActionItemDraft{Title: title})
	}
	return out
}

func newNotesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage meeting notes",
	}

	var (
		date  string
		query string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				notes []entities.Note
				err   error
			)
			if date != "" {
				day, parseErr := time.ParseInLocation(dto.DateLayout, date, time.Local)
				if parseErr != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD: %w", parseErr)
				}
				notes, err = c.stores.Notes.FetchByDate(cmd.Context(), day)
			} else {
				notes, err = c.stores.Notes.Search(cmd.Context(), query)
			}
			if err != nil {
				return err
			}
			return c.printNotes(notes)
		},
	}
	listCmd.Flags().StringVar(&date, "date", "", "only notes created on this day (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&query, "query", "", "search query")

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "List today's notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := c.stores.Notes.FetchToday(cmd.Context())
			if err != nil {
				return err
			}
			return c.printNotes(notes)
		},
	}

	yesterdayCmd := &cobra.Command{
		Use:   "yesterday",
		Short: "List yesterday's notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := c.stores.Notes.FetchYesterday(cmd.Context())
			if err != nil {
				return err
			}
			return c.printNotes(notes)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a note with its action items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := c.stores.Notes.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.printNote(note)
		},
	}

	var create noteFlags
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := create.meetingStart()
			if err != nil {
				return err
			}
			note, err := c.stores.Notes.Create(cmd.Context(), entities.NoteDraft{
				Title:            create.title,
				Content:          create.content,
				Attendees:        create.attendees,
				MeetingStartTime: start,
				ActionItems:      drafts(create.items),
			})
			if err != nil {
				return err
			}
			return c.printNote(note)
		},
	}
	create.bind(createCmd)
	_ = createCmd.MarkFlagRequired("title")

	var update noteFlags
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a note",
		Long: `Update a note. Only flags that are set are sent to the backend.
Passing --item replaces all action items of the note.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch entities.NotePatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &update.title
			}
			if flags.Changed("content") {
				patch.Content = &update.content
			}
			if flags.Changed("attendee") {
				patch.Attendees = &update.attendees
			}
			if flags.Changed("item") {
				items := drafts(update.items)
				patch.ActionItems = &items
			}
			if flags.Changed("meeting-start") {
				start, err := update.meetingStart()
				if err != nil {
					return err
				}
				patch.MeetingStartTime = start
			}
			if patch.IsEmpty() {
				return errors.New(ErrNothingToUpdate)
			}

			note, err := c.stores.Notes.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return c.printNote(note)
		},
	}
	update.bind(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note and its action items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.stores.Notes.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(c.out, "Deleted note %s\n", args[0])
			return err
		},
	}

	cmd.AddCommand(listCmd, todayCmd, yesterdayCmd, getCmd, createCmd, updateCmd, deleteCmd)
	return cmd
}
