package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"goodnotes/internal/client/app/dto"
	"goodnotes/internal/client/domain/entities"
)

const timeLayout = "2006-01-02 15:04"

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printNotes(notes []entities.Note) error {
	if c.jsonOut {
		out := make([]dto.Note, 0, len(notes))
		for _, n := range notes {
			out = append(out, dto.FromDomainNote(n))
		}
		return c.printJSON(out)
	}

	if len(notes) == 0 {
		_, err := fmt.Fprintln(c.out, "No notes found.")
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCREATED\tATTENDEES")
	for _, n := range notes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, n.Title, formatTime(&n.CreatedAt), strings.Join(n.Attendees, ", "))
	}
	return w.Flush()
}

func (c *cli) printNote(n entities.Note) error {
	if c.jsonOut {
		return c.printJSON(dto.FromDomainNote(n))
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", n.ID)
	fmt.Fprintf(w, "Title:\t%s\n", n.Title)
	fmt.Fprintf(w, "Created:\t%s\n", formatTime(&n.CreatedAt))
	if n.MeetingStartTime != nil {
		fmt.Fprintf(w, "Meeting:\t%s\n", formatTime(n.MeetingStartTime))
	}
	if len(n.Attendees) > 0 {
		fmt.Fprintf(w, "Attendees:\t%s\n", strings.Join(n.Attendees, ", "))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if n.Content != "" {
		fmt.Fprintf(c.out, "\n%s\n", n.Content)
	}
	if len(n.ActionItems) > 0 {
		fmt.Fprintln(c.out, "\nAction items:")
		for _, item := range n.ActionItems {
			fmt.Fprintf(c.out, "  %s %s (%s)\n", checkbox(item.Completed), item.Title, item.ID)
		}
	}
	return nil
}

func (c *cli) printItems(items []entities.ActionItem) error {
	if c.jsonOut {
		out := make([]dto.ActionItem, 0, len(items))
		for _, item := range items {
			out = append(out, dto.FromDomainActionItem(item))
		}
		return c.printJSON(out)
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(c.out, "No action items found.")
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tTITLE\tNOTE\tCREATED")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", item.ID, checkbox(item.Completed), item.Title, item.NoteID, formatTime(item.CreatedAt))
	}
	return w.Flush()
}

func (c *cli) printItem(item entities.ActionItem) error {
	if c.jsonOut {
		return c.printJSON(dto.FromDomainActionItem(item))
	}
	_, err := fmt.Fprintf(c.out, "%s %s (%s)\n", checkbox(item.Completed), item.Title, item.ID)
	return err
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
