// internal/cli/problems_cmd.go
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"medadmin/internal/model"
)

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

func listProblems(cmd *cobra.Command, d *deps, progressID int64) error {
	var page model.ListPage[model.ProblemManagement]
	var err error
	if progressID > 0 {
		page, err = d.problems.ListByProgress(cmd.Context(), progressID)
	} else {
		page, err = d.problems.List(cmd.Context())
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, p := range page.Items {
		progress := strconv.FormatInt(p.ProgressID, 10)
		if p.ProgressDetails != nil {
			progress = p.ProgressDetails.Name
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10), progress, truncateRunes(p.Content, 40), strconv.Itoa(p.Answer),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Progress", "Problem", "Answer"}, rows))
	fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page))
	return nil
}

func newProblemsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "Browse the problem bank",
	}

	var progressID int64
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List problems, optionally for one progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listProblems(cmd, d, progressID)
		},
	}
	listCmd.Flags().Int64Var(&progressID, "progress", 0, "filter by progress id")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := d.problems.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			progress := strconv.FormatInt(p.ProgressID, 10)
			if p.ProgressDetails != nil {
				progress = p.ProgressDetails.Name
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Progress", "Problem", "Answer", "Solution"},
				[][]string{{
					strconv.FormatInt(p.ID, 10), progress, p.Content,
					strconv.Itoa(p.Answer), orDash(truncateRunes(p.Solution, 40)),
				}}))
			return nil
		},
	})

	var updContent, updSolution string
	var updAnswer int
	var updProgressID int64
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := d.problems.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := &model.CreateProblemRequest{
				ProgressID: current.ProgressID,
				Content:    current.Content,
				Answer:     current.Answer,
				Solution:   current.Solution,
				ExamYear:   current.ExamYear,
				Sequence:   current.Sequence,
			}
			if cmd.Flags().Changed("progress") {
				req.ProgressID = updProgressID
			}
			if cmd.Flags().Changed("problem") {
				req.Content = updContent
			}
			if cmd.Flags().Changed("answer") {
				req.Answer = updAnswer
			}
			if cmd.Flags().Changed("solution") {
				req.Solution = updSolution
			}
			if _, err := d.problems.Update(cmd.Context(), id, req); err != nil {
				return err
			}
			return listProblems(cmd, d, req.ProgressID)
		},
	}
	update.Flags().Int64Var(&updProgressID, "progress", 0, "progress id")
	update.Flags().StringVar(&updContent, "problem", "", "problem text")
	update.Flags().IntVar(&updAnswer, "answer", 0, "correct choice number")
	update.Flags().StringVar(&updSolution, "solution", "", "solution text")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := d.problems.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return listProblems(cmd, d, 0)
		},
	})

	return cmd
}

func listDecks(cmd *cobra.Command, d *deps) error {
	page, err := d.memos.ListProgresses(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, deck := range page.Items {
		day := "-"
		if deck.Day != nil {
			day = strconv.Itoa(*deck.Day)
		}
		subject := "-"
		if deck.SubjectDetails != nil {
			subject = deck.SubjectDetails.Name
		}
		rows = append(rows, []string{
			strconv.FormatInt(deck.ID, 10), deck.Name, day, subject,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Day", "Subject"}, rows))
	fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page))
	return nil
}

func listCards(cmd *cobra.Command, d *deps, deckID int64) error {
	page, err := d.memos.ListCards(cmd.Context(), deckID)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, card := range page.Items {
		rows = append(rows, []string{
			strconv.FormatInt(card.ID, 10), card.Front, card.Back,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Front", "Back"}, rows))
	fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page))
	return nil
}

// parseCardSpec splits a --card value into its front and back sides.
func parseCardSpec(spec string) (front, back string, err error) {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", fmt.Errorf("invalid card %q (want front=back)", spec)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

func newMemosCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memos",
		Short: "Manage memorization decks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDecks(cmd, d)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			deck, err := d.memos.GetProgress(cmd.Context(), id)
			if err != nil {
				return err
			}
			day := "-"
			if deck.Day != nil {
				day = strconv.Itoa(*deck.Day)
			}
			subject := "-"
			if deck.SubjectDetails != nil {
				subject = deck.SubjectDetails.Name
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Day", "Subject"},
				[][]string{{strconv.FormatInt(deck.ID, 10), deck.Name, day, subject}}))
			return nil
		},
	})

	var name string
	var day int
	var subjectID int64
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &model.CreateMemoProgressRequest{Name: name}
			if cmd.Flags().Changed("day") {
				req.Day = &day
			}
			if cmd.Flags().Changed("subject") {
				req.SubjectID = &subjectID
			}
			created, err := d.memos.CreateProgress(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created deck %d (%s).\n", created.ID, created.Name)
			return listDecks(cmd, d)
		},
	}
	create.Flags().StringVar(&name, "name", "", "deck name")
	create.Flags().IntVar(&day, "day", 0, "study day")
	create.Flags().Int64Var(&subjectID, "subject", 0, "subject id")
	create.MarkFlagRequired("name")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := d.memos.DeleteProgress(cmd.Context(), id); err != nil {
				return err
			}
			return listDecks(cmd, d)
		},
	})

	cards := &cobra.Command{
		Use:   "cards <deck-id>",
		Short: "List the cards in a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return listCards(cmd, d, id)
		},
	}

	var cardSpecs []string
	add := &cobra.Command{
		Use:   "add <deck-id>",
		Short: "Compose cards locally and bulk-submit them to a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseID(args[0])
			if err != nil {
				return err
			}
			// compose drafts first so every card is keyed before anything is
			// sent; the whole batch goes up in one bulk call
			drafts := make([]model.MemoProblemData, 0, len(cardSpecs))
			for _, spec := range cardSpecs {
				front, back, err := parseCardSpec(spec)
				if err != nil {
					return err
				}
				drafts = append(drafts, model.NewDraftCard(deckID, front, back))
			}
			reqs := make([]model.CreateMemoProblemRequest, len(drafts))
			for i, draft := range drafts {
				reqs[i] = model.CreateMemoProblemRequest{
					MemoProgressID: draft.MemoProgressID,
					Front:          draft.Front,
					Back:           draft.Back,
				}
			}
			created, err := d.memos.BulkCreateCards(cmd.Context(), reqs)
			if err != nil {
				return err
			}
			for i, card := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "draft %s -> card %d\n", drafts[i].DraftID, card.ID)
			}
			return listCards(cmd, d, deckID)
		},
	}
	add.Flags().StringArrayVar(&cardSpecs, "card", nil, "card as front=back (repeatable)")
	add.MarkFlagRequired("card")
	cards.AddCommand(add)

	var cardDeckID int64
	cardDelete := &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := d.memos.DeleteCard(cmd.Context(), id); err != nil {
				return err
			}
			if cardDeckID > 0 {
				return listCards(cmd, d, cardDeckID)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
	cardDelete.Flags().Int64Var(&cardDeckID, "deck", 0, "deck id to re-list after deleting")
	cards.AddCommand(cardDelete)

	cmd.AddCommand(cards)
	return cmd
}
