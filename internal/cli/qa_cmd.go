// internal/cli/qa_cmd.go
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"medadmin/internal/model"
)

func listQuestions(cmd *cobra.Command, d *deps, unansweredOnly bool) error {
	page, err := d.questions.List(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, q := range page.Items {
		answered := q.Answer != nil && *q.Answer != ""
		if unansweredOnly && answered {
			continue
		}
		rows = append(rows, []string{
			strconv.FormatInt(q.ID, 10), q.Title,
			strconv.FormatBool(answered), formatTime(q.CreatedAt),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Title", "Answered", "Asked"}, rows))
	fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page))
	return nil
}

func newQuestionsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Manage student Q&A",
	}

	var unansweredOnly bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listQuestions(cmd, d, unansweredOnly)
		},
	}
	listCmd.Flags().BoolVar(&unansweredOnly, "unanswered", false, "only show questions without an answer")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one question with its answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			q, err := d.questions.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			answer := "-"
			if q.Answer != nil {
				answer = truncateRunes(*q.Answer, 60)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Content", "Answer", "Asked"},
				[][]string{{
					strconv.FormatInt(q.ID, 10), q.Title, truncateRunes(q.Content, 60),
					answer, formatTime(q.CreatedAt),
				}}))
			return nil
		},
	})

	var answer string
	answerCmd := &cobra.Command{
		Use:   "answer <id>",
		Short: "Attach an answer to a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := d.questions.Answer(cmd.Context(), id, &model.AnswerQuestionRequest{Answer: answer}); err != nil {
				return err
			}
			return listQuestions(cmd, d, false)
		},
	}
	answerCmd.Flags().StringVar(&answer, "text", "", "answer body")
	answerCmd.MarkFlagRequired("text")
	cmd.AddCommand(answerCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := d.questions.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return listQuestions(cmd, d, false)
		},
	})

	return cmd
}

func listInquiries(cmd *cobra.Command, d *deps) error {
	page, err := d.inquiries.List(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, inq := range page.Items {
		replied := inq.Reply != nil && *inq.Reply != ""
		rows = append(rows, []string{
			strconv.FormatInt(inq.ID, 10), orDash(inq.Category),
			strconv.FormatBool(replied), formatTime(inq.CreatedAt),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Category", "Replied", "Created"}, rows))
	fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page))
	return nil
}

func newInquiriesCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inquiries",
		Short: "Manage 1:1 inquiries",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List inquiries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listInquiries(cmd, d)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one inquiry with its reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			inq, err := d.inquiries.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			reply := "-"
			if inq.Reply != nil {
				reply = truncateRunes(*inq.Reply, 60)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Category", "Content", "Reply", "Created"},
				[][]string{{
					strconv.FormatInt(inq.ID, 10), orDash(inq.Category),
					truncateRunes(inq.Content, 60), reply, formatTime(inq.CreatedAt),
				}}))
			return nil
		},
	})

	var reply string
	replyCmd := &cobra.Command{
		Use:   "reply <id>",
		Short: "Attach a reply to an inquiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := d.inquiries.Reply(cmd.Context(), id, &model.ReplyInquiryRequest{Reply: reply}); err != nil {
				return err
			}
			return listInquiries(cmd, d)
		},
	}
	replyCmd.Flags().StringVar(&reply, "text", "", "reply body")
	replyCmd.MarkFlagRequired("text")
	cmd.AddCommand(replyCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an inquiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := d.inquiries.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return listInquiries(cmd, d)
		},
	})

	return cmd
}
