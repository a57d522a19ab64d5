// internal/cli/resources_cmd.go
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"medadmin/internal/model"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func listUsers(cmd *cobra.Command, d *deps) error {
	page, err := d.users.List(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, u := range page.Items {
		major := "-"
		if u.PrepareMajorDetails != nil {
			major = u.PrepareMajorDetails.Name
		}
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10), u.Email, orDash(u.Name), orDash(u.Nickname),
			major, strconv.FormatBool(u.IsActive), formatTime(u.CreatedAt),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Email", "Name", "Nickname", "Major", "Active", "Joined"}, rows))
	fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page))
	return nil
}

// Students register through the app, so there is no create here; the admin
// side only inspects, edits and removes accounts.
func newUsersCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage student accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List students",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listUsers(cmd, d)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one student account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := d.users.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			major := "-"
			if u.PrepareMajorDetails != nil {
				major = u.PrepareMajorDetails.Name
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Email", "Name", "Nickname", "Major", "Active", "Joined"},
				[][]string{{
					strconv.FormatInt(u.ID, 10), u.Email, orDash(u.Name), orDash(u.Nickname),
					major, strconv.FormatBool(u.IsActive), formatTime(u.CreatedAt),
				}}))
			return nil
		},
	})

	var name, nickname string
	var majorID int64
	var active bool
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a student account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			// start from the current record so unset flags keep their values
			current, err := d.users.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := &model.UpdateUserRequest{
				Name:         current.Name,
				Nickname:     current.Nickname,
				PrepareMajor: current.PrepareMajorID,
				IsActive:     current.IsActive,
			}
			if cmd.Flags().Changed("name") {
				req.Name = name
			}
			if cmd.Flags().Changed("nickname") {
				req.Nickname = nickname
			}
			if cmd.Flags().Changed("major") {
				req.PrepareMajor = &majorID
			}
			if cmd.Flags().Changed("active") {
				req.IsActive = active
			}
			if _, err := d.users.Update(cmd.Context(), id, req); err != nil {
				return err
			}
			return listUsers(cmd, d)
		},
	}
	update.Flags().StringVar(&name, "name", "", "student name")
	update.Flags().StringVar(&nickname, "nickname", "", "display nickname")
	update.Flags().Int64Var(&majorID, "major", 0, "prepare-major id")
	update.Flags().BoolVar(&active, "active", true, "account active")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a student account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := d.users.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return listUsers(cmd, d)
		},
	})

	return cmd
}

func listSubjects(cmd *cobra.Command, d *deps) error {
	page, err := d.subjects.List(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, s := range page.Items {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10), s.Name, strconv.Itoa(s.Sequence),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Seq"}, rows))
	fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page))
	return nil
}

func newSubjectsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "Manage subjects",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSubjects(cmd, d)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := d.subjects.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Seq"},
				[][]string{{strconv.FormatInt(s.ID, 10), s.Name, strconv.Itoa(s.Sequence)}}))
			return nil
		},
	})

	var name string
	var sequence int
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := d.subjects.Create(cmd.Context(), &model.CreateSubjectRequest{
				Name: name, Sequence: sequence,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created subject %d (%s).\n", created.ID, created.Name)
			return listSubjects(cmd, d)
		},
	}
	create.Flags().StringVar(&name, "name", "", "subject name")
	create.Flags().IntVar(&sequence, "sequence", 0, "display order")
	create.MarkFlagRequired("name")
	cmd.AddCommand(create)

	var updName string
	var updSequence int
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := d.subjects.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := &model.UpdateSubjectRequest{Name: current.Name, Sequence: current.Sequence}
			if cmd.Flags().Changed("name") {
				req.Name = updName
			}
			if cmd.Flags().Changed("sequence") {
				req.Sequence = updSequence
			}
			if _, err := d.subjects.Update(cmd.Context(), id, req); err != nil {
				return err
			}
			return listSubjects(cmd, d)
		},
	}
	update.Flags().StringVar(&updName, "name", "", "subject name")
	update.Flags().IntVar(&updSequence, "sequence", 0, "display order")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := d.subjects.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return listSubjects(cmd, d)
		},
	})

	return cmd
}

func listProgresses(cmd *cobra.Command, d *deps, withCounts bool) error {
	page, err := d.progresses.List(cmd.Context())
	if err != nil {
		return err
	}

	var counts map[int64]int
	if withCounts {
		ids := make([]int64, 0, len(page.Items))
		for _, p := range page.Items {
			ids = append(ids, p.ID)
		}
		counts, err = d.problems.CountByProgress(cmd.Context(), ids)
		if err != nil {
			return err
		}
	}

	rows := make([][]string, 0, len(page.Items))
	for _, p := range page.Items {
		subject := "-"
		if p.SubjectDetails != nil {
			subject = p.SubjectDetails.Name
		}
		row := []string{
			strconv.FormatInt(p.ID, 10), p.Name, strconv.Itoa(p.Day),
			orDash(p.Difficulty), subject,
		}
		if withCounts {
			row = append(row, strconv.Itoa(counts[p.ID]))
		}
		rows = append(rows, row)
	}
	headers := []string{"ID", "Name", "Day", "Difficulty", "Subject"}
	if withCounts {
		headers = append(headers, "Problems")
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
	fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page))
	return nil
}

func newProgressesCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progresses",
		Short: "Manage problem progresses (진도)",
	}

	var withCounts bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List progresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listProgresses(cmd, d, withCounts)
		},
	}
	listCmd.Flags().BoolVar(&withCounts, "counts", false, "include per-progress problem counts")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := d.progresses.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			subject := "-"
			if p.SubjectDetails != nil {
				subject = p.SubjectDetails.Name
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Day", "Difficulty", "Subject"},
				[][]string{{
					strconv.FormatInt(p.ID, 10), p.Name, strconv.Itoa(p.Day),
					orDash(p.Difficulty), subject,
				}}))
			return nil
		},
	})

	var name, difficulty string
	var day, sequence int
	var subjectID int64
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &model.CreateProgressRequest{Name: name, Day: day, Difficulty: difficulty}
			if cmd.Flags().Changed("subject") {
				req.SubjectID = &subjectID
			}
			if cmd.Flags().Changed("sequence") {
				req.Sequence = &sequence
			}
			created, err := d.progresses.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created progress %d (%s).\n", created.ID, created.Name)
			return listProgresses(cmd, d, false)
		},
	}
	create.Flags().StringVar(&name, "name", "", "progress name")
	create.Flags().IntVar(&day, "day", 0, "study day")
	create.Flags().StringVar(&difficulty, "difficulty", "", "basic or advanced")
	create.Flags().Int64Var(&subjectID, "subject", 0, "subject id")
	create.Flags().IntVar(&sequence, "sequence", 0, "display order")
	create.MarkFlagRequired("name")
	create.MarkFlagRequired("day")
	cmd.AddCommand(create)

	var updName, updDifficulty string
	var updDay, updSequence int
	var updSubjectID int64
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := d.progresses.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := &model.UpdateProgressRequest{
				Name:       current.Name,
				Day:        current.Day,
				Difficulty: current.Difficulty,
				SubjectID:  current.SubjectID,
				Sequence:   current.Sequence,
			}
			if cmd.Flags().Changed("name") {
				req.Name = updName
			}
			if cmd.Flags().Changed("day") {
				req.Day = updDay
			}
			if cmd.Flags().Changed("difficulty") {
				req.Difficulty = updDifficulty
			}
			if cmd.Flags().Changed("subject") {
				req.SubjectID = &updSubjectID
			}
			if cmd.Flags().Changed("sequence") {
				req.Sequence = &updSequence
			}
			if _, err := d.progresses.Update(cmd.Context(), id, req); err != nil {
				return err
			}
			return listProgresses(cmd, d, false)
		},
	}
	update.Flags().StringVar(&updName, "name", "", "progress name")
	update.Flags().IntVar(&updDay, "day", 0, "study day")
	update.Flags().StringVar(&updDifficulty, "difficulty", "", "basic or advanced")
	update.Flags().Int64Var(&updSubjectID, "subject", 0, "subject id")
	update.Flags().IntVar(&updSequence, "sequence", 0, "display order")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := d.progresses.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return listProgresses(cmd, d, false)
		},
	})

	return cmd
}
