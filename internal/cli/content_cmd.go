// internal/cli/content_cmd.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"medadmin/internal/client"
	"medadmin/internal/model"
)

// openImageFlag resolves an optional --image flag into a multipart file
// part. Returned closer must be closed after submission.
func openImageFlag(path string) (*client.FilePart, *os.File, error) {
	if path == "" {
		return nil, nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return &client.FilePart{FieldName: "image", FileName: filepath.Base(path), Reader: f}, f, nil
}

func listNotices(cmd *cobra.Command, d *deps) error {
	page, err := d.notices.List(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, n := range page.Items {
		rows = append(rows, []string{
			strconv.FormatInt(n.ID, 10), n.Title,
			strconv.FormatBool(n.IsPinned), orDash(n.ImageURL), formatTime(n.CreatedAt),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Title", "Pinned", "Image", "Created"}, rows))
	fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page))
	return nil
}

func newNoticesCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notices",
		Short: "Manage notices",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listNotices(cmd, d)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one notice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := d.notices.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Content", "Pinned", "Image", "Created"},
				[][]string{{
					strconv.FormatInt(n.ID, 10), n.Title, truncateRunes(n.Content, 60),
					strconv.FormatBool(n.IsPinned), orDash(n.ImageURL), formatTime(n.CreatedAt),
				}}))
			return nil
		},
	})

	var title, content, imagePath string
	var pinned bool
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a notice, optionally with an attached image",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &model.CreateNoticeRequest{Title: title, Content: content, IsPinned: pinned}

			image, closer, err := openImageFlag(imagePath)
			if err != nil {
				return err
			}
			if image != nil {
				defer closer.Close()
				_, err = d.notices.CreateWithImage(cmd.Context(), req, image)
			} else {
				_, err = d.notices.Create(cmd.Context(), req)
			}
			if err != nil {
				return err
			}
			return listNotices(cmd, d)
		},
	}
	create.Flags().StringVar(&title, "title", "", "notice title")
	create.Flags().StringVar(&content, "content", "", "notice body")
	create.Flags().BoolVar(&pinned, "pinned", false, "pin to the top")
	create.Flags().StringVar(&imagePath, "image", "", "path to an image to attach")
	create.MarkFlagRequired("title")
	create.MarkFlagRequired("content")
	cmd.AddCommand(create)

	var updTitle, updContent, updImagePath string
	var updPinned bool
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a notice, optionally replacing its image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := d.notices.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := &model.UpdateNoticeRequest{
				Title: current.Title, Content: current.Content, IsPinned: current.IsPinned,
			}
			if cmd.Flags().Changed("title") {
				req.Title = updTitle
			}
			if cmd.Flags().Changed("content") {
				req.Content = updContent
			}
			if cmd.Flags().Changed("pinned") {
				req.IsPinned = updPinned
			}

			image, closer, err := openImageFlag(updImagePath)
			if err != nil {
				return err
			}
			if image != nil {
				defer closer.Close()
				_, err = d.notices.UpdateWithImage(cmd.Context(), id, req, image)
			} else {
				_, err = d.notices.Update(cmd.Context(), id, req)
			}
			if err != nil {
				return err
			}
			return listNotices(cmd, d)
		},
	}
	update.Flags().StringVar(&updTitle, "title", "", "notice title")
	update.Flags().StringVar(&updContent, "content", "", "notice body")
	update.Flags().BoolVar(&updPinned, "pinned", false, "pin to the top")
	update.Flags().StringVar(&updImagePath, "image", "", "path to a replacement image")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := d.notices.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return listNotices(cmd, d)
		},
	})

	return cmd
}

func listPopups(cmd *cobra.Command, d *deps) error {
	page, err := d.popups.List(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, p := range page.Items {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10), p.Title, strconv.FormatBool(p.IsActive),
			orDash(p.StartDate), orDash(p.EndDate),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Title", "Active", "Start", "End"}, rows))
	fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page))
	return nil
}

func newPopupsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "popups",
		Short: "Manage app popups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List popups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPopups(cmd, d)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one popup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := d.popups.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Link", "Active", "Start", "End", "Image"},
				[][]string{{
					strconv.FormatInt(p.ID, 10), p.Title, orDash(p.LinkURL),
					strconv.FormatBool(p.IsActive), orDash(p.StartDate), orDash(p.EndDate),
					orDash(p.ImageURL),
				}}))
			return nil
		},
	})

	var title, linkURL, startDate, endDate, imagePath string
	var active bool
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a popup, optionally with its banner image",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &model.CreatePopupRequest{
				Title: title, LinkURL: linkURL, IsActive: active,
				StartDate: startDate, EndDate: endDate,
			}

			image, closer, err := openImageFlag(imagePath)
			if err != nil {
				return err
			}
			if image != nil {
				defer closer.Close()
				_, err = d.popups.CreateWithImage(cmd.Context(), req, image)
			} else {
				_, err = d.popups.Create(cmd.Context(), req)
			}
			if err != nil {
				return err
			}
			return listPopups(cmd, d)
		},
	}
	create.Flags().StringVar(&title, "title", "", "popup title")
	create.Flags().StringVar(&linkURL, "link", "", "target URL")
	create.Flags().BoolVar(&active, "active", true, "show immediately")
	create.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	create.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")
	create.Flags().StringVar(&imagePath, "image", "", "path to the banner image")
	create.MarkFlagRequired("title")
	cmd.AddCommand(create)

	var updTitle, updLinkURL, updStartDate, updEndDate, updImagePath string
	var updActive bool
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a popup, optionally replacing its banner image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := d.popups.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := &model.CreatePopupRequest{
				Title: current.Title, LinkURL: current.LinkURL, IsActive: current.IsActive,
				StartDate: current.StartDate, EndDate: current.EndDate,
			}
			if cmd.Flags().Changed("title") {
				req.Title = updTitle
			}
			if cmd.Flags().Changed("link") {
				req.LinkURL = updLinkURL
			}
			if cmd.Flags().Changed("active") {
				req.IsActive = updActive
			}
			if cmd.Flags().Changed("start") {
				req.StartDate = updStartDate
			}
			if cmd.Flags().Changed("end") {
				req.EndDate = updEndDate
			}

			image, closer, err := openImageFlag(updImagePath)
			if err != nil {
				return err
			}
			if image != nil {
				defer closer.Close()
				_, err = d.popups.UpdateWithImage(cmd.Context(), id, req, image)
			} else {
				_, err = d.popups.Update(cmd.Context(), id, req)
			}
			if err != nil {
				return err
			}
			return listPopups(cmd, d)
		},
	}
	update.Flags().StringVar(&updTitle, "title", "", "popup title")
	update.Flags().StringVar(&updLinkURL, "link", "", "target URL")
	update.Flags().BoolVar(&updActive, "active", true, "show immediately")
	update.Flags().StringVar(&updStartDate, "start", "", "start date (YYYY-MM-DD)")
	update.Flags().StringVar(&updEndDate, "end", "", "end date (YYYY-MM-DD)")
	update.Flags().StringVar(&updImagePath, "image", "", "path to a replacement banner")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a popup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := d.popups.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return listPopups(cmd, d)
		},
	})

	return cmd
}
