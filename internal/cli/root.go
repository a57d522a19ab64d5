// internal/cli/root.go
package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"medadmin/internal/auth"
	"medadmin/internal/client"
	"medadmin/internal/config"
	"medadmin/internal/service"
)

// deps bundles everything a command needs. Built once per invocation from
// the loaded config.
type deps struct {
	logger     *slog.Logger
	tokens     auth.TokenStore
	api        *client.Client
	auth       service.AuthService
	users      service.UserService
	subjects   service.SubjectService
	progresses service.ProgressService
	problems   service.ProblemService
	memos      service.MemoService
	notices    service.NoticeService
	popups     service.PopupService
	questions  service.QuestionService
	inquiries  service.InquiryService
	uploads    service.UploadService
}

func buildDeps(logger *slog.Logger) *deps {
	tokens := auth.NewFileTokenStore(config.Cfg.Auth.TokenFile)
	timeout := time.Duration(config.Cfg.API.TimeoutSeconds) * time.Second
	api := client.New(config.Cfg.API.BaseURL, tokens, timeout, logger)

	return &deps{
		logger:     logger,
		tokens:     tokens,
		api:        api,
		auth:       service.NewAuthService(api, tokens, logger),
		users:      service.NewUserService(api, logger),
		subjects:   service.NewSubjectService(api, logger),
		progresses: service.NewProgressService(api, logger),
		problems:   service.NewProblemService(api, logger),
		memos:      service.NewMemoService(api, logger),
		notices:    service.NewNoticeService(api, logger),
		popups:     service.NewPopupService(api, logger),
		questions:  service.NewQuestionService(api, logger),
		inquiries:  service.NewInquiryService(api, logger),
		uploads:    service.NewUploadService(api, logger),
	}
}

// NewRootCmd assembles the command tree. Config must already be loaded.
func NewRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "medadmin",
		Short:         "Admin CLI for the 내일은 의대생 platform backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	d := buildDeps(logger)

	root.AddCommand(
		newAuthCmd(d),
		newUsersCmd(d),
		newSubjectsCmd(d),
		newProgressesCmd(d),
		newProblemsCmd(d),
		newMemosCmd(d),
		newNoticesCmd(d),
		newPopupsCmd(d),
		newQuestionsCmd(d),
		newInquiriesCmd(d),
		newUploadCmd(d),
		newImportCmd(d),
	)
	return root
}
