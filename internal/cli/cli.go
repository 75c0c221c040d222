// Package cli implements crowdctl, the operator command line for the
// crowdfunding service.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/app"
	"crowdfund/internal/auth"
	"crowdfund/internal/config"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// Environment is the execution environment shared by every command.
type Environment struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config config.Config
	Logger *slog.Logger
}

func (env *Environment) print(v any) error {
	enc := json.NewEncoder(env.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (env *Environment) campaigns() (*usecase.CampaignUseCase, func(), error) {
	ch, err := app.OpenChain(env.Ctx, env.Config.Chain)
	if err != nil {
		return nil, nil, err
	}
	supporters, closeCache, err := app.OpenCache(env.Ctx, env.Config.Cache, env.Logger)
	if err != nil {
		ch.Close()
		return nil, nil, err
	}
	uc := usecase.NewCampaignUseCase(ch.Contract, supporters, env.Logger,
		usecase.WithGateway(env.Config.Chain.IPFSGateway))
	return uc, func() { closeCache(); ch.Close() }, nil
}

type CampaignsCmd struct {
	Status string `help:"Only campaigns in this status (active, completed, expired)."`
	Q      string `help:"Case-insensitive search in title and description."`
	Owner  string `help:"Only campaigns owned by this address."`
}

func (cmd *CampaignsCmd) Run(env *Environment) error {
	status, err := domain.ParseStatus(cmd.Status)
	if err != nil {
		return err
	}
	filter := port.CampaignFilter{Status: status, Query: cmd.Q}
	if cmd.Owner != "" {
		owner, err := parseAddress(cmd.Owner)
		if err != nil {
			return err
		}
		filter.Owner = &owner
	}

	uc, done, err := env.campaigns()
	if err != nil {
		return err
	}
	defer done()

	list, err := uc.ListCampaigns(env.Ctx, filter)
	if err != nil {
		return err
	}
	return env.print(list)
}

type SupportersCmd struct {
	Viewer string `required help:"Address whose campaigns' supporters are listed."`
}

func (cmd *SupportersCmd) Run(env *Environment) error {
	viewer, err := parseAddress(cmd.Viewer)
	if err != nil {
		return err
	}
	uc, done, err := env.campaigns()
	if err != nil {
		return err
	}
	defer done()

	supporters, err := uc.Supporters(env.Ctx, viewer)
	if err != nil {
		return err
	}
	return env.print(supporters)
}

type StatsCmd struct {
	Viewer string `required help:"Address whose campaigns are aggregated."`
}

func (cmd *StatsCmd) Run(env *Environment) error {
	viewer, err := parseAddress(cmd.Viewer)
	if err != nil {
		return err
	}
	uc, done, err := env.campaigns()
	if err != nil {
		return err
	}
	defer done()

	stats, err := uc.DashboardStats(env.Ctx, viewer)
	if err != nil {
		return err
	}
	return env.print(stats)
}

type ContributeCmd struct {
	Campaign int64         `required help:"Campaign id."`
	Amount   string        `required help:"Amount in ether, e.g. 0.1."`
	Payer    string        `required help:"Address of a configured signer key."`
	Timeout  time.Duration `help:"Confirmation bound, overrides CONTRIBUTION_CONFIRM_TIMEOUT."`
	Record   bool          `help:"Record the attempt in PostgreSQL."`
}

func (cmd *ContributeCmd) Run(env *Environment) error {
	amount, err := domain.ParseAmount(cmd.Amount)
	if err != nil {
		return err
	}
	payer, err := parseAddress(cmd.Payer)
	if err != nil {
		return err
	}

	ch, err := app.OpenChain(env.Ctx, env.Config.Chain)
	if err != nil {
		return err
	}
	defer ch.Close()

	var repo port.ContributionRepository
	if cmd.Record {
		pool, err := db.NewPostgresPool(env.Ctx, env.Config.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()
		repo = postgres.NewContributionRepository(pool)
	}

	cfg := env.Config.Contribution
	if cmd.Timeout > 0 {
		cfg.ConfirmTimeout = cmd.Timeout
	}
	uc := usecase.NewContributionUseCase(ch.Contract, ch.Signers, repo, cfg, env.Logger)

	attempt, err := uc.Contribute(env.Ctx, port.ContributionRequest{
		CampaignID: cmd.Campaign,
		Amount:     amount,
		Payer:      payer,
	})
	if perr := env.print(attempt); perr != nil {
		return perr
	}
	if errors.Is(err, domain.ErrStillPending) {
		fmt.Fprintln(env.Stderr, "transaction broadcast but not yet confirmed")
		return nil
	}
	return err
}

type CreateCmd struct {
	Creator     string `required help:"Creator address; must be a configured signer key."`
	Title       string `required help:"Campaign title."`
	Description string `required help:"Campaign description."`
	Goal        string `required help:"Goal in ether, e.g. 2.5."`
	Days        int    `default:"30" help:"Days until the deadline."`
	IPFSHash    string `name:"ipfs-hash" required help:"IPFS hash of the cover image."`
	Image       string `help:"Image URI stored on chain; defaults to ipfs://<hash>."`
	Category    string `help:"Category recorded with the draft."`
	Record      bool   `help:"Record the draft in PostgreSQL once confirmed; the creator must be registered."`
}

func (cmd *CreateCmd) Run(env *Environment) error {
	creator, err := parseAddress(cmd.Creator)
	if err != nil {
		return err
	}
	goal, err := domain.ParseAmount(cmd.Goal)
	if err != nil {
		return err
	}
	if cmd.Days <= 0 {
		return fmt.Errorf("days must be positive, got %d", cmd.Days)
	}

	ch, err := app.OpenChain(env.Ctx, env.Config.Chain)
	if err != nil {
		return err
	}
	defer ch.Close()

	var (
		users  port.UserRepository
		drafts port.DraftRepository
	)
	if cmd.Record {
		pool, err := db.NewPostgresPool(env.Ctx, env.Config.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()
		users, drafts = postgres.NewUserRepository(pool), postgres.NewDraftRepository(pool)
	}
	uc := usecase.NewLaunchUseCase(ch.Contract, ch.Signers, users, drafts, env.Config.Contribution, env.Logger)

	launch, err := uc.Launch(env.Ctx, port.LaunchRequest{
		Creator: creator,
		Draft: port.DraftRequest{
			Title:       cmd.Title,
			Description: cmd.Description,
			GoalAmount:  goal,
			Category:    cmd.Category,
			ImageURL:    cmd.Image,
			Deadline:    time.Now().AddDate(0, 0, cmd.Days),
			IPFSHash:    cmd.IPFSHash,
		},
	})
	if perr := env.print(launch); perr != nil {
		return perr
	}
	if errors.Is(err, domain.ErrStillPending) {
		fmt.Fprintln(env.Stderr, "transaction broadcast but not yet confirmed")
		return nil
	}
	return err
}

type MigrateCmd struct {
	Direction string `arg:"" optional:"" enum:"up,down" default:"up" help:"up applies every migration, down reverts them."`
}

func (cmd *MigrateCmd) Run(env *Environment) error {
	addr := env.Config.Psql.Addr.String()
	if cmd.Direction == "down" {
		if err := db.Rollback(addr); err != nil {
			return err
		}
		env.Logger.Info("migrations rolled back")
		return nil
	}
	if err := db.Migrate(addr); err != nil {
		return err
	}
	env.Logger.Info("migrations applied successfully")
	return nil
}

type SeedCmd struct {
	Users    int `default:"3" help:"Number of demo users."`
	Drafts   int `default:"2" help:"Campaign drafts per user."`
	Attempts int `default:"3" help:"Contribution attempts per draft."`
}

func (cmd *SeedCmd) Run(env *Environment) error {
	pool, err := db.NewPostgresPool(env.Ctx, env.Config.Psql)
	if err != nil {
		return err
	}
	defer pool.Close()

	opts := db.SeedOptions{Users: cmd.Users, DraftsPerUser: cmd.Drafts, AttemptsPerDraft: cmd.Attempts}
	if err := db.Seed(env.Ctx, pool, opts); err != nil {
		return err
	}
	env.Logger.Info("seed complete",
		slog.Int("users", opts.Users),
		slog.Int("drafts", opts.Users*opts.DraftsPerUser))
	return nil
}

type TokenCmd struct {
	Address string        `required help:"Smart wallet address carried as the token subject."`
	TTL     time.Duration `default:"24h" help:"Token lifetime."`
}

func (cmd *TokenCmd) Run(env *Environment) error {
	addr, err := parseAddress(cmd.Address)
	if err != nil {
		return err
	}
	token, err := auth.NewVerifier(env.Config.Auth.JWTSecret).Issue(addr, cmd.TTL)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Stdout, token)
	return err
}

type CLI struct {
	Campaigns  CampaignsCmd  `cmd help:"Lists normalized campaigns read from the contract."`
	Supporters SupportersCmd `cmd help:"Lists contributions to campaigns owned by a viewer."`
	Stats      StatsCmd      `cmd help:"Prints dashboard statistics for a viewer."`
	Contribute ContributeCmd `cmd help:"Donates to a campaign from a configured signer key."`
	Create     CreateCmd     `cmd help:"Creates a campaign on chain from a configured signer key."`
	Migrate    MigrateCmd    `cmd help:"Applies or reverts database migrations."`
	Seed       SeedCmd       `cmd help:"Inserts demo users, drafts and contribution attempts."`
	Token      TokenCmd      `cmd help:"Issues a session token for local testing."`
}

// Run parses args and executes the selected command. It returns the process
// exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("crowdctl"),
		kong.Description("crowdfunding operator tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "load config:", err)
		return 1
	}
	env := &Environment{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
		Logger: cfg.Log.New(stderr),
	}

	if err := kctx.Run(env); err != nil {
		fmt.Fprintln(stderr, "crowdctl:", err)
		return 1
	}
	return 0
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%q is not a hex address", s)
	}
	return common.HexToAddress(s), nil
}
