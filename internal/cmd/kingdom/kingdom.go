// Package kingdom parses kingdom CLI flags and dispatches subcommands.
package kingdom

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
	"github.com/louisbranch/stolenlands.quest/internal/errors/i18n"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/narration"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/resource"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/service"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/settlement"
	entrypoint "github.com/louisbranch/stolenlands.quest/internal/platform/cmd"
	"github.com/louisbranch/stolenlands.quest/internal/storage/bbolt"
	"github.com/louisbranch/stolenlands.quest/internal/storage/sqlite"
)

// Config holds kingdom command configuration.
type Config struct {
	DBPath      string `env:"STOLENLANDS_QUEST_DB_PATH" envDefault:"kingdom.db"`
	TurnLogPath string `env:"STOLENLANDS_QUEST_TURN_LOG_PATH" envDefault:"turnlog.db"`
	Locale      string `env:"STOLENLANDS_QUEST_LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into Config, returning the
// remaining arguments (subcommand and its flags).
func ParseConfig(fs *flag.FlagSet, args []string) (Config, []string, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, nil, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the kingdom SQLite database")
	fs.StringVar(&cfg.TurnLogPath, "turn-log", cfg.TurnLogPath, "Path to the turn log database")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for rendered messages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

// Run opens storage, builds the service, and executes one subcommand.
func Run(ctx context.Context, cfg Config, args []string) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceKingdom, func(ctx context.Context) error {
		return run(ctx, cfg, args, os.Stdout)
	})
}

func run(ctx context.Context, cfg Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageError()
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	turnLog, err := bbolt.Open(cfg.TurnLogPath)
	if err != nil {
		return err
	}
	defer turnLog.Close()

	svc, err := service.New(service.Deps{
		Kingdoms:    store,
		Settlements: store,
		Emitter: narration.MultiEmitter{
			narration.NewWriterEmitter(out, nil),
			narration.NewStoreEmitter(turnLog),
		},
		Log: turnLog,
	})
	if err != nil {
		return err
	}

	command, rest := args[0], args[1:]
	switch command {
	case "init":
		err = runInit(ctx, svc, rest, out)
	case "status":
		err = runStatus(ctx, svc, rest, out)
	case "settle":
		err = runSettle(ctx, svc, rest, out)
	case "build":
		err = runBuild(ctx, svc, rest)
	case "collect", "pay", "unrest", "event", "end-turn":
		err = runStep(ctx, svc, command, rest)
	case "gain":
		err = runAdjust(ctx, svc, domain.DeltaGain, rest, out)
	case "lose":
		err = runAdjust(ctx, svc, domain.DeltaLose, rest, out)
	case "log":
		err = runLog(ctx, svc, rest, out)
	default:
		err = usageError()
	}
	return localize(err, cfg.Locale)
}

// localize swaps a coded error's internal message for the locale
// catalog's rendering while keeping the code and cause chain intact.
func localize(err error, locale string) error {
	if err == nil {
		return nil
	}
	code := apperrors.GetCode(err)
	if code == apperrors.CodeUnknown {
		return err
	}
	message := i18n.GetCatalog(locale).Format(string(code), apperrors.GetMetadata(err))
	return apperrors.Wrap(code, message, err)
}

func usageError() error {
	return fmt.Errorf("expected a subcommand: init, status, settle, build, collect, pay, unrest, event, end-turn, gain, lose, log")
}

func runInit(ctx context.Context, svc *service.Service, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	name := fs.String("name", "", "Kingdom name")
	level := fs.Int("level", 1, "Kingdom level")
	size := fs.Int("size", 1, "Claimed hexes")
	feats := fs.String("feats", "", "Comma-separated feat names")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kingdom := domain.Kingdom{Name: *name, Level: *level, Size: *size}
	if *feats != "" {
		kingdom.Feats = strings.Split(*feats, ",")
	}
	created, err := svc.CreateKingdom(ctx, kingdom)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created kingdom %s (%s)\n", created.Name, created.ID)
	return nil
}

func runStatus(ctx context.Context, svc *service.Service, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	id := fs.String("id", "", "Kingdom ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kingdom, err := svc.Kingdom(ctx, *id)
	if err != nil {
		return err
	}
	aggregate, records, err := svc.Aggregate(ctx, *id)
	if err != nil {
		return err
	}

	data := kingdom.SizeData()
	fmt.Fprintf(out, "%s (level %d, %s, %d hexes)\n", kingdom.Name, kingdom.Level, data.Type, kingdom.Size)
	fmt.Fprintf(out, "  resource points %d (next %d), dice %d (next %d, d%d)\n",
		kingdom.ResourcePoints.Now, kingdom.ResourcePoints.Next,
		kingdom.ResourceDice.Now, kingdom.ResourceDice.Next, data.ResourceDieSides)
	now := kingdom.Commodities.Now
	fmt.Fprintf(out, "  commodities: food %d, lumber %d, ore %d, stone %d, luxuries %d\n",
		now.Food, now.Lumber, now.Ore, now.Stone, now.Luxuries)
	fmt.Fprintf(out, "  unrest %d, ruin %d, consumption %d (+%d settlements, +%d armies)\n",
		kingdom.Unrest, kingdom.Ruin.Total(), kingdom.Consumption.Now, aggregate.Consumption, kingdom.Consumption.Armies)
	fmt.Fprintf(out, "  settlements: %d, leadership activities %d\n", len(records), aggregate.LeadershipActivities)
	if activities := aggregate.Activities(); len(activities) > 0 {
		fmt.Fprintf(out, "  unlocked: %s\n", strings.Join(activities, ", "))
	}
	return nil
}

func runSettle(ctx context.Context, svc *service.Service, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("settle", flag.ContinueOnError)
	kingdomID := fs.String("id", "", "Kingdom ID")
	name := fs.String("name", "", "Settlement name")
	level := fs.Int("level", 1, "Settlement level")
	capital := fs.Bool("capital", false, "Mark as the capital")
	overcrowded := fs.Bool("overcrowded", false, "Mark as overcrowded")
	secondary := fs.Bool("secondary", false, "Mark as secondary territory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	record, err := svc.PutSettlement(ctx, settlement.Record{
		KingdomID:          *kingdomID,
		Name:               *name,
		Level:              *level,
		IsCapital:          *capital,
		Overcrowded:        *overcrowded,
		SecondaryTerritory: *secondary,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "recorded settlement %s (%s)\n", record.Name, record.ID)
	return nil
}

func runBuild(ctx context.Context, svc *service.Service, args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	kingdomID := fs.String("id", "", "Kingdom ID")
	settlementID := fs.String("settlement", "", "Settlement ID")
	structure := fs.String("structure", "", "Structure name from the catalog")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return svc.BuildStructure(ctx, *kingdomID, *settlementID, *structure)
}

func runStep(ctx context.Context, svc *service.Service, step string, args []string) error {
	fs := flag.NewFlagSet(step, flag.ContinueOnError)
	id := fs.String("id", "", "Kingdom ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	switch step {
	case "collect":
		_, err = svc.CollectResources(ctx, *id)
	case "pay":
		_, err = svc.PayConsumption(ctx, *id)
	case "unrest":
		_, err = svc.AdjustUnrest(ctx, *id)
	case "event":
		_, err = svc.CheckForEvent(ctx, *id)
	case "end-turn":
		_, err = svc.EndTurn(ctx, *id)
	}
	return err
}

func runAdjust(ctx context.Context, svc *service.Service, mode domain.DeltaMode, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(string(mode), flag.ContinueOnError)
	id := fs.String("id", "", "Kingdom ID")
	tag := fs.String("resource", "", "Resource tag")
	column := fs.String("turn", string(resource.TurnNow), "Ledger column: now or next")
	value := fs.String("value", "1", "Amount: integer, dice notation, or die quantity for roll-resource-dice")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := svc.AdjustResource(ctx, *id, resource.Type(*tag), resource.TurnColumn(*column), mode, *value)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s by %d to %d\n", mode, *tag, result.Delta, result.Value)
	if result.Missing > 0 {
		fmt.Fprintf(out, "short by %d\n", result.Missing)
	}
	return nil
}

func runLog(ctx context.Context, svc *service.Service, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("log", flag.ContinueOnError)
	id := fs.String("id", "", "Kingdom ID")
	pageSize := fs.Int("page-size", 20, "Events per page")
	pageToken := fs.String("page-token", "", "Continuation token from a previous page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	events, next, err := svc.TurnLog(ctx, *id, *pageSize, *pageToken)
	if err != nil {
		return err
	}
	catalog := narration.DefaultCatalog()
	for _, event := range events {
		fmt.Fprintf(out, "%s  %s\n", event.Timestamp.Format("2006-01-02 15:04"),
			catalog.Format(event.Key, event.Metadata))
	}
	if next != "" {
		fmt.Fprintf(out, "next page: -page-token %s\n", next)
	}
	return nil
}
