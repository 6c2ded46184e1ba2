package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mooncalendar/config"
	"mooncalendar/lunar"
)

var (
	// Global flags
	verbose bool
	format  string

	days  int
	limit int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mooncalendar",
	Short: "Moon age, phase, distance and ecliptic position for any date",
	Long: `mooncalendar computes a low-order approximation of the Moon's state
for a civil calendar date: age since new moon, phase, illumination,
distance in Earth radii, ecliptic latitude and longitude, and zodiac sign.

Dates are YYYY-MM-DD and default to today.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [date]",
	Short: "Show the Moon's state on a date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dateArg(args)
		if err != nil {
			return err
		}
		snap, err := lunar.Compute(d)
		if err != nil {
			return err
		}
		logger.Debug("computed snapshot", zap.Stringer("date", d), zap.Stringer("phase", snap.Phase))
		return render(cmd.OutOrStdout(), format, snap)
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range [date]",
	Short: "Show the Moon's state for consecutive days",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dateArg(args)
		if err != nil {
			return err
		}
		snaps, err := lunar.Range(d, days)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), format, Report(snaps))
	},
}

var nextCmd = &cobra.Command{
	Use:   "next <phase> [date]",
	Short: "Find the next date the Moon is in a phase",
	Long: `Finds the first date on or after the given date whose phase is <phase>.

Phases: "new moon", "waxing crescent", "first quarter", "waxing gibbous",
"full moon", "waning gibbous", "last quarter", "waning crescent".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lunar.ParsePhase(args[0])
		if err != nil {
			return err
		}
		d, err := dateArg(args[1:])
		if err != nil {
			return err
		}
		snap, ok, err := lunar.NextPhase(d, p, limit)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no %s within %d days of %s", p, limit, d)
		}
		return render(cmd.OutOrStdout(), format, snap)
	},
}

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	Long: `Runs a Telegram bot restricted to CHAT_ID that answers /today, /week,
/date YYYY-MM-DD and /next <phase>, and announces phase changes on the
CRON_EXPRESSION schedule.

Configuration is read from TG_BOT_TOKEN, CHAT_ID, STATE_FILE_PATH,
CRON_EXPRESSION and FORECAST_DAYS.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runBot(ctx, config.AppConfig)
	},
}

// dateArg returns the date named by args[0], or today when args is empty.
func dateArg(args []string) (lunar.Date, error) {
	if len(args) == 0 {
		return lunar.DateOf(time.Now()), nil
	}
	return lunar.ParseDate(args[0])
}

func runBot(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%v", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return err
	}
	logger.Info("authorized", zap.String("account", bot.Self.UserName))

	scheduler, err := scheduleDailyPhase(bot, cfg, logger)
	if err != nil {
		return err
	}
	defer scheduler.Stop()
	logger.Info("background cron job activated", zap.String("cron", cfg.CronExpression))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)
	defer bot.StopReceivingUpdates()

	logger.Info("bot started")
	for {
		select {
		case <-ctx.Done():
			logger.Info("bot stopping")
			return nil
		case update := <-updates:
			if err := handleChat(bot, update, cfg, lunar.DateOf(time.Now()), logger); err != nil {
				logger.Error("handling update", zap.Error(err))
			}
		}
	}
}

func init() {
	config.LoadConfig()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", config.AppConfig.OutputFormat, "Output format: text, json or yaml")

	rangeCmd.Flags().IntVarP(&days, "days", "n", config.AppConfig.ForecastDays, "Number of days to show")
	nextCmd.Flags().IntVar(&limit, "limit", 31, "Maximum number of days to search")

	rootCmd.AddCommand(snapshotCmd, rangeCmd, nextCmd, botCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
