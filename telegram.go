package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"mooncalendar/config"
	"mooncalendar/lunar"
)

const (
	phaseChangedAlert = "The Moon has entered a new phase"
	startMessage      = "Let's begin. Press a button or send /date YYYY-MM-DD."
	badRequestMessage = "I don't understand..."
	weekButton        = "Next 7 days"
	todayButton       = "Today"

	// nextPhaseLimit covers a full synodic month.
	nextPhaseLimit = 31
)

// sender is the part of *tgbotapi.BotAPI used to post messages.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// mono() returns monospaced escaped Markdown
func mono(s string) string {
	return "`" + tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s) + "`"
}

// phaseWatcher posts the day's snapshot whenever the phase label changes.
type phaseWatcher struct {
	bot    sender
	chatID int64
	state  State
	today  func() lunar.Date
	logger *zap.Logger
}

// check posts today's snapshot if its phase differs from the recorded one.
// It reports whether a message was sent.
func (w phaseWatcher) check() bool {
	snap, err := lunar.Compute(w.today())
	if err != nil {
		w.logger.Error("can't compute today's snapshot", zap.Error(err))
		return false
	}
	if last, ok := w.state.Phase(); ok && last == snap.Phase {
		w.logger.Info("no phase change", zap.Stringer("phase", snap.Phase))
		return false
	}
	w.logger.Info("phase changed, sending message", zap.Stringer("phase", snap.Phase))
	msg := tgbotapi.NewMessage(w.chatID, mono(phaseChangedAlert+"\n\n"+describe(snap)))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := w.bot.Send(msg); err != nil {
		w.logger.Error("can't send message to Telegram", zap.Error(err))
		return false
	}
	w.state.Set(snap.Phase)
	return true
}

// scheduleDailyPhase() is cron job which announces phase changes
func scheduleDailyPhase(bot sender, cfg config.Config, logger *zap.Logger) (*gocron.Scheduler, error) {
	chatID, err := cfg.ChatID()
	if err != nil {
		return nil, err
	}
	state := State{Path: cfg.StateFilePath, Logger: logger}
	state.Init()

	w := phaseWatcher{
		bot:    bot,
		chatID: chatID,
		state:  state,
		today:  func() lunar.Date { return lunar.DateOf(time.Now()) },
		logger: logger,
	}

	s := gocron.NewScheduler(time.Local)
	if _, err := s.Cron(cfg.CronExpression).Do(func() {
		logger.Info("starting cron job")
		w.check()
	}); err != nil {
		return nil, fmt.Errorf("scheduling %q: %w", cfg.CronExpression, err)
	}
	s.StartAsync()
	return s, nil
}

// authChat() makes sure no one else except the configured chat can interact with this bot
func authChat(chatID int64, allowedChatID string) bool {
	return fmt.Sprint(chatID) == allowedChatID
}

// reply returns the text answering message text sent to the bot.
func reply(m *tgbotapi.Message, cfg config.Config, today lunar.Date) string {
	command, args := "", ""
	if m.IsCommand() {
		command, args = m.Command(), strings.TrimSpace(m.CommandArguments())
	}
	switch {
	case command == "start":
		return startMessage
	case command == "today" || m.Text == todayButton:
		snap, err := lunar.Compute(today)
		if err != nil {
			return err.Error()
		}
		return describe(snap)
	case command == "week" || m.Text == weekButton:
		days, err := lunar.Range(today, cfg.ForecastDays)
		if err != nil {
			return err.Error()
		}
		return Report(days).Print()
	case command == "date":
		d, err := lunar.ParseDate(args)
		if err != nil {
			return err.Error()
		}
		snap, err := lunar.Compute(d)
		if err != nil {
			return err.Error()
		}
		return describe(snap)
	case command == "next":
		p, err := lunar.ParsePhase(args)
		if err != nil {
			return err.Error()
		}
		snap, ok, err := lunar.NextPhase(today, p, nextPhaseLimit)
		if err != nil {
			return err.Error()
		}
		if !ok {
			return fmt.Sprintf("No %s in the next %d days", p, nextPhaseLimit)
		}
		return fmt.Sprintf("Next %s: %s\n\n%s", p, snap.Date, describe(snap))
	}
	return badRequestMessage
}

// handleChat() is telegram bot handler for chat interactions
func handleChat(bot sender, update tgbotapi.Update, cfg config.Config, today lunar.Date, logger *zap.Logger) error {
	if update.Message == nil {
		return nil
	}
	if !authChat(update.Message.Chat.ID, cfg.TelegramChatID) {
		logger.Warn("unauthorized chat", zap.Int64("chat_id", update.Message.Chat.ID))
		return nil
	}

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(todayButton),
			tgbotapi.NewKeyboardButton(weekButton),
		),
	)

	from := ""
	if update.Message.From != nil {
		from = update.Message.From.UserName
	}
	logger.Info("message received", zap.String("from", from), zap.String("text", update.Message.Text))

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, mono(reply(update.Message, cfg, today)))
	msg.ReplyMarkup = keyboard
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	logger.Debug("sending message to Telegram")
	if _, err := bot.Send(msg); err != nil {
		return fmt.Errorf("cannot send message: %w", err)
	}
	return nil
}
