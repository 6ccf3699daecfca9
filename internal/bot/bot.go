package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ashmarin/vinbot/internal/domain"
	"github.com/ashmarin/vinbot/internal/session"
)

// RandomSource produces the next random decoded VIN.
type RandomSource interface {
	Next(ctx context.Context) (domain.DecodedAttributes, error)
}

// Sender is the subset of the Telegram client used for outbound traffic.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot routes inbound Telegram updates into the state machine and the
// random-VIN flow, and sends the rendered replies back.
type Bot struct {
	api      Sender
	sessions *session.Manager
	machine  *Machine
	random   RandomSource
	decoder  Decoder
}

// New creates a bot bound to the given transport client.
func New(api Sender, sessions *session.Manager, machine *Machine, random RandomSource, decoder Decoder) *Bot {
	return &Bot{
		api:      api,
		sessions: sessions,
		machine:  machine,
		random:   random,
		decoder:  decoder,
	}
}

// Run consumes updates until the context is canceled or the channel
// closes. Updates are processed one at a time, which keeps the per-chat
// "one event at a time" contract trivially satisfied.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	slog.Info("Bot update loop started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("Bot update loop shutting down", "reason", ctx.Err())
			return
		case update, ok := <-updates:
			if !ok {
				slog.Info("Bot update channel closed")
				return
			}
			b.safeHandle(ctx, update)
		}
	}
}

// safeHandle isolates one update so a panic cannot take down the process;
// the user gets a generic failure message instead.
func (b *Bot) safeHandle(ctx context.Context, update tgbotapi.Update) {
	chatID := updateChatID(update)
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic while handling update", "chat_id", chatID, "panic", r)
			if chatID != 0 {
				b.send(chatID, Reply{Text: msgInternalError})
			}
		}
	}()
	b.handleUpdate(ctx, update)
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, msg.Command())
		return
	}

	sess := b.sessions.Get(chatID)
	if sess == nil {
		b.send(chatID, Reply{Text: msgUseStart})
		return
	}

	newState, replies := b.machine.HandleText(ctx, sess.State, msg.Text)
	b.apply(chatID, newState, replies)
}

func (b *Bot) handleCommand(ctx context.Context, chatID int64, command string) {
	slog.Info("Command received", "chat_id", chatID, "command", command)

	switch command {
	case "start":
		b.sessions.Start(chatID)
		b.send(chatID, Reply{Text: msgWelcome})
	case "help":
		b.send(chatID, Reply{Text: msgHelp})
	case "cancel":
		state := domain.StateEnded
		if sess := b.sessions.Get(chatID); sess != nil {
			state = sess.State
		}
		newState, replies := b.machine.HandleCancel(state)
		b.apply(chatID, newState, replies)
	case "randomvin":
		// Independent of the conversation: never changes the current state.
		b.runRandom(ctx, chatID)
	default:
		b.send(chatID, Reply{Text: "❓ Unknown command. Try /help."})
	}
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		slog.Warn("Failed to answer callback query", "chat_id", chatID, "error", err)
	}

	switch {
	case cq.Data == tokenRandomAgain:
		b.runRandom(ctx, chatID)
	default:
		vin, ok := reportVIN(cq.Data)
		if !ok {
			slog.Warn("Unknown callback token", "chat_id", chatID, "token", cq.Data)
			return
		}
		b.runReport(ctx, chatID, vin)
	}
}

// runRandom performs the random-VIN flow and renders its result with its
// own follow-up controls.
func (b *Bot) runRandom(ctx context.Context, chatID int64) {
	attrs, err := b.random.Next(ctx)
	if err != nil {
		slog.Warn("Random VIN flow failed", "chat_id", chatID, "error", err)
		b.send(chatID, Reply{Text: renderRandomError(err)})
		return
	}
	b.send(chatID, Reply{
		Text:    renderRandomResult(attrs),
		Buttons: randomResultButtons(attrs.VIN),
	})
}

// runReport decodes the VIN again and renders the full report.
func (b *Bot) runReport(ctx context.Context, chatID int64, vin domain.VIN) {
	attrs, err := b.decoder.Decode(ctx, vin)
	if err != nil {
		slog.Warn("Report decode failed", "chat_id", chatID, "vin", vin, "error", err)
		b.send(chatID, Reply{Text: renderDecodeError(err)})
		return
	}
	b.send(chatID, Reply{Text: renderReport(attrs)})
}

func (b *Bot) apply(chatID int64, state domain.State, replies []Reply) {
	b.sessions.SetState(chatID, state)
	for _, reply := range replies {
		b.send(chatID, reply)
	}
}

func (b *Bot) send(chatID int64, reply Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if len(reply.Buttons) > 0 {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(reply.Buttons))
		for _, btn := range reply.Buttons {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Token))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(buttons...))
	}
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("Failed to send reply", "chat_id", chatID, "error", err)
	}
}

func updateChatID(update tgbotapi.Update) int64 {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID
	default:
		return 0
	}
}
