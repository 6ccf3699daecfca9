// Package bot implements the conversational flow of the VIN decoder bot
// and its binding to the Telegram transport.
package bot

import (
	"context"
	"strings"

	"github.com/ashmarin/vinbot/internal/domain"
)

// Decoder turns a VIN into its decoded attributes.
type Decoder interface {
	Decode(ctx context.Context, vin domain.VIN) (domain.DecodedAttributes, error)
}

// Button describes one inline control attached to a reply.
type Button struct {
	Label string
	Token string
}

// Reply is one outbound message produced by a transition.
type Reply struct {
	Text    string
	Buttons []Button
}

// Machine is the conversation state machine. It holds no per-chat state
// and no transport types, so transitions can be tested without a live
// chat connection.
type Machine struct {
	decoder Decoder
}

// NewMachine creates a state machine backed by the given decoder.
func NewMachine(decoder Decoder) *Machine {
	return &Machine{decoder: decoder}
}

// HandleText advances the conversation on a free-text message and
// returns the new state together with the replies to send.
func (m *Machine) HandleText(ctx context.Context, state domain.State, text string) (domain.State, []Reply) {
	switch state {
	case domain.StateAwaitingVIN:
		return m.handleVIN(ctx, text)
	case domain.StateAwaitingAgain:
		return m.handleAgain(text)
	default:
		return state, []Reply{{Text: msgUseStart}}
	}
}

// HandleCancel ends the conversation from any state.
func (m *Machine) HandleCancel(_ domain.State) (domain.State, []Reply) {
	return domain.StateEnded, []Reply{{Text: msgCancelFarewell}}
}

func (m *Machine) handleVIN(ctx context.Context, text string) (domain.State, []Reply) {
	vin, err := domain.ParseVIN(text)
	if err != nil {
		return domain.StateAwaitingVIN, []Reply{{Text: msgInvalidVIN}}
	}

	var replies []Reply
	attrs, err := m.decoder.Decode(ctx, vin)
	if err != nil {
		replies = append(replies, Reply{Text: renderDecodeError(err)})
	} else {
		replies = append(replies, Reply{
			Text:    renderSummary(attrs),
			Buttons: []Button{{Label: "📋 Full report", Token: reportToken(vin)}},
		})
	}

	replies = append(replies, Reply{Text: msgAskAgain})
	return domain.StateAwaitingAgain, replies
}

func (m *Machine) handleAgain(text string) (domain.State, []Reply) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", "y":
		return domain.StateAwaitingVIN, []Reply{{Text: msgNextVIN}}
	case "no", "n":
		return domain.StateEnded, []Reply{{Text: msgFarewell}}
	default:
		return domain.StateAwaitingAgain, []Reply{{Text: msgYesNoReprompt}}
	}
}
