package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashmarin/vinbot/internal/domain"
	"github.com/ashmarin/vinbot/internal/shared"
)

const testVIN = "1HGCM82633A004352"

// stubDecoder returns a fixed result or error.
type stubDecoder struct {
	attrs domain.DecodedAttributes
	err   error
	calls int
}

func (d *stubDecoder) Decode(_ context.Context, vin domain.VIN) (domain.DecodedAttributes, error) {
	d.calls++
	if d.err != nil {
		return domain.DecodedAttributes{}, d.err
	}
	attrs := d.attrs
	attrs.VIN = vin
	return attrs, nil
}

func TestHandleText_ValidVINDecodesAndAsksAgain(t *testing.T) {
	decoder := &stubDecoder{attrs: domain.DecodedAttributes{Make: "HONDA", Model: "Accord", ModelYear: "2003"}}
	m := NewMachine(decoder)

	state, replies := m.HandleText(context.Background(), domain.StateAwaitingVIN, testVIN)

	assert.Equal(t, domain.StateAwaitingAgain, state)
	require.Len(t, replies, 2)
	assert.Contains(t, replies[0].Text, "HONDA")
	assert.Contains(t, replies[0].Text, "Accord")
	require.Len(t, replies[0].Buttons, 1)
	assert.Equal(t, "report:"+testVIN, replies[0].Buttons[0].Token)
	assert.Equal(t, msgAskAgain, replies[1].Text)
}

func TestHandleText_LowercaseVINAccepted(t *testing.T) {
	decoder := &stubDecoder{}
	m := NewMachine(decoder)

	state, _ := m.HandleText(context.Background(), domain.StateAwaitingVIN, "1hgcm82633a004352")

	assert.Equal(t, domain.StateAwaitingAgain, state)
	assert.Equal(t, 1, decoder.calls)
}

func TestHandleText_InvalidVINStaysAwaiting(t *testing.T) {
	decoder := &stubDecoder{}
	m := NewMachine(decoder)

	state, replies := m.HandleText(context.Background(), domain.StateAwaitingVIN, "not-a-vin")

	assert.Equal(t, domain.StateAwaitingVIN, state)
	require.Len(t, replies, 1)
	assert.Equal(t, msgInvalidVIN, replies[0].Text)
	assert.Zero(t, decoder.calls, "invalid input must not reach the decoder")
}

func TestHandleText_DecodeFailureStillAdvances(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"upstream status", &shared.UpstreamStatusError{Service: "decode service", StatusCode: 500}},
		{"timeout", shared.ErrTimeout},
		{"network", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(&stubDecoder{err: tt.err})

			state, replies := m.HandleText(context.Background(), domain.StateAwaitingVIN, testVIN)

			assert.Equal(t, domain.StateAwaitingAgain, state, "session continues after any decode attempt")
			require.Len(t, replies, 2)
			assert.Equal(t, msgAskAgain, replies[1].Text)
		})
	}
}

func TestHandleText_AgainAnswers(t *testing.T) {
	tests := []struct {
		input     string
		wantState domain.State
		wantReply string
	}{
		{"yes", domain.StateAwaitingVIN, msgNextVIN},
		{"YES", domain.StateAwaitingVIN, msgNextVIN},
		{"y", domain.StateAwaitingVIN, msgNextVIN},
		{" Y ", domain.StateAwaitingVIN, msgNextVIN},
		{"no", domain.StateEnded, msgFarewell},
		{"NO", domain.StateEnded, msgFarewell},
		{"n", domain.StateEnded, msgFarewell},
		{"maybe", domain.StateAwaitingAgain, msgYesNoReprompt},
		{"", domain.StateAwaitingAgain, msgYesNoReprompt},
	}

	m := NewMachine(&stubDecoder{})
	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			state, replies := m.HandleText(context.Background(), domain.StateAwaitingAgain, tt.input)

			assert.Equal(t, tt.wantState, state)
			require.Len(t, replies, 1)
			assert.Equal(t, tt.wantReply, replies[0].Text)
		})
	}
}

func TestHandleCancel_EndsFromAnyState(t *testing.T) {
	m := NewMachine(&stubDecoder{})
	for _, from := range []domain.State{domain.StateAwaitingVIN, domain.StateAwaitingAgain, domain.StateEnded} {
		state, replies := m.HandleCancel(from)

		assert.Equal(t, domain.StateEnded, state)
		require.Len(t, replies, 1)
		assert.Equal(t, msgCancelFarewell, replies[0].Text)
	}
}

func TestHandleText_EndedStatePointsToStart(t *testing.T) {
	m := NewMachine(&stubDecoder{})

	state, replies := m.HandleText(context.Background(), domain.StateEnded, testVIN)

	assert.Equal(t, domain.StateEnded, state)
	require.Len(t, replies, 1)
	assert.Equal(t, msgUseStart, replies[0].Text)
}
