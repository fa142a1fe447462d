package pulse

import (
	"errors"
	"testing"
)

func TestOptionRegistryOrder(t *testing.T) {
	r := NewOptionRegistry()
	if err := r.AddPulseParameterOption(ChannelTX, TXPulse); err != nil {
		t.Fatalf("Failed to add TX: %v", err)
	}
	if err := r.AddPulseParameterOption(ChannelRX, RXReadout); err != nil {
		t.Fatalf("Failed to add RX: %v", err)
	}

	options := r.GetOptions()
	keys := options.Keys()
	if len(keys) != 2 || keys[0] != "TX" || keys[1] != "RX" {
		t.Fatalf("Expected [TX RX], got %v", keys)
	}

	var iterated []string
	for channel, shape := range options.All() {
		iterated = append(iterated, channel+"="+shape.ShapeName())
	}
	if len(iterated) != 2 || iterated[0] != "TX=TXPulse" || iterated[1] != "RX=RXReadout" {
		t.Errorf("Unexpected iteration order: %v", iterated)
	}
}

func TestOptionRegistryDuplicate(t *testing.T) {
	r := NewOptionRegistry()
	_ = r.AddPulseParameterOption(ChannelTX, TXPulse)

	err := r.AddPulseParameterOption(ChannelTX, RXReadout)
	if !errors.Is(err, ErrDuplicateChannel) {
		t.Fatalf("Expected ErrDuplicateChannel, got %v", err)
	}

	shape, ok := r.GetOptions().Get(ChannelTX)
	if !ok || shape != TXPulse {
		t.Errorf("Duplicate registration replaced the TX shape")
	}
	if r.GetOptions().Len() != 1 {
		t.Errorf("Expected 1 channel, got %d", r.GetOptions().Len())
	}

	if err := r.AddPulseParameterOption("", TXPulse); err == nil {
		t.Error("Expected error for empty channel key")
	}
}

func TestOptionsSnapshotIsImmutable(t *testing.T) {
	r := NewOptionRegistry()
	_ = r.AddPulseParameterOption(ChannelTX, TXPulse)

	snapshot := r.GetOptions()
	_ = r.AddPulseParameterOption(ChannelRX, RXReadout)

	if snapshot.Len() != 1 {
		t.Errorf("Snapshot changed after registration, has %d channels", snapshot.Len())
	}
	if _, ok := snapshot.Get(ChannelRX); ok {
		t.Error("Snapshot sees channel registered after it was taken")
	}

	keys := snapshot.Keys()
	keys[0] = "mutated"
	if snapshot.Keys()[0] != ChannelTX {
		t.Error("Keys() exposes internal storage")
	}
}

func TestOptionsEqual(t *testing.T) {
	a := NewOptionRegistry()
	_ = a.AddPulseParameterOption(ChannelTX, TXPulse)
	_ = a.AddPulseParameterOption(ChannelRX, RXReadout)

	b := NewOptionRegistry()
	_ = b.AddPulseParameterOption(ChannelRX, RXReadout)
	_ = b.AddPulseParameterOption(ChannelTX, TXPulse)

	if !a.GetOptions().Equal(a.GetOptions()) {
		t.Error("Expected snapshots of the same registry to be equal")
	}
	if a.GetOptions().Equal(b.GetOptions()) {
		t.Error("Expected snapshots with different order to differ")
	}
}
