package pulse

// Channel keys used by the simulator
const (
	ChannelTX = "TX"
	ChannelRX = "RX"
)

// FieldKind is the value type of a shape field
type FieldKind string

const (
	FieldFloat     FieldKind = "float"
	FieldBoolean   FieldKind = "boolean"
	FieldSelection FieldKind = "selection"
)

// Field describes one configurable value of a pulse sequence event
type Field struct {
	Name    string    `yaml:"name"`
	Kind    FieldKind `yaml:"kind"`
	Default string    `yaml:"default"`
	Choices []string  `yaml:"choices,omitempty"`
}

// Descriptor is a Shape that also lists its fields for display
type Descriptor struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// ShapeName returns the descriptor name
func (d *Descriptor) ShapeName() string { return d.Name }

// Pulse envelope functions offered by the transmit shape
var Envelopes = []string{"Rectangular", "Sinc", "Gaussian", "Custom"}

// TXPulse is the transmit pulse shape
var TXPulse = &Descriptor{
	Name: "TXPulse",
	Fields: []Field{
		{Name: "Relative TX Amplitude", Kind: FieldFloat, Default: "0"},
		{Name: "TX Phase", Kind: FieldFloat, Default: "0"},
		{Name: "Shape", Kind: FieldSelection, Default: "Rectangular", Choices: Envelopes},
	},
}

// RXReadout is the receive readout shape
var RXReadout = &Descriptor{
	Name: "RXReadout",
	Fields: []Field{
		{Name: "RX", Kind: FieldBoolean, Default: "false"},
	},
}
