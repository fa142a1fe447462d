package simulator

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/google/uuid"

	"github.com/nqrduck/spectrometer-simulator/pkg/logger"
	"github.com/nqrduck/spectrometer-simulator/pkg/pulse"
	"github.com/nqrduck/spectrometer-simulator/pkg/settings"
)

// ErrMissingOptionalDependency is recorded, never returned, when no pulse sequence editor is linked
var ErrMissingOptionalDependency = errors.New("optional dependency missing")

const (
	DefaultAverages        = 1
	DefaultTargetFrequency = 100e6 // Hz
)

// State is the lifecycle state of a Model
type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Editor is the pulse sequence editor a model can be linked to.
// OnLoading receives the model's pulse parameter options once, at construction.
type Editor interface {
	OnLoading(options pulse.Options)
}

// EditorFunc adapts a function to the Editor interface
type EditorFunc func(options pulse.Options)

// OnLoading calls f(options)
func (f EditorFunc) OnLoading(options pulse.Options) { f(options) }

// Option configures a Model at construction
type Option func(*Model)

// WithEditor links the model to a pulse sequence editor
func WithEditor(editor Editor) Option {
	return func(m *Model) {
		m.editor = editor
	}
}

// WithLogger replaces the model's logger
func WithLogger(l logger.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// Model is the spectrometer simulator's configuration surface. It owns the
// settings and pulse parameter option registries, the number of averages
// and the target frequency.
//
// A Model is not safe for concurrent mutation; the host serializes access.
type Model struct {
	id     uuid.UUID
	module string
	state  State
	log    logger.Logger

	settings *settings.Registry
	options  *pulse.OptionRegistry

	averages        int
	targetFrequency float64

	editor      Editor
	linked      bool
	diagnostics []error
}

// NewModel builds a ready model for the named host module: it registers every
// setting and the TX and RX pulse parameter options, then hands the options
// to the editor if one was supplied. A missing editor is not an error.
func NewModel(module string, opts ...Option) (*Model, error) {
	m := &Model{
		id:       uuid.New(),
		module:   module,
		state:    StateUninitialized,
		log:      logger.WithPrefix("simulator"),
		settings: settings.NewRegistry(),
		options:  pulse.NewOptionRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.WithField("model", m.id.String()[:8])

	for _, d := range definitions {
		setting, err := d.build()
		if err != nil {
			return nil, fmt.Errorf("failed to build setting %s: %w", d.name, err)
		}
		if err := m.settings.AddSetting(setting, d.category); err != nil {
			return nil, fmt.Errorf("failed to register setting %s: %w", d.name, err)
		}
	}

	if err := m.options.AddPulseParameterOption(pulse.ChannelTX, pulse.TXPulse); err != nil {
		return nil, err
	}
	if err := m.options.AddPulseParameterOption(pulse.ChannelRX, pulse.RXReadout); err != nil {
		return nil, err
	}

	m.averages = DefaultAverages
	m.targetFrequency = DefaultTargetFrequency

	m.link()

	m.state = StateReady
	m.log.Debugf("Model ready with %d settings and %d pulse parameter options", m.settings.Len(), m.options.GetOptions().Len())
	return m, nil
}

// link hands the current options to the editor exactly once. It never fails:
// absence or a misbehaving editor is only recorded as a diagnostic.
func (m *Model) link() {
	if m.editor == nil {
		m.diagnostics = append(m.diagnostics, fmt.Errorf("%w: no pulse sequence editor linked", ErrMissingOptionalDependency))
		m.log.Warn("No pulse programmer found.")
		return
	}

	m.log.Debug("Pulse programmer found.")
	defer func() {
		if r := recover(); r != nil {
			m.diagnostics = append(m.diagnostics, fmt.Errorf("pulse sequence editor failed while loading options: %v", r))
			m.log.Errorf("Pulse programmer failed while loading options: %v", r)
		}
	}()
	m.editor.OnLoading(m.options.GetOptions())
	m.linked = true
}

// ID returns the identifier assigned to this model instance
func (m *Model) ID() uuid.UUID { return m.id }

// Module returns the name of the host module the model belongs to
func (m *Model) Module() string { return m.module }

// State returns the lifecycle state
func (m *Model) State() State { return m.state }

// Linked reports whether the options were handed to a pulse sequence editor
func (m *Model) Linked() bool { return m.linked }

// Diagnostics returns the non-fatal conditions recorded during construction
func (m *Model) Diagnostics() []error {
	return append([]error(nil), m.diagnostics...)
}

// GetOptions returns a snapshot of the pulse parameter options
func (m *Model) GetOptions() pulse.Options {
	return m.options.GetOptions()
}

// Get returns the named setting
func (m *Model) Get(name string) (*settings.Setting, error) {
	return m.settings.Get(name)
}

// SetValue validates and stores a setting value
func (m *Model) SetValue(name string, value interface{}) error {
	if err := m.settings.SetValue(name, value); err != nil {
		return err
	}
	m.log.Debugf("Setting %s = %v", name, value)
	return nil
}

// SetString parses raw for the named setting and stores it
func (m *Model) SetString(name, raw string) error {
	if err := m.settings.SetString(name, raw); err != nil {
		return err
	}
	m.log.Debugf("Setting %s = %s", name, raw)
	return nil
}

// Reset restores the named setting's default
func (m *Model) Reset(name string) error {
	return m.settings.Reset(name)
}

// CategoriesInOrder yields each category and its settings in display order
func (m *Model) CategoriesInOrder() iter.Seq2[settings.Category, []*settings.Setting] {
	return m.settings.CategoriesInOrder()
}

// Setting returns the setting for id
func (m *Model) Setting(id SettingID) (*settings.Setting, error) {
	return m.settings.Get(id.String())
}

// SetSetting validates and stores value for id
func (m *Model) SetSetting(id SettingID, value interface{}) error {
	return m.SetValue(id.String(), value)
}

// Int returns the value of an integer setting
func (m *Model) Int(id SettingID) (int, error) {
	v, err := m.value(id)
	if err != nil {
		return 0, err
	}
	i, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("setting %s holds %T, not int", id, v)
	}
	return i, nil
}

// Float returns the value of a float setting
func (m *Model) Float(id SettingID) (float64, error) {
	v, err := m.value(id)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("setting %s holds %T, not float64", id, v)
	}
	return f, nil
}

// Text returns the value of a string or selection setting
func (m *Model) Text(id SettingID) (string, error) {
	v, err := m.value(id)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("setting %s holds %T, not string", id, v)
	}
	return s, nil
}

func (m *Model) value(id SettingID) (interface{}, error) {
	setting, err := m.Setting(id)
	if err != nil {
		return nil, err
	}
	return setting.Value(), nil
}

// Averages returns the number of averages
func (m *Model) Averages() int { return m.averages }

// SetAverages sets the number of averages, which must be at least 1
func (m *Model) SetAverages(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: averages = %d must be a positive integer", settings.ErrInvalidValue, n)
	}
	m.averages = n
	return nil
}

// TargetFrequency returns the target frequency in Hz
func (m *Model) TargetFrequency() float64 { return m.targetFrequency }

// SetTargetFrequency sets the target frequency in Hz, which must be finite and positive
func (m *Model) SetTargetFrequency(hz float64) error {
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
		return fmt.Errorf("%w: target frequency = %g Hz must be positive", settings.ErrInvalidValue, hz)
	}
	m.targetFrequency = hz
	return nil
}
