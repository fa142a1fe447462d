package simulator

import (
	"fmt"

	"github.com/nqrduck/spectrometer-simulator/pkg/settings"
)

// SettingID identifies one of the simulator's settings
type SettingID int

const (
	// Simulation
	NumberPoints SettingID = iota
	NumberIsochromats
	InitialMagnetization
	Gradient
	Noise

	// Hardware
	LengthCoil
	DiameterCoil
	NumberTurns
	QFactorTransmit
	QFactorReceive
	PowerAmplifierPower
	Gain

	// Experimental setup
	Temperature
	LossTX
	LossRX
	ConversionFactor

	// Sample
	SampleName
	Density
	MolarMass
	ResonantFrequency
	Gamma
	NuclearSpin
	SpinFactor
	PowderFactor
	FillingFactor
	T1
	T2
	T2Star

	numSettings
)

// SettingIDs returns every setting identity in registration order
func SettingIDs() []SettingID {
	ids := make([]SettingID, numSettings)
	for i := range ids {
		ids[i] = SettingID(i)
	}
	return ids
}

// String returns the setting's display name, which is also its registry key
func (id SettingID) String() string {
	if id < 0 || id >= numSettings {
		return fmt.Sprintf("SettingID(%d)", int(id))
	}
	return definitions[id].name
}

// Category returns the category the setting is registered under
func (id SettingID) Category() settings.Category {
	if id < 0 || id >= numSettings {
		return settings.Category(-1)
	}
	return definitions[id].category
}

type definition struct {
	id          SettingID
	name        string
	category    settings.Category
	def         interface{}
	description string
	opts        []settings.Option
}

func (d definition) build() (*settings.Setting, error) {
	switch v := d.def.(type) {
	case int:
		return settings.NewInteger(d.name, v, d.description, d.opts...)
	case float64:
		return settings.NewFloat(d.name, v, d.description, d.opts...)
	case bool:
		return settings.NewBoolean(d.name, v, d.description)
	case string:
		return settings.NewString(d.name, v, d.description)
	default:
		return nil, fmt.Errorf("setting %s has unsupported default %T", d.name, d.def)
	}
}

var (
	nonNegative = []settings.Option{settings.WithMin(0)}
	atLeastOne  = []settings.Option{settings.WithMin(1)}
	unitRange   = []settings.Option{settings.WithMin(0), settings.WithMax(1)}
)

// definitions is indexed by SettingID
var definitions = [numSettings]definition{
	{NumberPoints, "N. simulation points", settings.Simulation, 4096,
		"Number of points used for the simulation. This influences the dwell time in combination with the total event simulation given by the pulse sequence.", atLeastOne},
	{NumberIsochromats, "N. of isochromats", settings.Simulation, 1000, "Number of isochromats", atLeastOne},
	{InitialMagnetization, "Initial magnetization", settings.Simulation, 1.0, "Initial magnetization", nil},
	{Gradient, "Gradient (mT/m)", settings.Simulation, 1.0, "Gradient", nil},
	{Noise, "Noise (uV)", settings.Simulation, 2.0, "Noise", nonNegative},

	{LengthCoil, "Length coil (m)", settings.Hardware, 6e-3, "Length coil", nonNegative},
	{DiameterCoil, "Diameter coil (m)", settings.Hardware, 3e-3, "Diameter coil", nonNegative},
	{NumberTurns, "Number turns", settings.Hardware, 9, "Number turns", atLeastOne},
	{QFactorTransmit, "Q factor Transmit", settings.Hardware, 100.0, "Q factor Transmit", nonNegative},
	{QFactorReceive, "Q factor Receive", settings.Hardware, 100.0, "Q factor Receive", nonNegative},
	{PowerAmplifierPower, "PA power (W)", settings.Hardware, 110.0, "Power amplifier power", nonNegative},
	{Gain, "Gain", settings.Hardware, 6000.0, "Gain of the complete measurement chain", nil},

	{Temperature, "Temperature (K)", settings.ExperimentalSetup, 300.0, "Temperature", nonNegative},
	{LossTX, "Loss TX (dB)", settings.ExperimentalSetup, 30.0, "Loss TX", nil},
	{LossRX, "Loss RX (dB)", settings.ExperimentalSetup, 30.0, "Loss RX", nil},
	// LimeSDR based spectrometer
	{ConversionFactor, "Conversion factor", settings.ExperimentalSetup, 2884.0, "Conversion factor (spectrometer units / V)", nil},

	{SampleName, "Name", settings.Sample, "BiPh3", "Name", nil},
	{Density, "Density (g/cm^3)", settings.Sample, 1.585e6, "Density", nonNegative},
	{MolarMass, "Molar mass (g/mol)", settings.Sample, 440.3, "Molar mass", nonNegative},
	{ResonantFrequency, "Resonant freq. (Hz)", settings.Sample, 83.56e6, "Resonant frequency", nonNegative},
	{Gamma, "Gamma (Hz/T)", settings.Sample, 4.342e7, "Gamma", nil},
	{NuclearSpin, "Nuclear spin", settings.Sample, 9.0 / 2, "Nuclear spin", nonNegative},
	{SpinFactor, "Spin factor", settings.Sample, 2.0, "Spin factor", nil},
	{PowderFactor, "Powder factor", settings.Sample, 0.75, "Powder factor", unitRange},
	{FillingFactor, "Filling factor", settings.Sample, 0.7, "Filling factor", unitRange},
	{T1, "T1 (s)", settings.Sample, 83.5e-5, "T1", nonNegative},
	{T2, "T2 (s)", settings.Sample, 396e-6, "T2", nonNegative},
	{T2Star, "T2* (s)", settings.Sample, 50e-6, "T2*", nonNegative},
}
