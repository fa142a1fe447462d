package settings

// Kind tags the value domain of a Setting
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindBoolean
	KindString
	KindSelection
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindSelection:
		return "selection"
	default:
		return "unknown"
	}
}

// Category groups settings for presentation
type Category int

const (
	Simulation Category = iota
	Hardware
	ExperimentalSetup
	Sample
)

// Categories lists every category in declaration order
var Categories = []Category{Simulation, Hardware, ExperimentalSetup, Sample}

func (c Category) String() string {
	switch c {
	case Simulation:
		return "Simulation"
	case Hardware:
		return "Hardware"
	case ExperimentalSetup:
		return "Experimental Setup"
	case Sample:
		return "Sample"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the declared categories
func (c Category) Valid() bool {
	return c >= Simulation && c <= Sample
}
