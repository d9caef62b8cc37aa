package types

// PinSet holds module names held back from upgrades. Entries are exact
// names, "prefix*" patterns, or "*".
type PinSet struct {
	Pins []string `yaml:"pins"`
}
