package sim

// SchemaVersion is the scenario file version the runner speaks.
const SchemaVersion = "1"

// Scenario represents the structure of a scenario YAML file: one binding
// declaration and an ordered list of steps driving it.
type Scenario struct {
	Version string    `yaml:"version"`
	Name    string    `yaml:"name"`
	Bind    BindDTO   `yaml:"bind"`
	Steps   []StepDTO `yaml:"steps"`
}

// BindDTO declares the binding under test: the dotted path written into the
// rig and whether the rig starts with its probe link detached.
type BindDTO struct {
	Path     string `yaml:"path"`
	Detached bool   `yaml:"detached"`
}

// StepDTO is one scripted action. Exactly one field must be set.
type StepDTO struct {
	// Emit sends a reading into the source stream.
	Emit *float64 `yaml:"emit"`
	// Swap replaces the named rig link with a fresh object chain.
	Swap string `yaml:"swap"`
	// Detach sets the named rig link to nil.
	Detach string `yaml:"detach"`
	// Attach restores the named rig link with a fresh object chain.
	Attach string `yaml:"attach"`
	// Notify publishes a change notification for the given dotted path.
	Notify string `yaml:"notify"`
	// Expect asserts the current rig or binding state.
	Expect *ExpectDTO `yaml:"expect"`
}

// ExpectDTO asserts on the current state: the leaf value reachable through
// the bound path, and/or whether the binding is currently bound.
type ExpectDTO struct {
	Value   *float64 `yaml:"value"`
	Unbound *bool    `yaml:"unbound"`
	Writes  *uint64  `yaml:"writes"`
}
