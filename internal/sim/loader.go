package sim

import (
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Load reads a scenario file from the given path and validates it.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrScenarioReadFailed.Error()), "path", path)
	}
	return Parse(data)
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, zerr.Wrap(err, ErrScenarioParseFailed.Error())
	}

	if sc.Version != SchemaVersion {
		return nil, zerr.With(zerr.Wrap(ErrBadVersion, "validate scenario"), "version", sc.Version)
	}
	if sc.Bind.Path == "" {
		return nil, ErrMissingPath
	}
	if len(sc.Steps) == 0 {
		return nil, ErrNoSteps
	}

	for i, step := range sc.Steps {
		if err := validateStep(step); err != nil {
			return nil, zerr.With(err, "step", i+1)
		}
	}
	return &sc, nil
}

func validateStep(s StepDTO) error {
	actions := 0
	if s.Emit != nil {
		actions++
	}
	if s.Swap != "" {
		actions++
	}
	if s.Detach != "" {
		actions++
	}
	if s.Attach != "" {
		actions++
	}
	if s.Notify != "" {
		actions++
	}
	if s.Expect != nil {
		actions++
	}
	if actions != 1 {
		return zerr.With(zerr.Wrap(ErrUnknownStep, "validate step"), "actions", actions)
	}

	for _, link := range []string{s.Swap, s.Detach, s.Attach} {
		if link != "" && link != LinkProbe && link != LinkGauge {
			return zerr.With(zerr.Wrap(ErrUnknownLink, "validate step"), "link", link)
		}
	}

	if s.Expect != nil && s.Expect.Value == nil && s.Expect.Unbound == nil && s.Expect.Writes == nil {
		return ErrMissingExpectation
	}
	return nil
}
