package testing

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/romellogoodman/monolith/internal/template"
)

//go:embed scenarios/*.yaml
var builtinScenarios embed.FS

// LoadBuiltinScenarios returns the scenarios shipped with the binary, which
// exercise every function of the catalog and the discovery tools.
func LoadBuiltinScenarios() ([]TestScenario, error) {
	sub, err := fs.Sub(builtinScenarios, "scenarios")
	if err != nil {
		return nil, err
	}
	return loadFS(sub)
}

// LoadScenarios reads a scenario file, or every .yaml/.yml file below a
// directory. An empty path selects the built-in scenarios.
func LoadScenarios(path string) ([]TestScenario, error) {
	if path == "" {
		return LoadBuiltinScenarios()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scenario path %s: %w", path, err)
	}
	if !info.IsDir() {
		scenario, err := loadFile(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return nil, err
		}
		return []TestScenario{scenario}, nil
	}
	return loadFS(os.DirFS(path))
}

func loadFS(fsys fs.FS) ([]TestScenario, error) {
	var scenarios []TestScenario
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAMLFile(path) {
			return nil
		}

		scenario, err := loadFile(fsys, path)
		if err != nil {
			return err
		}
		if other, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("scenario %q is defined in both %s and %s", scenario.Name, other, path)
		}
		seen[scenario.Name] = path
		scenarios = append(scenarios, scenario)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}

	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios, nil
}

func loadFile(fsys fs.FS, path string) (TestScenario, error) {
	var scenario TestScenario

	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return scenario, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &scenario); err != nil {
		return scenario, fmt.Errorf("failed to parse YAML in %s: %w", path, err)
	}
	if err := validateScenario(scenario); err != nil {
		return scenario, fmt.Errorf("invalid scenario in %s: %w", path, err)
	}
	return scenario, nil
}

func validateScenario(scenario TestScenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.Category == "" {
		return fmt.Errorf("scenario category is required")
	}
	if len(scenario.Steps) == 0 {
		return fmt.Errorf("scenario must have at least one step")
	}

	ids := make(map[string]bool)
	stored := make(map[string]bool)
	engine := template.New()
	for i, step := range scenario.Steps {
		switch {
		case step.ID == "":
			return fmt.Errorf("step %d: step id is required", i+1)
		case step.Tool == "":
			return fmt.Errorf("step %d: step tool is required", i+1)
		case ids[step.ID]:
			return fmt.Errorf("step %d: duplicate step id %q", i+1, step.ID)
		case step.Timeout < 0:
			return fmt.Errorf("step %d: timeout cannot be negative", i+1)
		}
		for _, variable := range engine.Variables(step.Args) {
			name, _, _ := strings.Cut(variable, ".")
			if !stored[name] {
				return fmt.Errorf("step %d: %q is not stored by an earlier step", i+1, name)
			}
		}
		ids[step.ID] = true
		if step.Store != "" {
			stored[step.Store] = true
		}
	}
	return nil
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// FilterScenarios keeps the scenarios selected by config.
func FilterScenarios(scenarios []TestScenario, config TestConfiguration) []TestScenario {
	var filtered []TestScenario
	for _, scenario := range scenarios {
		if config.Category != "" && scenario.Category != config.Category {
			continue
		}
		if config.Scenario != "" && scenario.Name != config.Scenario {
			continue
		}
		if config.Tag != "" && !hasTag(scenario, config.Tag) {
			continue
		}
		filtered = append(filtered, scenario)
	}
	return filtered
}

func hasTag(scenario TestScenario, tag string) bool {
	for _, t := range scenario.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ScenarioNames lists names for shell completion.
func ScenarioNames(scenarios []TestScenario) []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	return names
}
