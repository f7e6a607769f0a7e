package rules

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultRules []byte

// Load читает набор правил из YAML-файла.
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает набор правил из YAML и проверяет его пригодность.
func Parse(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if len(rs.Levels) == 0 {
		return nil, fmt.Errorf("parse rules: no academic levels defined")
	}
	if len(rs.Branches) == 0 {
		return nil, fmt.Errorf("parse rules: no field branches defined")
	}
	for name, pct := range rs.Branches {
		if pct < 0 || pct > 100 {
			return nil, fmt.Errorf("parse rules: branch %q percent %v outside [0,100]", name, pct)
		}
	}
	return &rs, nil
}

// Default возвращает встроенный набор правил конвокатории 2024-25.
func Default() *RuleSet {
	rs, err := Parse(defaultRules)
	if err != nil {
		// Встроенный файл проверяется тестами; сюда попадаем только при
		// поломке сборки.
		panic(err)
	}
	return rs
}
