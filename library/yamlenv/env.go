package yamlenv

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var regexEnvRef = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// Env — значение конфигурации, которое может быть задано прямо в yaml
// или ссылкой вида ${VAR} на переменную окружения.
type Env[T any] struct {
	Value T
}

func (e *Env[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if m := regexEnvRef.FindStringSubmatch(node.Value); m != nil {
			raw, ok := os.LookupEnv(m[1])
			if !ok {
				return fmt.Errorf("переменная окружения %s не задана", m[1])
			}

			if err := yaml.Unmarshal([]byte(raw), &e.Value); err != nil {
				return fmt.Errorf("yaml.Unmarshal %s: %w", m[1], err)
			}

			return nil
		}
	}

	if err := node.Decode(&e.Value); err != nil {
		return fmt.Errorf("node.Decode: %w", err)
	}

	return nil
}

func (e *Env[T]) MarshalYAML() (any, error) {
	return e.Value, nil
}
