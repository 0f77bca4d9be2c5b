package config

import (
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

// Defaulter is implemented by configs that fill unset fields after loading.
type Defaulter interface {
	SetDefaults()
}

// Validator is implemented by configs that can reject a loaded configuration.
type Validator interface {
	Validate() error
}

// FromFile read and parse config from given path and apply environment on it
func FromFile(filePath string, cfg interface{}) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return FromString(filePath, string(content), cfg)
}

// FromString is FromFile for an in-memory document. name is only used in template errors.
func FromString(name, content string, cfg interface{}) error {
	envMap := make(map[string]string)
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		envMap[pair[0]] = pair[1]
	}

	t, err := template.New(name).Option("missingkey=zero").Parse(content)
	if err != nil {
		return err
	}
	strWriter := &strings.Builder{}
	if err := t.Execute(strWriter, envMap); err != nil {
		return err
	}

	expanded := os.ExpandEnv(strWriter.String())
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return err
	}

	if d, ok := cfg.(Defaulter); ok {
		d.SetDefaults()
	}
	if v, ok := cfg.(Validator); ok {
		return v.Validate()
	}
	return nil
}
