// Package i18n translates the user facing strings of the Delivery Note panel.
//
// Messages are looked up by their English source text, and positional
// placeholders ({0}, {1}, ...) are substituted after translation.
package i18n

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed catalog/*.yaml
var catalogs embed.FS

const DefaultLanguage = "en"

type Translator struct {
	lang     string
	messages map[string]string
}

// English returns the identity translator.
func English() *Translator {
	return &Translator{lang: DefaultLanguage}
}

// Load returns the translator for lang ("it", "de-DE", ...). Unknown
// languages fall back to English.
func Load(lang string) (*Translator, error) {
	base := strings.ToLower(strings.SplitN(strings.ReplaceAll(lang, "_", "-"), "-", 2)[0])
	if base == "" || base == DefaultLanguage {
		return English(), nil
	}

	raw, err := catalogs.ReadFile("catalog/" + base + ".yaml")
	if err != nil {
		return English(), nil
	}

	messages := make(map[string]string)
	if err := yaml.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("parse %s catalog: %w", base, err)
	}
	return &Translator{lang: base, messages: messages}, nil
}

func (t *Translator) Language() string {
	if t == nil {
		return DefaultLanguage
	}
	return t.lang
}

// T translates msg and fills its {n} placeholders with args.
func (t *Translator) T(msg string, args ...any) string {
	out := msg
	if t != nil {
		if translated, ok := t.messages[msg]; ok && translated != "" {
			out = translated
		}
	}
	if len(args) == 0 {
		return out
	}

	pairs := make([]string, 0, len(args)*2)
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return strings.NewReplacer(pairs...).Replace(out)
}
