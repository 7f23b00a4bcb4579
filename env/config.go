package env

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/mazzegi/finset/convert"
)

const (
	KeyConfig = "FINSET_CONFIG"
	KeyLocale = "FINSET_LOCALE"

	DefaultLocale = "en"
)

// Config is the set calculator configuration: named integer sets and the
// elements the law checks probe with.
//
//	locale = "de"
//	elements = [0, 1, 2, 3]
//	[sets]
//	a = [1, 2, 3]
//	b = [2, 3, 4]
type Config struct {
	Locale   string
	Sets     map[string][]int
	Elements []int
}

type rawConfig struct {
	Locale   string           `toml:"locale"`
	Sets     map[string][]any `toml:"sets"`
	Elements []any            `toml:"elements"`
}

func LoadConfig(path string) (Config, error) {
	var raw rawConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return Config{}, fmt.Errorf("decode %q: %w", path, err)
	}
	return raw.config()
}

func DecodeConfig(data string) (Config, error) {
	var raw rawConfig
	if _, err := toml.Decode(data, &raw); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	return raw.config()
}

func (raw rawConfig) config() (Config, error) {
	cfg := Config{
		Locale: raw.Locale,
		Sets:   map[string][]int{},
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	for name, vs := range raw.Sets {
		ns, err := convert.ToInts(vs)
		if err != nil {
			return Config{}, fmt.Errorf("set %q: %w", name, err)
		}
		cfg.Sets[name] = ns
	}
	ns, err := convert.ToInts(raw.Elements)
	if err != nil {
		return Config{}, fmt.Errorf("elements: %w", err)
	}
	cfg.Elements = ns
	return cfg, nil
}
