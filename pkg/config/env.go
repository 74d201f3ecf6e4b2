package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/stoewer/go-strcase"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORK_JOURNAL"

// SourceEnv marks environment overrides in Result.Sources.
const SourceEnv = "ENV"

// EnvName returns the variable that overrides key, for example
// holidayCutoffDay -> WORK_JOURNAL_HOLIDAY_CUTOFF_DAY.
func EnvName(key string) string {
	return EnvPrefix + "_" + strcase.UpperSnakeCase(key)
}

// envValues collects the overrides currently set in the environment. Each
// value goes through the same validation as Set.
func envValues() (*Values, error) {
	v := viper.New()
	out := &Values{}
	for _, k := range schema {
		name := EnvName(k.Name)
		if err := v.BindEnv(k.Name, name); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", name, err)
		}
		if !v.IsSet(k.Name) {
			continue
		}
		val, err := k.Coerce(v.GetString(k.Name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out.Set(k.Name, val)
	}
	return out, nil
}
