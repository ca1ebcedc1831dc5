package config

import (
	"os"
	"sort"
	"strings"
)

// Override is a config key whose value comes from the environment.
type Override struct {
	Key    string `json:"key"`
	EnvVar string `json:"env_var"`
	Value  string `json:"value"`
}

// EnvVar returns the environment variable that overrides key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Keys returns every known config key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EnvOverrides lists the config keys currently set through the environment.
func EnvOverrides() []Override {
	var out []Override
	for _, key := range Keys() {
		env := EnvVar(key)
		if v, ok := os.LookupEnv(env); ok {
			out = append(out, Override{Key: key, EnvVar: env, Value: v})
		}
	}
	return out
}
