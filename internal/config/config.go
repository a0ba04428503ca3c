package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Profile configures one shell session: which process binaries may host the
// session, which elevated binaries the command builder substitutes, and which
// exit codes count as success by default.
type Profile struct {
	Shells      []string `toml:"shells"`
	Binaries    []string `toml:"binaries"`
	ResultCodes []int    `toml:"result_codes"`
}

func DefaultProfile() Profile {
	return Profile{
		Shells:      []string{"su", "sh"},
		Binaries:    []string{"busybox", "toolbox"},
		ResultCodes: []int{0},
	}
}

// LoadProfile reads a TOML profile, applying defaults for absent keys.
func LoadProfile(path string) (Profile, error) {
	cfg := DefaultProfile()

	var raw Profile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Profile{}, fmt.Errorf("profile load failed (%s): %w", path, err)
	}

	if meta.IsDefined("shells") {
		cfg.Shells = normalizeNames(raw.Shells)
	}
	if meta.IsDefined("binaries") {
		cfg.Binaries = normalizeNames(raw.Binaries)
	}
	if meta.IsDefined("result_codes") {
		cfg.ResultCodes = raw.ResultCodes
	}

	if err := ValidateProfile(cfg); err != nil {
		return Profile{}, err
	}
	return cfg, nil
}

func ValidateProfile(cfg Profile) error {
	if len(cfg.Shells) == 0 {
		return fmt.Errorf("profile missing shells")
	}
	if len(cfg.ResultCodes) == 0 {
		return fmt.Errorf("profile missing result_codes")
	}
	return nil
}

func normalizeNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, name := range in {
		v := strings.TrimSpace(name)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
