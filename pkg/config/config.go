// Package config loads and persists the client's run parameters from an
// INI settings file. Saving reports every changed key against the values
// originally loaded.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Settings are the persisted run parameters.
type Settings struct {
	Host         string
	Port         int
	Timeout      time.Duration
	PollInterval time.Duration
	// WatchIndices restricts iteration to these OD indices; empty means all.
	WatchIndices []uint16

	origin map[string]string
}

// Default returns the settings used when no file exists yet.
func Default() *Settings {
	return &Settings{
		Port:         34980,
		Timeout:      3 * time.Second,
		PollInterval: 300 * time.Millisecond,
	}
}

// Load reads path, falling back to defaults for missing keys. A missing
// file yields the defaults without error, matching first-run behavior.
func Load(path string) (*Settings, error) {
	settings := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		settings.origin = settings.flatten()
		return settings, nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading settings %s: %w", path, err)
	}

	gateway := file.Section("gateway")
	if key := gateway.Key("host"); key.String() != "" {
		settings.Host = key.String()
	}
	if value, err := gateway.Key("port").Int(); err == nil && value != 0 {
		settings.Port = value
	}
	if value, err := gateway.Key("timeout_ms").Int(); err == nil && value != 0 {
		settings.Timeout = time.Duration(value) * time.Millisecond
	}

	poll := file.Section("poll")
	if value, err := poll.Key("interval_ms").Int(); err == nil && value != 0 {
		settings.PollInterval = time.Duration(value) * time.Millisecond
	}
	if raw := poll.Key("indices").String(); raw != "" {
		indices, err := ParseIndices(raw)
		if err != nil {
			return nil, fmt.Errorf("loading settings %s: %w", path, err)
		}
		settings.WatchIndices = indices
	}

	settings.origin = settings.flatten()
	return settings, nil
}

// Save writes the settings back to path, logging a warning for every key
// that changed since Load.
func (s *Settings) Save(path string) error {
	current := s.flatten()
	for key, value := range current {
		if before, ok := s.origin[key]; ok && before != value {
			log.Warnf("setting changed : %s : %s -> %s", key, before, value)
		}
	}

	file := ini.Empty()
	gateway := file.Section("gateway")
	gateway.Key("host").SetValue(s.Host)
	gateway.Key("port").SetValue(strconv.Itoa(s.Port))
	gateway.Key("timeout_ms").SetValue(strconv.FormatInt(s.Timeout.Milliseconds(), 10))
	poll := file.Section("poll")
	poll.Key("interval_ms").SetValue(strconv.FormatInt(s.PollInterval.Milliseconds(), 10))
	poll.Key("indices").SetValue(FormatIndices(s.WatchIndices))

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("saving settings %s: %w", path, err)
	}
	s.origin = current
	return nil
}

func (s *Settings) flatten() map[string]string {
	return map[string]string{
		"gateway.host":       s.Host,
		"gateway.port":       strconv.Itoa(s.Port),
		"gateway.timeout_ms": strconv.FormatInt(s.Timeout.Milliseconds(), 10),
		"poll.interval_ms":   strconv.FormatInt(s.PollInterval.Milliseconds(), 10),
		"poll.indices":       FormatIndices(s.WatchIndices),
	}
}

// ParseIndices parses a comma-separated list of OD indices, accepting both
// 0x-prefixed hex and decimal values.
func ParseIndices(raw string) ([]uint16, error) {
	var indices []uint16
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseUint(part, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("index %q: %w", part, err)
		}
		indices = append(indices, uint16(value))
	}
	return indices, nil
}

// FormatIndices renders indices as a comma-separated 0x-prefixed list.
func FormatIndices(indices []uint16) string {
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = fmt.Sprintf("0x%04X", index)
	}
	return strings.Join(parts, ",")
}
