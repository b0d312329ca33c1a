// Package uevent reads attributes from the kernel's flat KEY=VALUE export
// format, as found in /sys/class/power_supply/*/uevent.
package uevent

import (
	"bufio"
	"strings"

	"codeberg.org/mutker/batstat/internal/errors"
)

const separator = "="

// Extract returns the raw value of the first line whose key equals name.
// Keys are compared exactly, so POWER_SUPPLY_ENERGY_NOW never matches
// POWER_SUPPLY_ENERGY_NOW_AVG or similar.
func Extract(name, raw string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		key, value, ok := splitLine(scanner.Text())
		if ok && key == name {
			return value, nil
		}
	}

	return "", errors.New().WithData(errors.ErrAttributeNotFound, name)
}

// Parse returns every attribute in raw. The first occurrence of a key wins,
// matching Extract.
func Parse(raw string) map[string]string {
	attrs := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		key, value, ok := splitLine(scanner.Text())
		if !ok {
			continue
		}
		if _, seen := attrs[key]; !seen {
			attrs[key] = value
		}
	}

	return attrs
}

func splitLine(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, separator)
	if !ok {
		return "", "", false
	}

	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
