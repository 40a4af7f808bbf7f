// Package config loads the two line-oriented input files: the group list
// (name,tier) and the name-seed pool (firstName,lastName). Both formats
// share the same lenient rules: '#' starts a comment, blank lines are
// ignored, and malformed lines are skipped with a warning rather than
// failing the load.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/isometry/adpop/internal/names"
)

// Tier classifies a configured group.
type Tier string

const (
	TierAccess Tier = "Access"
	TierRole   Tier = "Role"
)

// GroupSpec is one configured group. Names are unique across the loaded
// file; later duplicates are dropped at load time.
type GroupSpec struct {
	Name string
	Tier Tier
}

// LoadGroups reads a groups file of "name,tier" lines.
func LoadGroups(path string) ([]GroupSpec, error) {
	var specs []GroupSpec
	seen := make(map[string]struct{})

	err := scanLines(path, func(lineno int, fields []string) {
		if len(fields) != 2 {
			log.Warnf("%s:%d: malformed group line (want name,tier), skipping", path, lineno)
			return
		}

		name := fields[0]
		tier, ok := parseTier(fields[1])
		if !ok {
			log.Warnf("%s:%d: unknown group tier %q (want Access or Role), skipping", path, lineno, fields[1])
			return
		}

		// Group account names are case-insensitive in the directory.
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			log.Warnf("%s:%d: duplicate group %q, dropping", path, lineno, name)
			return
		}
		seen[key] = struct{}{}

		specs = append(specs, GroupSpec{Name: name, Tier: tier})
	})
	if err != nil {
		return nil, err
	}

	return specs, nil
}

// LoadSeeds reads a name-seeds file of "firstName,lastName" lines.
// Duplicates are permitted and kept in file order.
func LoadSeeds(path string) ([]names.Seed, error) {
	var pool []names.Seed

	err := scanLines(path, func(lineno int, fields []string) {
		if len(fields) != 2 {
			log.Warnf("%s:%d: malformed name-seed line (want firstName,lastName), skipping", path, lineno)
			return
		}

		pool = append(pool, names.Seed{FirstName: fields[0], LastName: fields[1]})
	})
	if err != nil {
		return nil, err
	}

	return pool, nil
}

func parseTier(s string) (Tier, bool) {
	switch strings.ToLower(s) {
	case "access":
		return TierAccess, true
	case "role":
		return TierRole, true
	default:
		return "", false
	}
}

// scanLines runs fn over every content line of path. Lines are split on
// commas with surrounding whitespace trimmed; fields may not themselves
// contain commas. Empty fields make a line malformed at the callback level.
func scanLines(path string, fn func(lineno int, fields []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		fields := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				// Treat lines with empty fields as malformed.
				fields = nil
				break
			}
			fields = append(fields, p)
		}

		fn(lineno, fields)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	return nil
}
