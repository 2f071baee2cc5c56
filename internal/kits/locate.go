// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kits

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

const clientPrefix = "site-"

// Match is the directory chosen for a kit. Candidates holds every directory
// that qualified, sorted, so callers can report ambiguity.
type Match struct {
	Dir        string
	Candidates []string
}

func (m *Match) Ambiguous() bool {
	return len(m.Candidates) > 1
}

// LocateKit picks the kit directory among dirs. A known participant name
// must match exactly. Without a name the naming convention of the
// provisioning tool is used: servers are domain names, clients start with
// "site-" and admins are email addresses.
func LocateKit(dirs []string, kind types.ParticipantKind, name string) (*Match, error) {
	if !kind.Valid() {
		return nil, types.Validationf("unknown participant kind %q", kind)
	}

	if name != "" {
		if slices.Contains(dirs, name) {
			return &Match{Dir: name, Candidates: []string{name}}, nil
		}
		return nil, fmt.Errorf("%w: no %s kit named %s", types.ErrNotFound, kind, name)
	}

	candidates := make([]string, 0)
	for _, d := range dirs {
		if classify(d) == kind {
			candidates = append(candidates, d)
		}
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no %s kit in output", types.ErrNotFound, kind)
	}

	slices.Sort(candidates)

	return &Match{Dir: candidates[0], Candidates: candidates}, nil
}

// classify returns the participant kind a directory name looks like, or an
// empty kind.
func classify(dir string) types.ParticipantKind {
	switch {
	case dir == "" || strings.HasPrefix(dir, "."):
		return ""
	case strings.Contains(dir, "@"):
		return types.KindAdmin
	case strings.HasPrefix(dir, clientPrefix):
		return types.KindClient
	case isDomainName(dir):
		return types.KindServer
	default:
		return ""
	}
}

// fileSuffixes are extensions the provisioning tool leaves next to the kit
// directories. A name ending in one is never taken for a host name.
var fileSuffixes = []string{
	"bak", "cfg", "conf", "crt", "csr", "json", "key", "log", "pem",
	"py", "sh", "tar", "tgz", "tmp", "txt", "yaml", "yml", "zip",
}

// isDomainName wants at least two labels and an alphabetic top level label
// of two or more letters that is not a file suffix.
func isDomainName(s string) bool {
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}

	for _, l := range labels {
		if l == "" {
			return false
		}
	}

	tld := strings.ToLower(labels[len(labels)-1])
	if len(tld) < 2 || slices.Contains(fileSuffixes, tld) {
		return false
	}

	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
