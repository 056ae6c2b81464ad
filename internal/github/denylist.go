package github

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed denylist.json
var defaultDenylistJSON []byte

// Denylist holds owner logins whose repositories are excluded from search
// results. Membership checks are case-insensitive.
type Denylist map[string]struct{}

// DefaultDenylist returns the embedded list of large organizations.
func DefaultDenylist() Denylist {
	dl, err := parseDenylist(defaultDenylistJSON)
	if err != nil {
		// The embedded file ships with the binary; a parse failure is a build defect.
		panic(fmt.Sprintf("embedded denylist is invalid: %v", err))
	}
	return dl
}

// LoadDenylist reads a denylist from a JSON file (an array of logins).
func LoadDenylist(path string) (Denylist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading denylist file: %w", err)
	}
	dl, err := parseDenylist(data)
	if err != nil {
		return nil, fmt.Errorf("parsing denylist file %s: %w", path, err)
	}
	return dl, nil
}

func parseDenylist(data []byte) (Denylist, error) {
	var logins []string
	if err := json.Unmarshal(data, &logins); err != nil {
		return nil, err
	}
	dl := make(Denylist, len(logins))
	for _, login := range logins {
		dl[strings.ToLower(strings.TrimSpace(login))] = struct{}{}
	}
	return dl, nil
}

// Contains reports whether login is on the denylist.
func (d Denylist) Contains(login string) bool {
	_, ok := d[strings.ToLower(login)]
	return ok
}
