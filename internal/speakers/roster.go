package speakers

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Unknown is the sentinel identity for speech that carries no speaker label.
const Unknown = "UNKNOWN"

// Roster is the ordered set of canonical lowercase speaker names for a run.
// It always ends with the Unknown sentinel and is read-only after loading.
type Roster []string

// LoadRoster reads a known-speaker file: one lowercase name per line, blank
// lines ignored. The Unknown sentinel is appended here rather than expected
// in the file.
func LoadRoster(path string) (Roster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open speaker list: %w", err)
	}
	defer file.Close()

	var roster Roster
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		roster = append(roster, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read speaker list: %w", err)
	}
	return append(roster, Unknown), nil
}
