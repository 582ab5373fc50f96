package consultation

import "fmt"

var lineRequiredFields = []string{"start_date", "type", "site"}

var lineAllowedFields = map[string]bool{
	"start_date": true,
	"type":       true,
	"site":       true,
	"other_type": true,
	"other_site": true,
}

// ValidateLines checks every lines-and-catheters entry against the
// fixed structural schema: start_date, type and site are required
// strings, other_type and other_site are optional strings, and no
// other properties are allowed.
func ValidateLines(lines []map[string]interface{}) error {
	for i, entry := range lines {
		for _, field := range lineRequiredFields {
			v, ok := entry[field]
			if !ok {
				return fmt.Errorf("lines[%d]: missing required field %q", i, field)
			}
			if _, ok := v.(string); !ok {
				return fmt.Errorf("lines[%d]: field %q must be a string", i, field)
			}
		}
		for field, v := range entry {
			if !lineAllowedFields[field] {
				return fmt.Errorf("lines[%d]: unexpected field %q", i, field)
			}
			if _, ok := v.(string); !ok {
				return fmt.Errorf("lines[%d]: field %q must be a string", i, field)
			}
		}
	}
	return nil
}
