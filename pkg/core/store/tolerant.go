package store

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// SmartUnmarshal tries multiple parsing strategies to load a document
// that may have been hand-edited. Order of attempts:
//  1. Standard JSON parse
//  2. JSON repair (trailing commas, single quotes, unclosed braces)
//  3. Hjson parse (most lenient: comments, unquoted keys)
func SmartUnmarshal(input string, schema interface{}) error {
	// Try 1: Standard JSON
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return nil
	}

	// Try 2: JSON repair
	if repaired, err := jsonrepair.RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	// Try 3: Hjson (most lenient)
	if err := hjson.Unmarshal([]byte(input), schema); err == nil {
		return nil
	}

	return fmt.Errorf("all parsing strategies failed for input")
}
