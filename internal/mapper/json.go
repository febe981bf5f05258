package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// keywordsToJSON marshals a keyword list into the jsonb column value.
// A nil list stores as an empty array so queries never see SQL NULL.
func keywordsToJSON(keywords []string) datatypes.JSON {
	if keywords == nil {
		keywords = []string{}
	}
	b, err := json.Marshal(keywords)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func keywordsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var keywords []string
	if err := json.Unmarshal(raw, &keywords); err != nil {
		return []string{}
	}
	return keywords
}
