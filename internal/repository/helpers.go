package repository

import (
	"fmt"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// convertSurrealID converts a SurrealDB record ID (which may be a structured
// value) to the canonical "table:id" string form.
func convertSurrealID(id interface{}) string {
	if str, ok := id.(string); ok {
		return str
	}

	if rid, ok := id.(models.RecordID); ok {
		return fmt.Sprintf("%s:%v", rid.Table, rid.ID)
	}
	if rid, ok := id.(*models.RecordID); ok && rid != nil {
		return fmt.Sprintf("%s:%v", rid.Table, rid.ID)
	}

	// Map format: {"tb": "account", "id": "xxx"} or nested variants
	if m, ok := id.(map[string]interface{}); ok {
		tb := ""
		idPart := ""

		if t, ok := m["tb"].(string); ok {
			tb = t
		} else if t, ok := m["Table"].(string); ok {
			tb = t
		}

		if idVal, ok := m["id"]; ok {
			idPart = extractIDValue(idVal)
		} else if idVal, ok := m["ID"]; ok {
			idPart = extractIDValue(idVal)
		}

		if tb != "" && idPart != "" {
			return tb + ":" + idPart
		}
		if idPart != "" {
			return idPart
		}
	}

	return fmt.Sprintf("%v", id)
}

// extractIDValue extracts the ID value which may be nested
func extractIDValue(val interface{}) string {
	if str, ok := val.(string); ok {
		return str
	}
	if m, ok := val.(map[string]interface{}); ok {
		if s, ok := m["String"].(string); ok {
			return s
		}
		if s, ok := m["string"].(string); ok {
			return s
		}
	}
	return fmt.Sprintf("%v", val)
}

// parseTime parses time from the formats the client hands back
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// extractQueryResults extracts the result array from a SurrealDB response
func extractQueryResults(result interface{}) ([]interface{}, bool) {
	if results, ok := result.([]interface{}); ok {
		if len(results) > 0 {
			if firstResult, ok := results[0].(map[string]interface{}); ok {
				if resultArray, ok := firstResult["result"].([]interface{}); ok {
					return resultArray, true
				}
			}
			// Direct array format
			return results, true
		}
	}
	return nil, false
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt64 converts the numeric types the client hands back to int64
func getInt64(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case uint64:
		return int64(v)
	}
	return 0
}

// getStringSlice extracts a string slice from a map
func getStringSlice(m map[string]interface{}, key string) []string {
	if v, ok := m[key].([]interface{}); ok {
		result := make([]string, 0, len(v))
		for _, item := range v {
			result = append(result, convertSurrealID(item))
		}
		return result
	}
	return nil
}

// getMapSlice extracts a slice of maps from a map
func getMapSlice(m map[string]interface{}, key string) []map[string]interface{} {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	result := make([]map[string]interface{}, 0, len(v))
	for _, item := range v {
		if entry, ok := item.(map[string]interface{}); ok {
			result = append(result, entry)
		}
	}
	return result
}

// getMap extracts a nested map from a map
func getMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}
