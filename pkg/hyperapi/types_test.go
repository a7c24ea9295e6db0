package hyperapi

import (
	"encoding/json"
	"testing"
)

func TestAPIResponse(t *testing.T) {
	payload := `{
		"status": "ok",
		"response": {
			"type": "order",
			"data": {
				"statuses": [
					{"resting": {"oid": 77738308}}
				]
			}
		}
	}`

	var resp APIResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal should not return error: %v", err)
	}

	if err := resp.Validate(); err != nil {
		t.Errorf("Validate should not return error: %v", err)
	}

	if resp.Response.Type != "order" {
		t.Errorf("Expected type 'order', got %s", resp.Response.Type)
	}

	if len(resp.Response.Data) == 0 {
		t.Error("Expected non-empty response data")
	}
}

func TestAPIResponseValidateError(t *testing.T) {
	resp := APIResponse{Status: "err"}
	if err := resp.Validate(); err == nil {
		t.Error("Validate should return error for non-ok status")
	}
}
