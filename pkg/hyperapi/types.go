package hyperapi

import (
	"encoding/json"
	"fmt"
)

/*
sample:

	{
	    "status": "ok",
	    "response": {
	        "type": "order",
	        "data": {
	            "statuses": [
	                {
	                    "resting": {
	                        "oid": 77738308
	                    }
	                }
	            ]
	        }
	    }
	}
*/

type APIResponse struct {
	Status   string `json:"status"`
	Response struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	} `json:"response"`
}

func (a APIResponse) Validate() error {
	if a.Status != "ok" {
		return a.Error()
	}
	return nil
}

func (a APIResponse) Error() error {
	return fmt.Errorf("status: %s, type: %s, data: %q", a.Status, a.Response.Type, a.Response.Data)
}
