package httpclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// validationIssue is one entry of the list form of "detail" emitted for
// request validation failures: {"loc": ["body", "quantity"], "msg": "..."}.
type validationIssue struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// parseDetail extracts the human-readable message from an error body.
// Accepted shapes:
//
//	{"detail": "Insufficient stock"}
//	{"detail": [{"loc": ["body", "quantity"], "msg": "..."}]}
//
// Anything else yields "".
func parseDetail(body []byte) string {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &env); err != nil || len(env.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(env.Detail, &s); err == nil {
		return s
	}

	var issues []validationIssue
	if err := json.Unmarshal(env.Detail, &issues); err != nil {
		return ""
	}
	msgs := make([]string, 0, len(issues))
	for _, is := range issues {
		if is.Msg == "" {
			continue
		}
		if len(is.Loc) > 0 {
			msgs = append(msgs, fmt.Sprintf("%v: %s", is.Loc[len(is.Loc)-1], is.Msg))
			continue
		}
		msgs = append(msgs, is.Msg)
	}
	return strings.Join(msgs, "; ")
}
