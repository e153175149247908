package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strconv"

	"coursedex/internal/platform/config"
	perr "coursedex/internal/platform/errors"
	pnet "coursedex/internal/platform/net"
)

//go:embed openapi.json
var openapiDoc string

// docReader returns the raw document; tests swap it
var docReader = func() string { return openapiDoc }

// SpecMutator edits the decoded document before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// Register adds m to the mutators every doc.json request runs
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// commonFailures are added to every operation that does not declare them
var commonFailures = []error{
	perr.Newf(perr.ErrorCodeValidation, "page_size must be at most 200"),
	perr.Internalf("internal error"),
	perr.Unavailablef("catalog not loaded"),
}

type obj = map[string]any

// child returns m[key] as an object, creating it when absent
func child(m obj, key string) obj {
	c, ok := m[key].(obj)
	if !ok {
		c = obj{}
		m[key] = c
	}
	return c
}

func serveDocJSON(cfg config.Conf) http.HandlerFunc {
	suffix := cfg.MayString("DOCS_TITLE_SUFFIX", "")
	return func(w http.ResponseWriter, r *http.Request) {
		var doc obj
		if err := json.Unmarshal([]byte(docReader()), &doc); err != nil {
			http.Error(w, "openapi document is not valid json", http.StatusInternalServerError)
			return
		}
		decorate(doc, suffix)
		for _, m := range mutators {
			m(doc)
		}
		w.Header().Set("Cache-Control", "no-store")
		pnet.Write(w, http.StatusOK, doc)
	}
}

func decorate(doc obj, suffix string) {
	if _, ok := doc["openapi"].(string); !ok {
		doc["openapi"] = "3.0.3"
	}
	if _, ok := doc["servers"]; !ok {
		doc["servers"] = []any{obj{"url": "/api/v1"}}
	}
	if title, ok := child(doc, "info")["title"].(string); ok && suffix != "" {
		child(doc, "info")["title"] = title + " " + suffix
	}

	schemas := child(child(doc, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema()
	}

	paths, _ := doc["paths"].(obj)
	for _, err := range commonFailures {
		status, env := pnet.Failure(err, "7f3a9c1e2b4d/req-000001")
		resp := obj{
			"description": env.Status,
			"content": obj{"application/json": obj{
				"schema":  obj{"$ref": "#/components/schemas/ErrorResponse"},
				"example": env,
			}},
		}
		key := strconv.Itoa(status)
		for _, item := range paths {
			ops, _ := item.(obj)
			for _, op := range ops {
				if o, ok := op.(obj); ok {
					if rs := child(o, "responses"); rs[key] == nil {
						rs[key] = resp
					}
				}
			}
		}
	}
}

// errorSchema mirrors the failure half of the envelope
func errorSchema() obj {
	str := obj{"type": "string"}
	num := obj{"type": "integer", "format": "int32"}
	return obj{
		"type":        "object",
		"description": "Error envelope",
		"properties": obj{
			"status_code": num,
			"status":      str,
			"code":        num,
			"error":       str,
			"field":       str,
			"request_id":  str,
		},
		"required": []any{"status_code", "status", "error"},
	}
}
