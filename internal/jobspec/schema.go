package jobspec

import "github.com/xeipuuv/gojsonschema"

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "definitions": {
    "skillList": {
      "type": "array",
      "items": {"type": "string"}
    },
    "job": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "company": {"type": "string"},
        "description": {"type": "string"},
        "skills": {
          "type": "object",
          "properties": {
            "required": {"$ref": "#/definitions/skillList"},
            "preferred": {"$ref": "#/definitions/skillList"}
          }
        }
      }
    }
  },
  "if": {"required": ["jobs"]},
  "then": {
    "properties": {
      "jobs": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/job"}}
    }
  },
  "else": {"$ref": "#/definitions/job"}
}`

var schema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(err)
	}
	return s
}()
