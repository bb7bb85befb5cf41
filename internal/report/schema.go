package report

// Schema is the JSON Schema (Draft 2020-12) for the mulcheck suite
// JSON output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/mulcheck/check-report.schema.json",
  "title": "Mulcheck Report",
  "description": "Output schema for mulcheck check --format=json",
  "type": "object",
  "required": ["version", "results", "summary"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "results": {
      "type": "array",
      "items": { "$ref": "#/$defs/Result" }
    },
    "summary": { "$ref": "#/$defs/Summary" }
  },
  "$defs": {
    "Result": {
      "type": "object",
      "required": ["case", "got", "pass"],
      "properties": {
        "case": { "$ref": "#/$defs/Case" },
        "got": {
          "type": "integer",
          "description": "Computed product"
        },
        "pass": {
          "type": "boolean",
          "description": "True when got equals the expected product"
        }
      }
    },
    "Case": {
      "type": "object",
      "required": ["name", "a", "b", "want"],
      "properties": {
        "name": {
          "type": "string",
          "description": "Case identifier, unique within the suite"
        },
        "a": {
          "type": "integer",
          "description": "First operand"
        },
        "b": {
          "type": "integer",
          "description": "Second operand"
        },
        "want": {
          "type": "integer",
          "description": "Expected product"
        }
      }
    },
    "Summary": {
      "type": "object",
      "required": ["total", "passed", "failed"],
      "properties": {
        "total": {
          "type": "integer",
          "description": "Cases in the suite, including any skipped after a fail-fast stop"
        },
        "passed": {
          "type": "integer",
          "description": "Executed cases that matched"
        },
        "failed": {
          "type": "integer",
          "description": "Executed cases that mismatched"
        }
      }
    }
  }
}`
