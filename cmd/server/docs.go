package main

import "github.com/swaggo/swag"

// docTemplate is the OpenAPI 2.0 document served at /swagger/doc.json.
const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/analyze": {
            "post": {
                "summary": "Score a job advert for gender-coded language",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/AnalyzeRequest"}}
                ],
                "responses": {
                    "200": {"description": "analysis result"},
                    "400": {"description": "invalid text or method"},
                    "413": {"description": "request body too large"},
                    "429": {"description": "rate limit exceeded"}
                }
            }
        },
        "/api/v1/rewrite": {
            "post": {
                "summary": "Rewrite a job advert and re-score it",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/RewriteRequest"}}
                ],
                "responses": {
                    "200": {"description": "improvement report"},
                    "400": {"description": "invalid text or method"},
                    "429": {"description": "rate limit exceeded"}
                }
            }
        },
        "/api/v1/industries": {
            "get": {
                "summary": "List industry benchmarks",
                "produces": ["application/json"],
                "responses": {"200": {"description": "benchmarks sorted by name"}}
            }
        },
        "/health": {
            "get": {
                "summary": "Service and estimator health",
                "produces": ["application/json"],
                "responses": {"200": {"description": "health report"}}
            }
        },
        "/metrics": {
            "get": {
                "summary": "Request, analysis and rate limit counters",
                "produces": ["application/json"],
                "responses": {"200": {"description": "metrics snapshot"}}
            }
        }
    },
    "definitions": {
        "AnalyzeRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"},
                "method": {"type": "string", "enum": ["lexicon", "contextual", "sentiment", "ensemble"]},
                "industry": {"type": "string"}
            }
        },
        "RewriteRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"},
                "method": {"type": "string", "enum": ["lexicon", "contextual", "sentiment", "ensemble"]},
                "industry": {"type": "string"},
                "force": {"type": "boolean"}
            }
        }
    }
}`

// swaggerInfo fills the document template and is registered with swag.
var swaggerInfo = &swag.Spec{
	Version:          version,
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "inclusive-o-meter API",
	Description:      "Gender-coded language analysis and rewriting for job adverts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(swaggerInfo.InstanceName(), swaggerInfo)
}
