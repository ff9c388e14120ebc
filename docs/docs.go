// Package docs registers the OpenAPI description served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Assistant"],
                "summary": "Welcome banner",
                "responses": {
                    "200": {"description": "Welcome to the Smart Voice Assistant API.", "schema": {"type": "string"}}
                }
            }
        },
        "/process/": {
            "get": {
                "description": "Extracts action items, meeting dates and key points from the text query parameter. Nothing is stored.",
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Extract from text",
                "parameters": [
                    {"type": "string", "description": "Text to analyze", "name": "text", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/assistant.ProcessResponse"}},
                    "400": {"description": "No text provided", "schema": {"$ref": "#/definitions/assistant.ErrorResponse"}},
                    "500": {"description": "Text analysis failed", "schema": {"$ref": "#/definitions/assistant.ErrorResponse"}}
                }
            }
        },
        "/voice-process/": {
            "post": {
                "description": "Stores one calendar event per date, one task per action item and one meeting summary. An empty text is valid.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Extract from a transcription and store the results",
                "parameters": [
                    {"description": "Transcribed text", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/assistant.VoiceProcessRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/assistant.VoiceProcessResponse"}},
                    "400": {"description": "Invalid JSON format or Invalid request method", "schema": {"$ref": "#/definitions/assistant.ErrorResponse"}},
                    "413": {"description": "Request body too large", "schema": {"$ref": "#/definitions/assistant.ErrorResponse"}},
                    "500": {"description": "Analysis or persistence failure", "schema": {"$ref": "#/definitions/assistant.ErrorResponse"}}
                }
            }
        },
        "/calendar-events/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "List stored calendar events",
                "parameters": [
                    {"type": "integer", "default": 1, "maximum": 1000000, "description": "Page number", "name": "page", "in": "query"},
                    {"maximum": 100, "type": "integer", "default": 20, "description": "Page size", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/assistant.CalendarEventListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/assistant.ErrorResponse"}}
                }
            }
        },
        "/tasks/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "List stored tasks",
                "parameters": [
                    {"type": "integer", "default": 1, "maximum": 1000000, "description": "Page number", "name": "page", "in": "query"},
                    {"maximum": 100, "type": "integer", "default": 20, "description": "Page size", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/assistant.TaskListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/assistant.ErrorResponse"}}
                }
            }
        },
        "/summaries/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "List stored meeting summaries",
                "parameters": [
                    {"type": "integer", "default": 1, "maximum": 1000000, "description": "Page number", "name": "page", "in": "query"},
                    {"maximum": 100, "type": "integer", "default": 20, "description": "Page size", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/assistant.MeetingSummaryListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/assistant.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/assistant.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/assistant.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "assistant.VoiceProcessRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "assistant.MeetingDetails": {
            "type": "object",
            "properties": {
                "dates": {"type": "array", "items": {"type": "string"}},
                "key_points": {"type": "array", "items": {"type": "string"}}
            }
        },
        "assistant.ProcessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "transcription": {"type": "string"},
                "action_items": {"type": "array", "items": {"type": "string"}},
                "meeting_details": {"$ref": "#/definitions/assistant.MeetingDetails"},
                "summary": {"type": "string"}
            }
        },
        "assistant.VoiceProcessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "transcription": {"type": "string"},
                "action_items": {"type": "array", "items": {"type": "string"}},
                "meeting_details": {"$ref": "#/definitions/assistant.MeetingDetails"},
                "summary": {"type": "string"},
                "calendar_events": {"type": "array", "items": {"type": "string"}},
                "tasks": {"type": "array", "items": {"type": "string"}}
            }
        },
        "assistant.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "code": {"type": "string"},
                "info": {"type": "string"}
            }
        },
        "assistant.CalendarEventResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string"},
                "label": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "assistant.TaskResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "assistant.MeetingSummaryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "summary_text": {"type": "string"},
                "key_points": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"}
            }
        },
        "common.PaginationResponse": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "total_items": {"type": "integer"}
            }
        },
        "assistant.CalendarEventListResponse": {
            "type": "object",
            "properties": {
                "calendar_events": {"type": "array", "items": {"$ref": "#/definitions/assistant.CalendarEventResponse"}},
                "pagination": {"$ref": "#/definitions/common.PaginationResponse"}
            }
        },
        "assistant.TaskListResponse": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/assistant.TaskResponse"}},
                "pagination": {"$ref": "#/definitions/common.PaginationResponse"}
            }
        },
        "assistant.MeetingSummaryListResponse": {
            "type": "object",
            "properties": {
                "summaries": {"type": "array", "items": {"$ref": "#/definitions/assistant.MeetingSummaryResponse"}},
                "pagination": {"$ref": "#/definitions/common.PaginationResponse"}
            }
        },
        "assistant.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"type": "string"},
                "analyzer": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Smart Voice Assistant API",
	Description:      "Extracts action items, meeting dates and key points from transcribed speech",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
