// Package docs holds the OpenAPI description served at /swagger.
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
        "/api/v1/presets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["presets"],
                "summary": "List preset locations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Preset"}}
                    }
                }
            }
        },
        "/api/v1/sun-times": {
            "get": {
                "description": "Custom lat/lng override the preset when both are given.",
                "produces": ["application/json"],
                "tags": ["sun-times"],
                "summary": "Sun times for today and tomorrow",
                "parameters": [
                    {"type": "string", "description": "custom latitude", "name": "lat", "in": "query"},
                    {"type": "string", "description": "custom longitude", "name": "lng", "in": "query"},
                    {"type": "string", "description": "preset id", "name": "preset", "in": "query"},
                    {"type": "string", "description": "first day, YYYY-MM-DD", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SunTimesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.SunTimesResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.SunTimesResponse"}}
                }
            }
        },
        "/api/v1/sun-times/estimate": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sun-times"],
                "summary": "Locally computed sun times estimate",
                "parameters": [
                    {"type": "string", "description": "custom latitude", "name": "lat", "in": "query"},
                    {"type": "string", "description": "custom longitude", "name": "lng", "in": "query"},
                    {"type": "string", "description": "preset id", "name": "preset", "in": "query"},
                    {"type": "string", "description": "first day, YYYY-MM-DD", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SunTimesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.SunTimesResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.SunTimesResponse"}}
                }
            }
        },
        "/api/v1/display": {
            "get": {
                "produces": ["application/json"],
                "tags": ["display"],
                "summary": "Current contents of the results display",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.ViewModel"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["display"],
                "summary": "Reset the results display",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.ViewModel"}}
                }
            }
        },
        "/api/v1/display/refresh": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["display"],
                "summary": "Fetch sun times into the results display",
                "parameters": [
                    {"type": "string", "description": "custom latitude", "name": "lat", "in": "formData"},
                    {"type": "string", "description": "custom longitude", "name": "lng", "in": "formData"},
                    {"type": "string", "description": "preset id", "name": "preset", "in": "formData"},
                    {"type": "string", "description": "first day, YYYY-MM-DD", "name": "date", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RefreshResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.Preset": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "position": {"type": "integer"}
            }
        },
        "models.Location": {
            "type": "object",
            "properties": {
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "label": {"type": "string"}
            }
        },
        "models.DayResult": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "day_length": {"type": "string"},
                "first_light": {"type": "string"},
                "dawn": {"type": "string"},
                "sunrise": {"type": "string"},
                "solar_noon": {"type": "string"},
                "golden_hour": {"type": "string"},
                "sunset": {"type": "string"},
                "dusk": {"type": "string"},
                "last_light": {"type": "string"},
                "timezone": {"type": "string"},
                "utc_offset": {"type": "number"}
            }
        },
        "models.SunTimes": {
            "type": "object",
            "properties": {
                "location": {"$ref": "#/definitions/models.Location"},
                "today": {"$ref": "#/definitions/models.DayResult"},
                "tomorrow": {"$ref": "#/definitions/models.DayResult"},
                "timezone": {"type": "string"},
                "fetched_at": {"type": "string"}
            }
        },
        "view.Field": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "view.ViewModel": {
            "type": "object",
            "properties": {
                "visible": {"type": "boolean"},
                "loading": {"type": "boolean"},
                "location_label": {"type": "string"},
                "timezone": {"type": "string"},
                "last_updated": {"type": "string"},
                "today": {"type": "array", "items": {"$ref": "#/definitions/view.Field"}},
                "tomorrow": {"type": "array", "items": {"$ref": "#/definitions/view.Field"}},
                "error": {"type": "string"},
                "dimmed": {"type": "boolean"}
            }
        },
        "handler.SunTimesResponse": {
            "type": "object",
            "allOf": [{"$ref": "#/definitions/view.ViewModel"}],
            "properties": {
                "kind": {"type": "string"},
                "result": {"$ref": "#/definitions/models.SunTimes"}
            }
        },
        "handler.RefreshResponse": {
            "type": "object",
            "properties": {
                "sequence": {"type": "integer"},
                "applied": {"type": "boolean"},
                "display": {"$ref": "#/definitions/view.ViewModel"}
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
	Title:            "Sun Times API",
	Description:      "Sunrise, sunset, solar noon, dawn and dusk for today and tomorrow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
