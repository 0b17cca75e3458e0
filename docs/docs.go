// Package docs registers the OpenAPI description served under /swagger.
// Keep it in step with the handler annotations in internal/handlers.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/assets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "List assets",
                "responses": {
                    "200": {"description": "count, assets", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/assets/{key}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Get asset",
                "parameters": [
                    {"type": "string", "example": "P-101", "description": "Asset key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AssetState"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/assets/{key}/load": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Set load factor",
                "parameters": [
                    {"type": "string", "description": "Asset key", "name": "key", "in": "path", "required": true},
                    {"description": "Load payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SetLoadRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AssetState"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/assets/{key}/maintenance": {
            "post": {
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Perform maintenance",
                "description": "Restores health to 92-99 and records a success event",
                "parameters": [
                    {"type": "string", "description": "Asset key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AssetState"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/assets/{key}/failure": {
            "post": {
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Trigger catastrophic failure",
                "description": "Forces health 5, vibration 15 mm/s, temperature 150 C and records an error event",
                "parameters": [
                    {"type": "string", "description": "Asset key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AssetState"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "description": "Most recent first. Dates accept RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'; a date-only 'to' covers the whole day.",
                "parameters": [
                    {"type": "string", "example": "2025-08-01", "description": "Start of range", "name": "from", "in": "query"},
                    {"type": "string", "example": "2025-08-31", "description": "End of range. Date-only treated as end of day.", "name": "to", "in": "query"},
                    {"enum": ["info", "success", "warning", "error"], "type": "string", "description": "Event level", "name": "level", "in": "query"},
                    {"type": "string", "example": "P-101", "description": "Asset key", "name": "asset", "in": "query"},
                    {"type": "integer", "description": "Maximum entries (default 100, max 1000)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "count, events", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/telemetry/energy": {
            "get": {
                "produces": ["application/json"],
                "tags": ["telemetry"],
                "summary": "Energy consumption",
                "description": "Trailing 24h at 15 minute resolution, with total, peak and average",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.EnergyReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/telemetry/maintenance-alerts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["telemetry"],
                "summary": "Predictive maintenance alerts",
                "responses": {
                    "200": {"description": "count, alerts", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/telemetry/security-events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["telemetry"],
                "summary": "Security events",
                "responses": {
                    "200": {"description": "count, events", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.SetLoadRequest": {
            "type": "object",
            "required": ["load_factor"],
            "properties": {
                "load_factor": {"description": "Load multiplier applied to degradation, vibration and temperature. Must be >= 0.", "type": "number", "example": 1.2}
            }
        },
        "models.ComponentAlert": {
            "type": "object",
            "properties": {
                "component": {"type": "string", "example": "motor"},
                "severity": {"type": "string", "enum": ["warning", "critical"]},
                "message": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "models.ComponentBands": {
            "type": "object",
            "properties": {
                "motor": {"type": "string", "enum": ["good", "warning", "critical"]},
                "bearing": {"type": "string", "enum": ["good", "warning", "critical"]},
                "impeller": {"type": "string", "enum": ["good", "warning", "critical"]}
            }
        },
        "models.AssetState": {
            "type": "object",
            "properties": {
                "key": {"type": "string", "example": "P-101"},
                "name": {"type": "string"},
                "icon": {"type": "string"},
                "health": {"type": "number"},
                "previous_health": {"type": "number"},
                "health_delta": {"type": "number"},
                "temperature_c": {"type": "number"},
                "vibration_mm_s": {"type": "number"},
                "load_factor": {"type": "number"},
                "status": {"type": "string", "enum": ["operational", "anomaly_detected", "maintenance_required", "imminent_failure", "operational_post_maintenance"]},
                "status_label": {"type": "string"},
                "last_status": {"type": "string"},
                "degradation_rate": {"type": "number"},
                "anomaly_chance": {"type": "number"},
                "bands": {"$ref": "#/definitions/models.ComponentBands"},
                "active_alerts": {"type": "array", "items": {"$ref": "#/definitions/models.ComponentAlert"}},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "models.EnergyMetric": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string", "format": "date-time"},
                "value_kwh": {"type": "number"}
            }
        },
        "models.EnergySummary": {
            "type": "object",
            "properties": {
                "total_kwh": {"type": "number"},
                "peak_kwh": {"type": "number"},
                "peak_at": {"type": "string", "format": "date-time"},
                "average_kwh": {"type": "number"}
            }
        },
        "service.EnergyReport": {
            "type": "object",
            "properties": {
                "series": {"type": "array", "items": {"$ref": "#/definitions/models.EnergyMetric"}},
                "summary": {"$ref": "#/definitions/models.EnergySummary"}
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
	Title:            "OCS Operations Dashboard API",
	Description:      "Synthetic building telemetry and a digital twin of plant assets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
