// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/media": {
            "get": {
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Get media catalog or one collection",
                "parameters": [
                    {
                        "type": "string",
                        "enum": ["music", "video", "photos", "publications"],
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": ["ru", "en"],
                        "default": "ru",
                        "name": "locale",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.APIResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Append a media item",
                "parameters": [
                    {
                        "description": "Item to append",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.mediaItemRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.APIResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Replace a media item",
                "parameters": [
                    {
                        "description": "Item to update (id required)",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.mediaItemRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Remove a media item",
                "parameters": [
                    {"type": "string", "name": "type", "in": "query", "required": true},
                    {"type": "string", "name": "locale", "in": "query", "required": true},
                    {"type": "string", "name": "id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.APIResponse"}}
                }
            }
        },
        "/upload/{category}": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["upload"],
                "summary": "Upload one media file with metadata",
                "parameters": [
                    {
                        "type": "string",
                        "enum": ["photo", "video", "audio", "document"],
                        "name": "category",
                        "in": "path",
                        "required": true
                    },
                    {"type": "file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "name": "metadata", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.APIResponse"}}
                }
            }
        },
        "/geo": {
            "get": {
                "produces": ["application/json"],
                "tags": ["geo"],
                "summary": "Detect the caller's country",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "handlers.mediaItemRequest": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "locale": {"type": "string"},
                "item": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Terteryan Memorial Site API",
	Description:      "Media catalog and upload API for the composer memorial website",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
