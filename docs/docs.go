// Package docs holds the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
                "produces": ["application/json"],
                "tags": ["Root"],
                "summary": "Welcome",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/hello/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Root"],
                "summary": "Greeting",
                "parameters": [
                    {"type": "string", "description": "Name to greet", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "Application is alive", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Application is ready", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/usuarios/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Usuarios"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/usuario.Usuario"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Create a user from query parameters or a JSON body",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Usuarios"],
                "summary": "Create user",
                "parameters": [
                    {"type": "string", "description": "Name", "name": "nombre", "in": "query"},
                    {"type": "string", "description": "Email", "name": "email", "in": "query"},
                    {"type": "boolean", "description": "Premium flag (default false)", "name": "premium", "in": "query"},
                    {"type": "string", "description": "Initial state (default ACTIVO)", "name": "estado", "in": "query"},
                    {"description": "Create request", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/dto.CreateUsuarioRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/usuario.Usuario"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/usuarios/activos/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Usuarios"],
                "summary": "List active users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/usuario.Usuario"}}}
                }
            }
        },
        "/usuarios/premium/activos/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Usuarios"],
                "summary": "List premium active users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/usuario.Usuario"}}}
                }
            }
        },
        "/usuarios/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Usuarios"],
                "summary": "Get user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usuario.Usuario"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Moves the user to ELIMINADO; the row is kept",
                "tags": ["Usuarios"],
                "summary": "Delete user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/usuarios/{id}/estado": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Usuarios"],
                "summary": "Update user state",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "ACTIVO, INACTIVO or ELIMINADO", "name": "nuevo_estado", "in": "query"},
                    {"description": "State request", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/dto.UpdateEstadoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usuario.Usuario"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/usuarios/{id}/premium": {
            "patch": {
                "produces": ["application/json"],
                "tags": ["Usuarios"],
                "summary": "Upgrade user to premium",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usuario.Usuario"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateUsuarioRequest": {
            "type": "object",
            "required": ["email", "nombre"],
            "properties": {
                "email": {"type": "string", "maxLength": 255},
                "estado": {"type": "string", "enum": ["ACTIVO", "INACTIVO", "ELIMINADO"]},
                "nombre": {"type": "string", "maxLength": 255},
                "premium": {"type": "boolean"}
            }
        },
        "dto.UpdateEstadoRequest": {
            "type": "object",
            "required": ["nuevo_estado"],
            "properties": {
                "nuevo_estado": {"type": "string", "enum": ["ACTIVO", "INACTIVO", "ELIMINADO"]}
            }
        },
        "usuario.Usuario": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "estado": {"type": "string", "enum": ["ACTIVO", "INACTIVO", "ELIMINADO"]},
                "fecha_creacion": {"type": "string", "format": "date-time"},
                "fecha_modificacion": {"type": "string", "format": "date-time"},
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "premium": {"type": "boolean"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"},
                "details": {}
            }
        },
        "utils.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
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
	Title:            "API de Gestión de Usuarios",
	Description:      "CRUD service for user records with lifecycle states and premium upgrades.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
