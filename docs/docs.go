// Package docs holds the OpenAPI document served under /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange email and password for a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Token"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        },
        "/categories": {
            "get": {
                "tags": ["categories"],
                "summary": "List categories",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Category"}}}
                }
            }
        },
        "/products": {
            "get": {
                "tags": ["products"],
                "summary": "List products by name",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "name", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ProductPage"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Create a product (ADMIN)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/ProductPayload"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Product"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "tags": ["products"],
                "summary": "Get a product",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Product"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Replace a product (ADMIN)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/ProductPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Product"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Delete a product (ADMIN)",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Referenced by orders", "schema": {"$ref": "#/definitions/HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        },
        "/orders": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["orders"],
                "summary": "Place an order (CLIENT)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOrderRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Order"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["orders"],
                "summary": "Get an order (ADMIN or owner)",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Current user profile",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Profile"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "Category": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}},
        "CategoryRef": {"type": "object", "properties": {"id": {"type": "integer", "example": 1}}},
        "FieldMessage": {"type": "object", "properties": {"fieldName": {"type": "string"}, "message": {"type": "string"}}},
        "HTTPError": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "status": {"type": "integer"},
                "error": {"type": "string"},
                "path": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/FieldMessage"}}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string", "example": "maria@gmail.com"}, "password": {"type": "string", "example": "123456"}}
        },
        "Token": {
            "type": "object",
            "properties": {"accessToken": {"type": "string"}, "tokenType": {"type": "string", "example": "Bearer"}, "expiresIn": {"type": "integer", "example": 86400}}
        },
        "Product": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string", "example": "90.50"},
                "imgUrl": {"type": "string"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/Category"}}
            }
        },
        "ProductMin": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "price": {"type": "string"}, "imgUrl": {"type": "string"}}
        },
        "ProductPage": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/ProductMin"}},
                "totalElements": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "number": {"type": "integer"},
                "size": {"type": "integer"}
            }
        },
        "ProductPayload": {
            "type": "object",
            "required": ["name", "description", "price", "categories"],
            "properties": {
                "name": {"type": "string", "minLength": 3, "maxLength": 80},
                "description": {"type": "string", "minLength": 10},
                "price": {"type": "string", "example": "199.90", "description": "positive, at most 2 decimal places, at most 9999999999.99"},
                "imgUrl": {"type": "string"},
                "categories": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/CategoryRef"}}
            }
        },
        "CreateOrderItem": {
            "type": "object",
            "properties": {"productId": {"type": "integer", "example": 1}, "quantity": {"type": "integer", "minimum": 1, "maximum": 2147483647, "example": 2}}
        },
        "CreateOrderRequest": {
            "type": "object",
            "required": ["items"],
            "properties": {"items": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/CreateOrderItem"}}}
        },
        "OrderItem": {
            "type": "object",
            "properties": {
                "productId": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "quantity": {"type": "integer"},
                "imgUrl": {"type": "string"},
                "subTotal": {"type": "string"}
            }
        },
        "Order": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "moment": {"type": "string"},
                "status": {"type": "string", "enum": ["WAITING_PAYMENT", "PAID", "SHIPPED", "DELIVERED", "CANCELED"]},
                "client": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}},
                "payment": {"type": "object", "properties": {"id": {"type": "integer"}, "moment": {"type": "string"}}},
                "items": {"type": "array", "items": {"$ref": "#/definitions/OrderItem"}},
                "total": {"type": "string"}
            }
        },
        "Profile": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "birthDate": {"type": "string", "example": "2001-07-25"},
                "roles": {"type": "array", "items": {"type": "string"}}
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
	Title:            "Commerce API",
	Description:      "Products, orders and users for a small web shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
