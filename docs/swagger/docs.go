// Package swagger holds the generated OpenAPI document served at /swagger/*.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@meditrack.local"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register an operator account",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/track_order": {
            "get": {
                "tags": ["tracking"],
                "summary": "Track an order",
                "parameters": [{"name": "orderId", "in": "query", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/track_order/{orderId}/events": {
            "post": {
                "tags": ["tracking"],
                "summary": "Append a tracking event",
                "parameters": [{"name": "orderId", "in": "path", "type": "string", "required": true}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/verify_certification": {
            "post": {
                "tags": ["verification"],
                "summary": "Verify a certification code",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/inventory": {
            "get": {
                "tags": ["inventory"],
                "summary": "List inventory items",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["inventory"],
                "summary": "Add an inventory item",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/inventory/{id}": {
            "put": {
                "tags": ["inventory"],
                "summary": "Update an inventory item",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["inventory"],
                "summary": "Delete an inventory item",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/sales_demand": {
            "get": {
                "tags": ["sales"],
                "summary": "Sales demand series",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/book_training": {
            "post": {
                "tags": ["training"],
                "summary": "Book a training session",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/submit_feedback": {
            "post": {
                "tags": ["feedback"],
                "summary": "Submit feedback",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/chatbot": {
            "post": {
                "tags": ["chatbot"],
                "summary": "Ask the support chatbot",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MediTrack API",
	Description:      "Pharmaceutical distribution operations API: shipment tracking, certification verification, inventory, sales demand, training and feedback.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
