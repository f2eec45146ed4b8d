// Package docs registers the OpenAPI document served at /swagger/*.
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
        "/api/auth/signup": {"post": {"tags": ["auth"], "summary": "Sign up", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/api/auth/signin": {"post": {"tags": ["auth"], "summary": "Sign in", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "404": {"description": "Not Found"}}}},
        "/api/auth/google": {"post": {"tags": ["auth"], "summary": "Google sign in", "responses": {"200": {"description": "OK"}, "201": {"description": "Created"}}}},
        "/api/auth/logout": {"post": {"tags": ["auth"], "summary": "Log out", "responses": {"200": {"description": "OK"}}}},
        "/api/user/{id}": {"get": {"tags": ["user"], "summary": "Get user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/user/update/{id}": {"post": {"tags": ["user"], "summary": "Update own profile", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/api/user/delete/{id}": {"delete": {"tags": ["user"], "summary": "Delete own account", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/api/user/listings/{id}": {"get": {"tags": ["user"], "summary": "List own listings", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/listing/create": {"post": {"tags": ["listing"], "summary": "Create listing", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/api/listing/update/{id}": {"post": {"tags": ["listing"], "summary": "Update listing", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/api/listing/delete/{id}": {"delete": {"tags": ["listing"], "summary": "Delete listing", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/api/listing/get/{id}": {"get": {"tags": ["listing"], "summary": "Get listing", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/listing/get": {"get": {"tags": ["listing"], "summary": "Search listings", "responses": {"200": {"description": "OK"}}}},
        "/api/listing/user/{id}": {"get": {"tags": ["listing"], "summary": "List a user's listings", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/wishlist": {"get": {"tags": ["wishlist"], "summary": "Get wishlist", "responses": {"200": {"description": "OK"}}}},
        "/api/wishlist/{id}": {"put": {"tags": ["wishlist"], "summary": "Toggle wishlist entry", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/visit": {"get": {"tags": ["visit"], "summary": "List visit requests", "responses": {"200": {"description": "OK"}}}},
        "/api/visit/create": {"post": {"tags": ["visit"], "summary": "Request a visit", "responses": {"201": {"description": "Created"}}}},
        "/api/visit/{id}": {"put": {"tags": ["visit"], "summary": "Decide visit request", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/api/alerts": {"get": {"tags": ["alerts"], "summary": "List alerts", "responses": {"200": {"description": "OK"}}}},
        "/api/alerts/{alertId}/read": {"put": {"tags": ["alerts"], "summary": "Mark alert read", "parameters": [{"type": "string", "name": "alertId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/contact/send": {"post": {"tags": ["contact"], "summary": "Contact staff", "responses": {"201": {"description": "Created"}}}},
        "/api/contact/my": {"get": {"tags": ["contact"], "summary": "My messages", "responses": {"200": {"description": "OK"}}}},
        "/api/contact/all": {"get": {"tags": ["contact"], "summary": "All messages", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/api/insights": {"get": {"tags": ["insights"], "summary": "Market insights", "responses": {"200": {"description": "OK"}}}},
        "/api/admin/users": {"get": {"tags": ["admin"], "summary": "List users", "responses": {"200": {"description": "OK"}}}},
        "/api/admin/listings": {"get": {"tags": ["admin"], "summary": "List listings", "responses": {"200": {"description": "OK"}}}},
        "/api/admin/delete/{id}": {"delete": {"tags": ["admin"], "summary": "Delete user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/api/admin/role/{id}": {"put": {"tags": ["admin"], "summary": "Change user role", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}},
        "/api/admin/logs": {"get": {"tags": ["admin"], "summary": "Audit log", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PropertyHub Marketplace API",
	Description:      "Listings, visits, wishlists, alerts and moderation for the PropertyHub marketplace.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
