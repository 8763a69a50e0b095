// Package docs registers the swagger document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {"get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/bars": {
            "get": {"tags": ["bars"], "summary": "List bars", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["bars"], "summary": "Create bar", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/bars/{id}": {
            "get": {"tags": ["bars"], "summary": "Get bar", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["bars"], "summary": "Update bar", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["bars"], "summary": "Delete bar", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/categories": {
            "get": {"tags": ["categories"], "summary": "List categories", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["categories"], "summary": "Create category", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/categories/{id}": {
            "put": {"tags": ["categories"], "summary": "Update category", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["categories"], "summary": "Delete category", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/categories/{id}/subcategories": {
            "get": {"tags": ["subcategories"], "summary": "Load subcategory quick edit", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["subcategories"], "summary": "Save subcategory quick edit", "responses": {"200": {"description": "OK"}, "207": {"description": "Multi-Status"}, "400": {"description": "Rejected edit"}}}
        },
        "/api/v1/items": {
            "get": {"tags": ["items"], "summary": "List menu items", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["items"], "summary": "Create menu item", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/items/{id}": {
            "get": {"tags": ["items"], "summary": "Get menu item", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["items"], "summary": "Update menu item", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["items"], "summary": "Delete menu item", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/items/{id}/toggle-visibility": {"post": {"tags": ["items"], "summary": "Toggle item visibility", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/items/bulk-delete": {"post": {"tags": ["items"], "summary": "Bulk delete items", "responses": {"200": {"description": "OK"}, "207": {"description": "Multi-Status"}}}},
        "/api/v1/items/bulk-visibility": {"post": {"tags": ["items"], "summary": "Bulk set item visibility", "responses": {"200": {"description": "OK"}, "207": {"description": "Multi-Status"}}}},
        "/api/v1/trash": {"get": {"tags": ["trash"], "summary": "List trash", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/trash/{id}/restore": {"post": {"tags": ["trash"], "summary": "Restore from trash", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/seals": {"get": {"tags": ["seals"], "summary": "List seals", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/seals/wine/{attribute}": {"get": {"tags": ["seals"], "summary": "List wine attribute values", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/gallery": {
            "get": {"tags": ["gallery"], "summary": "List gallery images", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["gallery"], "summary": "Upload gallery image", "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/gallery/{id}": {"delete": {"tags": ["gallery"], "summary": "Delete gallery image", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/gallery/refresh": {"post": {"tags": ["gallery"], "summary": "Refresh image index", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/images/resolve": {
            "get": {"tags": ["gallery"], "summary": "Resolve one image reference", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["gallery"], "summary": "Resolve image references", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/events": {
            "get": {"tags": ["events"], "summary": "List events", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["events"], "summary": "Create event", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/events/{id}": {
            "get": {"tags": ["events"], "summary": "Get event", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["events"], "summary": "Update event", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["events"], "summary": "Delete event", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/events/upload-image": {"post": {"tags": ["events"], "summary": "Upload event image", "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}}}},
        "/api/v1/operational-details": {
            "get": {"tags": ["operational-details"], "summary": "List operational details", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["operational-details"], "summary": "Create operational detail", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/operational-details/{id}": {
            "put": {"tags": ["operational-details"], "summary": "Update operational detail", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["operational-details"], "summary": "Delete operational detail", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/promoter/events": {"get": {"tags": ["promoter"], "summary": "List promoter events", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/promoter/guests/preview": {"post": {"tags": ["promoter"], "summary": "Preview guest import", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/promoter/guest-lists/{id}/guests": {
            "get": {"tags": ["promoter"], "summary": "List guests", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["promoter"], "summary": "Add guest", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/promoter/guest-lists/{id}/import": {"post": {"tags": ["promoter"], "summary": "Import guests", "responses": {"200": {"description": "OK"}, "207": {"description": "Multi-Status"}}}},
        "/api/v1/promoter/guest-lists/{id}/summary": {"get": {"tags": ["promoter"], "summary": "Guest list summary", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/promoter/guest-lists/{id}/export": {"get": {"tags": ["promoter"], "summary": "Export guest list to Excel", "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/operations": {"get": {"tags": ["operations"], "summary": "List operation logs", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/operations/{documentId}": {"get": {"tags": ["operations"], "summary": "Get operation log", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Cardapio Admin Service API",
	Description:      "Backend for the bar, menu and event admin panel",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
