// Package docs holds the OpenAPI document served by the Swagger UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/master-plans/": {
            "get": {
                "tags": ["master-plans"],
                "summary": "List all registered documents, newest first",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listResponse"}}
                }
            },
            "post": {
                "tags": ["master-plans"],
                "summary": "Register a new master-plan document",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateMasterPlanRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.MasterPlan"}},
                    "400": {"description": "Validation failure or duplicate doc_id"}
                }
            }
        },
        "/api/master-plans/check-doc-id/{doc_id}": {
            "get": {
                "tags": ["master-plans"],
                "summary": "Check whether a doc_id is already registered",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "doc_id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/master-plans/{id}": {
            "get": {
                "tags": ["master-plans"],
                "summary": "Get one document by surrogate id",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MasterPlan"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/master-plans/upload": {
            "post": {
                "tags": ["files"],
                "summary": "Upload a document attachment (max 10 MiB, office/pdf/text types)",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "document", "in": "formData", "type": "file", "required": true},
                    {"name": "doc_id", "in": "formData", "type": "string", "required": true},
                    {"name": "doc_type", "in": "formData", "type": "string", "required": true},
                    {"name": "revision_no", "in": "formData", "type": "string", "required": true}
                ],
                "responses": {
                    "201": {"description": "Stored", "schema": {"$ref": "#/definitions/service.UploadResult"}},
                    "400": {"description": "Missing fields, oversize, or disallowed type"}
                }
            },
            "delete": {
                "tags": ["files"],
                "summary": "Delete an uploaded file by storage path",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.DeleteFileRequest"}}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "File not found"}
                }
            }
        },
        "/api/master-plans/download/{doc_id}/{fileName}": {
            "get": {
                "tags": ["files"],
                "summary": "Download a stored attachment",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "doc_id", "in": "path", "type": "string", "required": true},
                    {"name": "fileName", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Binary stream"},
                    "404": {"description": "File not found"}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["ops"],
                "summary": "Readiness check including document store connectivity",
                "responses": {
                    "200": {"description": "Healthy"},
                    "503": {"description": "Dependency unavailable"}
                }
            }
        }
    },
    "definitions": {
        "handler.listResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.MasterPlan"}},
                "total": {"type": "integer"}
            }
        },
        "model.CreateMasterPlanRequest": {
            "type": "object",
            "properties": {
                "doc_id": {"type": "string"},
                "doc_type": {"type": "string"},
                "doc_title": {"type": "string"},
                "revision_no": {"type": "string"},
                "year": {"type": "integer"},
                "quarter": {"type": "string"},
                "owner": {"type": "string"},
                "status": {"type": "string"},
                "doc_status": {"type": "string"},
                "uploaded_file": {"type": "string"},
                "file_type": {"type": "string"},
                "file_size": {"type": "integer"},
                "storage_path": {"type": "string"},
                "download_url": {"type": "string"}
            }
        },
        "model.DeleteFileRequest": {
            "type": "object",
            "properties": {
                "filePath": {"type": "string"},
                "doc_id": {"type": "string"}
            }
        },
        "model.MasterPlan": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "doc_id": {"type": "string"},
                "doc_type": {"type": "string"},
                "doc_title": {"type": "string"},
                "revision_no": {"type": "string"},
                "year": {"type": "integer"},
                "quarter": {"type": "string"},
                "owner": {"type": "string"},
                "status": {"type": "string"},
                "doc_status": {"type": "string"},
                "is_uploaded": {"type": "boolean"},
                "uploaded_file": {"type": "string"},
                "file_type": {"type": "string"},
                "file_size": {"type": "integer"},
                "storage_path": {"type": "string"},
                "download_url": {"type": "string"},
                "uploaded_at": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "service.UploadResult": {
            "type": "object",
            "properties": {
                "fileName": {"type": "string"},
                "fileType": {"type": "string"},
                "fileSize": {"type": "integer"},
                "storagePath": {"type": "string"},
                "downloadUrl": {"type": "string"},
                "uploadedAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Master Plan Registry API",
	Description:      "Document registration service for master-plan documents with file attachments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
