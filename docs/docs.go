// Package docs registers the OpenAPI document served under /swagger. Keep it
// in step with the @Router annotations in internal/handler.
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
        "/businesses/{business_id}/assets": {
            "post": {
                "summary": "Upload a business asset",
                "description": "Upload a logo, signature or payment QR code (JPG or PNG).",
                "tags": [
                    "assets"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "type": "file",
                        "required": true,
                        "description": "Image to upload (JPG or PNG)"
                    },
                    {
                        "name": "asset_type",
                        "in": "formData",
                        "type": "string",
                        "required": true,
                        "description": "LOGO, SIGNATURE or QR"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Asset uploaded successfully",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Missing file or unsupported type",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "413": {
                        "description": "File too large",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "500": {
                        "description": "Upload failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "get": {
                "summary": "List business assets",
                "tags": [
                    "assets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/assets/{id}/download": {
            "get": {
                "summary": "Get a presigned download URL",
                "tags": [
                    "assets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Asset ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Asset not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/assets/{id}": {
            "delete": {
                "summary": "Delete a business asset",
                "tags": [
                    "assets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Asset ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Asset not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses": {
            "post": {
                "summary": "Create a business profile",
                "description": "Registers the seller. Name, address, state code and a 10-digit phone are required; an optional GSTIN must start with the state code.",
                "tags": [
                    "businesses"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Business profile",
                        "schema": {
                            "$ref": "#/definitions/BusinessRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}": {
            "get": {
                "summary": "Get a business profile",
                "tags": [
                    "businesses"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Business not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update a business profile",
                "description": "Only the fields present in the body are changed.",
                "tags": [
                    "businesses"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Fields to change",
                        "schema": {
                            "$ref": "#/definitions/UpdateBusinessRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Business not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/customers": {
            "post": {
                "summary": "Create a customer",
                "tags": [
                    "customers"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Customer",
                        "schema": {
                            "$ref": "#/definitions/CustomerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "get": {
                "summary": "List customers",
                "tags": [
                    "customers"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "required": false,
                        "description": "Offset",
                        "default": 0
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "required": false,
                        "description": "Limit",
                        "default": 20
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/customers/search": {
            "get": {
                "summary": "Search customers by name",
                "description": "Case-insensitive substring match on the customer name.",
                "tags": [
                    "customers"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "Name fragment"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "required": false,
                        "description": "Offset",
                        "default": 0
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "required": false,
                        "description": "Limit",
                        "default": 20
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/customers/{id}": {
            "get": {
                "summary": "Get a customer",
                "tags": [
                    "customers"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Customer ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Customer not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update a customer",
                "tags": [
                    "customers"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Customer ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Fields to change",
                        "schema": {
                            "$ref": "#/definitions/UpdateCustomerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Customer not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete a customer",
                "tags": [
                    "customers"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Customer ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Customer not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "409": {
                        "description": "Customer has invoices",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "summary": "Liveness probe",
                "tags": [
                    "health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "summary": "Readiness probe",
                "description": "Checks the database and the cache",
                "tags": [
                    "health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/invoices/preview": {
            "post": {
                "summary": "Compute invoice totals without saving",
                "description": "Runs the totals engine on a draft and reports validation problems alongside the rounded totals. Nothing is persisted.",
                "tags": [
                    "invoices"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Invoice draft",
                        "schema": {
                            "$ref": "#/definitions/service.InvoiceDraft"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Business not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/invoices": {
            "post": {
                "summary": "Create an invoice",
                "description": "Validates the draft, computes and rounds the totals, assigns an invoice number and stores the snapshot with status DUE.",
                "tags": [
                    "invoices"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Invoice draft",
                        "schema": {
                            "$ref": "#/definitions/service.InvoiceDraft"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Business not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "get": {
                "summary": "List invoices",
                "tags": [
                    "invoices"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "required": false,
                        "description": "Offset",
                        "default": 0
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "required": false,
                        "description": "Limit",
                        "default": 20
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/invoices/{id}": {
            "get": {
                "summary": "Get an invoice with its items",
                "tags": [
                    "invoices"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Invoice ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update an invoice",
                "description": "Recomputes the totals. Recorded payments are kept; a grand total below the amount already paid is rejected.",
                "tags": [
                    "invoices"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Invoice ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Invoice draft",
                        "schema": {
                            "$ref": "#/definitions/service.InvoiceDraft"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "409": {
                        "description": "Total below paid amount",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete an invoice and its payments",
                "tags": [
                    "invoices"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Invoice ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/invoices/{id}/view": {
            "get": {
                "summary": "Get the presentation payload of an invoice",
                "description": "Returns the stored snapshot with business, customer, the effective template and presigned asset URLs.",
                "tags": [
                    "invoices"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Invoice ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/invoices/{id}/email": {
            "post": {
                "summary": "Email an invoice summary",
                "description": "Sends to the given address, or to the customer's email when none is given.",
                "tags": [
                    "invoices"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Invoice ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "description": "Recipient and message",
                        "schema": {
                            "$ref": "#/definitions/service.SendInvoiceInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "No recipient",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/invoices/export": {
            "get": {
                "summary": "Export the invoice register",
                "description": "Downloads every invoice of the business as CSV (UTF-8 with BOM) or XLSX.",
                "tags": [
                    "invoices"
                ],
                "produces": [
                    "text/csv",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "csv or xlsx",
                        "default": "csv"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/invoices/{id}/payments": {
            "post": {
                "summary": "Record a payment",
                "description": "The amount must be positive and not exceed the invoice's due amount. Returns the payment and the invoice's new paid, due and status.",
                "tags": [
                    "payments"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Invoice ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Payment",
                        "schema": {
                            "$ref": "#/definitions/service.AddPaymentInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "422": {
                        "description": "Payment exceeds due amount",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "get": {
                "summary": "List payments of an invoice",
                "tags": [
                    "payments"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Invoice ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/payments/{id}": {
            "get": {
                "summary": "Get a payment",
                "tags": [
                    "payments"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Payment ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete a payment",
                "description": "Removes the payment and re-derives the invoice's paid, due and status.",
                "tags": [
                    "payments"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Payment ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Payment not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/templates/system": {
            "get": {
                "summary": "List system templates",
                "tags": [
                    "templates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    }
                }
            },
            "put": {
                "summary": "Select a system template",
                "description": "Stores the business's system template and accent color. The template's usage count grows only when the selection changes.",
                "tags": [
                    "templates"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Template and color",
                        "schema": {
                            "$ref": "#/definitions/service.AssignTemplateInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Invalid color",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Template not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/templates/system/settings": {
            "get": {
                "summary": "Get the selected system template",
                "tags": [
                    "templates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "No template selected",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/templates": {
            "post": {
                "summary": "Create a custom template",
                "tags": [
                    "templates"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Template",
                        "schema": {
                            "$ref": "#/definitions/service.CreateTemplateInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "409": {
                        "description": "Duplicate name",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "get": {
                "summary": "List custom templates",
                "tags": [
                    "templates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/templates/default": {
            "get": {
                "summary": "Get the default custom template",
                "tags": [
                    "templates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "No default template",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        },
        "/businesses/{business_id}/templates/{id}": {
            "get": {
                "summary": "Get a custom template",
                "tags": [
                    "templates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Template ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Template not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update a custom template",
                "description": "Making a template the default clears the flag on the business's other templates.",
                "tags": [
                    "templates"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Template ID"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Fields to change",
                        "schema": {
                            "$ref": "#/definitions/service.UpdateTemplateInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Template not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Delete a custom template",
                "tags": [
                    "templates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "business_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Business ID"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Template ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Template not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "BusinessRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "state_code": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "gstin": {
                    "type": "string"
                }
            }
        },
        "CustomerRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state_code": {
                    "type": "string"
                },
                "gstin": {
                    "type": "string"
                }
            }
        },
        "UpdateBusinessRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "state_code": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "gstin": {
                    "type": "string"
                }
            }
        },
        "UpdateCustomerRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state_code": {
                    "type": "string"
                },
                "gstin": {
                    "type": "string"
                }
            }
        },
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "details": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "field": {
                                "type": "string"
                            },
                            "message": {
                                "type": "string"
                            },
                            "rule": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": false
                },
                "error": {
                    "$ref": "#/definitions/handler.APIError"
                }
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "ok"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.PagMeta": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                }
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "data": {},
                "meta": {
                    "$ref": "#/definitions/handler.PagMeta"
                }
            }
        },
        "service.AddPaymentInput": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "method": {
                    "type": "string"
                },
                "reference_id": {
                    "type": "string"
                },
                "bank_name": {
                    "type": "string"
                },
                "account_details": {
                    "type": "string"
                },
                "payment_date": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "service.AssignTemplateInput": {
            "type": "object",
            "properties": {
                "template_id": {
                    "type": "string"
                },
                "color_hex": {
                    "type": "string"
                }
            }
        },
        "service.CreateTemplateInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "config": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "boolean"
                    }
                },
                "is_default": {
                    "type": "boolean"
                }
            }
        },
        "service.InvoiceDraft": {
            "type": "object",
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "template_id": {
                    "type": "string"
                },
                "invoice_date": {
                    "type": "string"
                },
                "due_date": {
                    "type": "string"
                },
                "jurisdiction": {
                    "type": "string"
                },
                "discount_mode": {
                    "type": "string"
                },
                "overall_discount": {
                    "type": "string"
                },
                "expected_grand_total": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "name": {
                                "type": "string"
                            },
                            "description": {
                                "type": "string"
                            },
                            "hsn_code": {
                                "type": "string"
                            },
                            "quantity": {
                                "type": "string"
                            },
                            "unit_price": {
                                "type": "string"
                            },
                            "discount": {
                                "type": "string"
                            },
                            "tax_rate": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "service.SendInvoiceInput": {
            "type": "object",
            "properties": {
                "to": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "service.UpdateTemplateInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "config": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "boolean"
                    }
                },
                "is_default": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "GST Bill API",
	Description:      "Invoicing backend for small businesses: customers, GST invoices, payments and templates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
