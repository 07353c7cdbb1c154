package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// BusinessRequest represents the create business request body.
type BusinessRequest struct {
	Name      string `json:"name" example:"Sharma Traders"`
	Address   string `json:"address" example:"12 MG Road, Pune"`
	StateCode string `json:"state_code" example:"27"`
	Phone     string `json:"phone" example:"9876543210"`
	Email     string `json:"email" example:"accounts@sharmatraders.in"`
	GSTIN     string `json:"gstin" example:"27AAPFU0939F1ZV"`
}

// UpdateBusinessRequest represents the update business request body.
type UpdateBusinessRequest struct {
	Name      *string `json:"name" example:"Sharma Traders LLP"`
	Address   *string `json:"address" example:"14 MG Road, Pune"`
	StateCode *string `json:"state_code" example:"27"`
	Phone     *string `json:"phone" example:"9876543210"`
	Email     *string `json:"email" example:"billing@sharmatraders.in"`
	GSTIN     *string `json:"gstin" example:"27AAPFU0939F1ZV"`
}

// CustomerRequest represents the create customer request body.
type CustomerRequest struct {
	Name      string `json:"name" example:"Ravi Kumar"`
	Phone     string `json:"phone" example:"9123456780"`
	Email     string `json:"email" example:"ravi@example.com"`
	Address   string `json:"address" example:"4 Brigade Road"`
	City      string `json:"city" example:"Bengaluru"`
	StateCode string `json:"state_code" example:"29"`
	GSTIN     string `json:"gstin" example:"29AABCU9603R1ZM"`
}

// UpdateCustomerRequest represents the update customer request body.
type UpdateCustomerRequest struct {
	Name      *string `json:"name" example:"Ravi Kumar"`
	Phone     *string `json:"phone" example:"9123456780"`
	Email     *string `json:"email" example:"ravi.k@example.com"`
	Address   *string `json:"address" example:"4 Brigade Road"`
	City      *string `json:"city" example:"Bengaluru"`
	StateCode *string `json:"state_code" example:"29"`
	GSTIN     *string `json:"gstin" example:"29AABCU9603R1ZM"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// DownloadURLResponse carries a presigned asset URL.
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url" example:"https://gstbill-assets.s3.amazonaws.com/...?X-Amz-Signature=..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
