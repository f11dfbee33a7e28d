package api

const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Envelope wraps every response body.
// @Description Standard response envelope
type Envelope struct {
	Status  string `json:"status" example:"SUCCESS"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorData is the data member of an error envelope.
// @Description Error details
type ErrorData struct {
	Code   int               `json:"code" example:"404"`
	Error  string            `json:"error" example:"NotFoundError"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ProductEnvelope documents a single-product response for swagger.
type ProductEnvelope struct {
	Status  string          `json:"status" example:"SUCCESS"`
	Message string          `json:"message"`
	Data    ProductResponse `json:"data"`
}

// ProductListEnvelope documents a product list response for swagger.
type ProductListEnvelope struct {
	Status  string            `json:"status" example:"SUCCESS"`
	Message string            `json:"message"`
	Data    []ProductResponse `json:"data"`
}

// ErrorEnvelope documents an error response for swagger.
type ErrorEnvelope struct {
	Status  string    `json:"status" example:"ERROR"`
	Message string    `json:"message"`
	Data    ErrorData `json:"data"`
}

func NewEnvelope(message string, data any) *Envelope {
	return &Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

func NewErrorEnvelope(httpStatusCode int, kind, message string, fields map[string]string) *Envelope {
	return &Envelope{
		Status:  StatusError,
		Message: message,
		Data: ErrorData{
			Code:   httpStatusCode,
			Error:  kind,
			Fields: fields,
		},
	}
}
