package rest

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}
