package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{
		Message: message,
	}
}

type CountResponse struct {
	Count int `json:"count"`
}

type RevalidateResponse struct {
	Message string `json:"message"`
	Purged  int64  `json:"purged"`
}
