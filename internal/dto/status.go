package dto

// StatusResponse is the GET / payload reporting that the API is up.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}
