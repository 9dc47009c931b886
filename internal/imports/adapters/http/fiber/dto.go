package fiber

type ImportResponse struct {
	BatchID    string `json:"batch_id" example:"0b6c1f0e-6a43-4b1e-9a55-0c1f0f9f3b7a"`
	Created    int    `json:"created"`
	Duplicates int    `json:"duplicates"`
	Skipped    int    `json:"skipped"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_import"`
	Message string `json:"message,omitempty" example:"import body is empty"`
}
