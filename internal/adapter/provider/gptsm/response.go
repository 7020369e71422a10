package gptsm

// apiRequest is the body of POST /process-paragraph.
type apiRequest struct {
	Text string `json:"text"`
}

// apiResponse is the success body of POST /process-paragraph.
type apiResponse struct {
	Words []apiWord `json:"words"`
}

type apiWord struct {
	Word       string `json:"word"`
	Importance *int   `json:"importance"`
}

// apiError is the body the sidecar sends with non-2xx responses.
type apiError struct {
	Error string `json:"error"`
}
