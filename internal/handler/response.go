package handler

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status             string   `json:"status"`
	ModelLoaded        bool     `json:"model_loaded"`
	ModelID            string   `json:"model_id,omitempty"`
	LexiconVersion     string   `json:"lexicon_version"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

type EndpointUsage struct {
	Method string            `json:"method"`
	URL    string            `json:"url"`
	Body   map[string]string `json:"body"`
}

type DocsResponse struct {
	Message   string                   `json:"message"`
	Version   string                   `json:"version"`
	Endpoints map[string]string        `json:"endpoints"`
	Usage     map[string]EndpointUsage `json:"usage"`
}
