package response

type ConfigResponse struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}
