package server

// BatchExecutionParameter describes the batching hints exposed on
// /execution-parameters. Key casing follows the serving protocol.
type BatchExecutionParameter struct {
	MaxConcurrentTransforms int    `json:"MaxConcurrentTransforms"`
	BatchStrategy           string `json:"BatchStrategy"`
	MaxPayloadInMB          int    `json:"MaxPayloadInMB"`
}
