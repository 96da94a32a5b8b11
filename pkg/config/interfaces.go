package config

// Validator is implemented by configurations that check their own
// required fields after loading.
type Validator interface {
	Validate() error
}
