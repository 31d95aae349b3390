package config

import "fmt"

// EnvError reports an environment variable that is set to an unusable value.
type EnvError struct {
	Key string
	Err error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("environment variable %s must be an integer: %v", e.Key, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}
