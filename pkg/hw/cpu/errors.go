package cpu

import "fmt"

func makeError(err error, message string, args ...any) error {
	return fmt.Errorf("%w: "+message, append([]any{err}, args...)...)
}
