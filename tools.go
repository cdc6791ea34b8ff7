//go:build tools

package tools

// Tool dependencies that are not imported by the binaries. goose is tracked
// with a tool directive in go.mod; mocks are generated with moq
// (go run github.com/matryer/moq, see the go:generate lines in tests).
import (
	_ "github.com/magefile/mage/mage"
)
