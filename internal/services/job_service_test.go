package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewJobNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^NP24-\d{6}$`)
	for i := 0; i < 10; i++ {
		assert.Regexp(t, pattern, NewJobNumber())
	}
}
