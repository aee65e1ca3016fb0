package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("object abc: %w", ErrAlreadyExists)
	assert.True(t, errors.Is(wrapped, ErrAlreadyExists))
	assert.False(t, errors.Is(wrapped, ErrorNotFound))

	wrapped = fmt.Errorf("db error: %w", ErrorNotFound)
	assert.True(t, errors.Is(wrapped, ErrorNotFound))
}

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{ErrorNotFound, ErrAlreadyExists, ErrorInvalidParams, ErrorUnknownLogger}
	for i := range all {
		for j := range all {
			if i != j {
				assert.NotErrorIs(t, all[i], all[j])
			}
		}
	}
}
