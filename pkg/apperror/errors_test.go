package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppErrorUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("saving order: %w", ErrNoSession)

	got := GetAppError(wrapped)

	assert.Equal(t, http.StatusUnauthorized, got.Code)
	assert.Equal(t, ErrNoSession.Message, got.Message)
}

func TestGetAppErrorDefaultsToInternal(t *testing.T) {
	got := GetAppError(errors.New("disk full"))

	assert.Equal(t, http.StatusInternalServerError, got.Code)
	assert.Equal(t, "disk full", got.Message)
}

func TestOrderDeletionErrorExposesCause(t *testing.T) {
	cause := errors.New("items table locked")
	err := NewOrderDeletionError(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Contains(t, err.Message, "Failed to delete order")
	assert.ErrorIs(t, err, cause)
}

func TestDuplicateClientErrorNamesFieldAndClient(t *testing.T) {
	err := NewDuplicateClientError("phone", "Asha Verma")

	assert.Equal(t, http.StatusConflict, err.Code)
	assert.Contains(t, err.Message, "phone")
	assert.Contains(t, err.Message, "Asha Verma")
	if assert.Len(t, err.Errors, 1) {
		assert.Equal(t, "phone", err.Errors[0].Field)
	}
}

func TestExcessPaymentErrorFormatsAmounts(t *testing.T) {
	err := NewExcessPaymentError(700, 653)

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Contains(t, err.Message, "700.00")
	assert.Contains(t, err.Message, "653.00")
}
