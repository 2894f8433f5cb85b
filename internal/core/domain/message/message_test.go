package message_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avatarctic/hr-gateway/internal/core/domain/message"
)

func TestSendRequestValidate(t *testing.T) {
	assert.NoError(t, (&message.SendRequest{Body: "see you at 9"}).Validate())
	assert.ErrorIs(t, (&message.SendRequest{Body: " \n\t"}).Validate(), message.ErrEmptyBody)

	// the limit counts characters, not bytes
	assert.NoError(t, (&message.SendRequest{Body: strings.Repeat("é", message.MaxBodyLength)}).Validate())
	assert.ErrorIs(t, (&message.SendRequest{Body: strings.Repeat("a", message.MaxBodyLength+1)}).Validate(), message.ErrBodyTooLong)
}
