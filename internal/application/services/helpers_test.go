package services_test

import (
	"io"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	impl "github.com/avatarctic/hr-gateway/internal/application/services"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/apicache"
)

var ttl = impl.DefaultTTLPolicy()

func newStore(t *testing.T) (*apicache.Store, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	return apicache.NewStore(apicache.WithClock(mock)), mock
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
