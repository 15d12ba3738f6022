package mocks

import (
	"net"

	"github.com/stretchr/testify/mock"
)

// SecurityLayer is a mock implementation of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

func (m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	ret := m.Called(protocol, addr)

	var r0 net.Listener
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(net.Listener)
	}
	return r0, ret.Error(1)
}
