package server

import (
	"net"
	"strconv"

	"github.com/samber/lo"
)

const (
	fallbackStart = 8001
	fallbackCount = 10
)

// FreePort resolves a usable loopback port. A preferred port of 0 asks the
// OS for an ephemeral one. Otherwise the preferred port is probed first,
// then the fixed fallback range 8001-8010 in order; 0 is returned when
// nothing binds, delegating the choice back to the OS at listen time.
//
// The probe socket is closed before the caller binds, so the port can in
// theory be grabbed in between. Acceptable for a loopback dev tool.
func FreePort(preferred int) int {
	if preferred == 0 {
		if port, ok := probe(0); ok {
			return port
		}
		return 0
	}

	candidates := append([]int{preferred}, lo.RangeFrom(fallbackStart, fallbackCount)...)
	for _, candidate := range candidates {
		if port, ok := probe(candidate); ok {
			return port
		}
	}
	return 0
}

// probe binds a throwaway listener to the port on loopback and reports the
// port the OS handed back. A bind failure means "taken, try the next one".
func probe(port int) (int, bool) {
	l, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		return 0, false
	}
	bound := l.Addr().(*net.TCPAddr).Port
	_ = l.Close()
	return bound, true
}
