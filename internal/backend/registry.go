package backend

import (
	"sync"
	"unsafe"
)

// The registry maps opaque handles to Go state so that C callbacks can reach
// it without storing Go pointers in C memory. Contexts register a *ctxState
// for error/notice capture; STRtree queries register a *queryState for the
// duration of one native call.
var (
	regMu   sync.Mutex
	regNext uintptr = 1
	reg             = map[uintptr]any{}
)

func regPut(v any) (uintptr, unsafe.Pointer) {
	regMu.Lock()
	h := regNext
	regNext++
	reg[h] = v
	regMu.Unlock()
	return h, unsafe.Pointer(h)
}

func regGet(ptr unsafe.Pointer) (any, bool) {
	regMu.Lock()
	v, ok := reg[uintptr(ptr)]
	regMu.Unlock()
	return v, ok
}

func regDel(h uintptr) {
	regMu.Lock()
	delete(reg, h)
	regMu.Unlock()
}

// ctxState holds the messages captured by the handlers registered on one GEOS
// context. GEOS invokes the handlers synchronously during native calls, but
// the registry is shared, so access stays locked.
type ctxState struct {
	mu        sync.Mutex
	lastError string
	notice    func(string)
}

func (s *ctxState) setError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

// takeError returns the last captured error message and clears it.
func (s *ctxState) takeError() string {
	s.mu.Lock()
	msg := s.lastError
	s.lastError = ""
	s.mu.Unlock()
	return msg
}

func (s *ctxState) setNotice(fn func(string)) {
	s.mu.Lock()
	s.notice = fn
	s.mu.Unlock()
}

func (s *ctxState) notify(msg string) {
	s.mu.Lock()
	fn := s.notice
	s.mu.Unlock()
	if fn != nil {
		fn(msg)
	}
}

func ctxStateFor(state uintptr) (*ctxState, bool) {
	regMu.Lock()
	v, ok := reg[state]
	regMu.Unlock()
	if !ok {
		return nil, false
	}
	s, ok := v.(*ctxState)
	return s, ok
}

// ContextLastError returns and clears the last error message recorded by the
// context identified by state. It returns an empty string when nothing was
// recorded since the previous call.
func ContextLastError(state uintptr) string {
	s, ok := ctxStateFor(state)
	if !ok {
		return ""
	}
	return s.takeError()
}

// ContextSetNoticeFunc installs fn as the receiver for GEOS notice messages on
// the context identified by state. A nil fn silences notices.
func ContextSetNoticeFunc(state uintptr, fn func(string)) {
	s, ok := ctxStateFor(state)
	if !ok {
		return
	}
	s.setNotice(fn)
}

// queryState accumulates the item handles reported by one STRtree query.
type queryState struct {
	hits []uintptr
}
