package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeFinalizer struct{ called chan struct{} }

func (f *fakeFinalizer) Fini() { close(f.called) }

func TestGo_RecoversPanic(t *testing.T) {
	codes := make(chan int, 1)
	fin := &fakeFinalizer{called: make(chan struct{})}

	crashMu.Lock()
	prevExit := crashExit
	crashExit = func(code int) { codes <- code }
	crashMu.Unlock()
	RegisterFinalizer(fin)
	t.Cleanup(func() {
		crashMu.Lock()
		crashExit = prevExit
		crashMu.Unlock()
		RegisterFinalizer(nil)
	})

	Go(func() { panic("boom") })

	select {
	case code := <-codes:
		assert.Equal(t, 1, code)
	case <-time.After(time.Second):
		t.Fatal("crash handler not invoked")
	}
	select {
	case <-fin.called:
	default:
		t.Fatal("finalizer not invoked")
	}
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	HandleCrash(nil)
}
