package stacktrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalPaths(t *testing.T) {
	stack := []byte(`goroutine 1 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:26 +0x5e
github.com/shandysiswandi/contactrelay/internal/pkg/router.middlewareRecoverer.func1.1()
	/src/internal/pkg/router/middleware_recover.go:27 +0x6a
panic({0x1, 0x2})
	/usr/local/go/src/runtime/panic.go:791 +0x132
github.com/shandysiswandi/contactrelay/internal/contact/usecase.(*Usecase).Submit(...)
	/src/internal/contact/usecase/send.go:120
`)

	assert.Equal(t, []string{
		"internal/pkg/router/middleware_recover.go:27",
		"internal/contact/usecase/send.go:120",
	}, InternalPaths(stack))

	assert.Empty(t, InternalPaths([]byte("goroutine 1 [running]:\nmain.main()\n\t/src/main.go:10 +0x1\n")))
}
