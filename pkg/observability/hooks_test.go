package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	v := NoopValidatorHooks{}
	v.OnRunStart(ctx, 3)
	v.OnPackageChecked(ctx, "requests", 150, true, time.Millisecond)
	v.OnPackageChecked(ctx, "missing", -1, false, time.Millisecond)
	v.OnRunComplete(ctx, 3, 1, time.Second, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "pypi.org", "/pypi/requests/json")
	h.OnResponse(ctx, "GET", "pypi.org", "/pypi/requests/json", 200, time.Second)
	h.OnError(ctx, "GET", "pypi.org", "/pypi/requests/json", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Validator().(NoopValidatorHooks); !ok {
		t.Error("Validator() should return NoopValidatorHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customValidator := &testValidatorHooks{}
	SetValidatorHooks(customValidator)
	if Validator() != customValidator {
		t.Error("SetValidatorHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Validator().(NoopValidatorHooks); !ok {
		t.Error("Reset() should restore NoopValidatorHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)
	SetHTTPHooks(nil)

	if HTTP() != custom {
		t.Error("SetHTTPHooks(nil) should be ignored")
	}

	Reset()
}

type testValidatorHooks struct{ NoopValidatorHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
