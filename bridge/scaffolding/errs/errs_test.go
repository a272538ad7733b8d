package errs_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
)

func TestErrorEncode(t *testing.T) {
	e := errs.Newf(errs.InvalidArgument, "bad %s", "input").WithFields(map[string]string{"title": "is required"})

	if e.HTTPStatus() != http.StatusBadRequest {
		t.Errorf("status = %d", e.HTTPStatus())
	}
	if !strings.HasSuffix(e.FuncName, "TestErrorEncode") {
		t.Errorf("func name = %q", e.FuncName)
	}

	data, ct, err := e.Encode()
	if err != nil || ct != "application/json" {
		t.Fatalf("encode: %v %q", err, ct)
	}
	var got map[string]any
	json.Unmarshal(data, &got)
	if got["code"] != "invalid_argument" || got["message"] != "bad input" {
		t.Errorf("payload = %s", data)
	}
	if _, ok := got["FuncName"]; ok {
		t.Errorf("caller leaked into payload: %s", data)
	}
}

func TestIsError(t *testing.T) {
	wrapped := fmt.Errorf("ctx: %w", errs.New(errs.NotFound, errors.New("gone")))
	if !errs.IsError(wrapped) {
		t.Error("wrapped error not recognised")
	}
	if errs.IsError(errors.New("plain")) {
		t.Error("plain error recognised")
	}
}
