package web_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jrazmi/taskboard/infrastructure/web"
)

type traceStub struct{}

func (traceStub) SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, traceStub{}, "trace-1")
}

func (traceStub) GetTraceID(ctx context.Context) string {
	v, _ := ctx.Value(traceStub{}).(string)
	return v
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name   string
		resp   web.Encoder
		status int
		ctype  string
		body   string
		header [2]string
	}{
		{"nil", nil, http.StatusNoContent, "", "", [2]string{}},
		{"status", web.NewStatusResponse(http.StatusAccepted), http.StatusAccepted, "", "", [2]string{}},
		{"json", web.NewJSONResponse(map[string]int{"n": 1}), http.StatusOK, "application/json; charset=utf-8", `{"n":1}`, [2]string{}},
		{"json status", web.NewJSONResponseWithStatus("x", http.StatusCreated), http.StatusCreated, "application/json; charset=utf-8", `"x"`, [2]string{}},
		{"html", web.NewHTMLResponse([]byte("<p>hi</p>"), http.StatusUnprocessableEntity), http.StatusUnprocessableEntity, "text/html; charset=utf-8", "<p>hi</p>", [2]string{}},
		{"redirect", web.NewRedirect("/?status=Done"), http.StatusSeeOther, "", "", [2]string{"Location", "/?status=Done"}},
		{"error", web.NewError("boom"), http.StatusInternalServerError, "application/json", `{"error":"boom"}`, [2]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := web.Respond(context.Background(), rec, tt.resp); err != nil {
				t.Fatal(err)
			}
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if got := rec.Header().Get("Content-Type"); got != tt.ctype {
				t.Errorf("content type = %q, want %q", got, tt.ctype)
			}
			if rec.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", rec.Body, tt.body)
			}
			if tt.header[0] != "" && rec.Header().Get(tt.header[0]) != tt.header[1] {
				t.Errorf("%s = %q", tt.header[0], rec.Header().Get(tt.header[0]))
			}
		})
	}
}

func TestRespondCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := web.Respond(ctx, httptest.NewRecorder(), web.NewStatusResponse(http.StatusOK)); err == nil {
		t.Fatal("expected an error for a canceled request")
	}
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	mark := func(name string) web.Middleware {
		return func(next web.HandlerFunc) web.HandlerFunc {
			return func(ctx context.Context, r *http.Request) web.Encoder {
				order = append(order, name)
				return next(ctx, r)
			}
		}
	}

	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(mark("global")))
	api := wh.Group("/api/", mark("group"))
	api.GET("/ping", func(ctx context.Context, r *http.Request) web.Encoder {
		order = append(order, "handler")
		return web.NewJSONResponse("pong")
	}, mark("route"))

	rec := serve(wh, http.MethodGet, "/api/ping")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := strings.Join(order, ","); got != "global,group,route,handler" {
		t.Errorf("order = %s", got)
	}
	if api.Prefix() != "/api" {
		t.Errorf("prefix = %q", api.Prefix())
	}
}

func TestNestedGroupAndParams(t *testing.T) {
	wh := web.NewWebHandler(web.HandlerOptions{})
	v1 := wh.Group("/api").Group("/v1")
	v1.DELETE("/tasks/{task_id}", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewJSONResponse(web.Param(r, "task_id") + ":" + web.QueryParam(r, "q"))
	})

	rec := serve(wh, http.MethodDelete, "/api/v1/tasks/7?q=x")
	if rec.Body.String() != `"7:x"` {
		t.Errorf("body = %s", rec.Body)
	}
	if rec := serve(wh, http.MethodGet, "/api/v1/tasks/7"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want 405", rec.Code)
	}
}

func TestTelemetryAndWriter(t *testing.T) {
	wh := web.NewWebHandler(web.HandlerOptions{DefaultHeaders: map[string]string{"X-Frame-Options": "DENY"}},
		web.WithTelemetry(traceStub{}),
		web.WithDefaultHeaders(map[string]string{"X-Content-Type-Options": "nosniff"}),
	)
	wh.GET("/trace", func(ctx context.Context, r *http.Request) web.Encoder {
		if web.GetWriter(ctx) == nil {
			return web.NewError("no writer")
		}
		return web.NewJSONResponse(traceStub{}.GetTraceID(ctx))
	})

	rec := serve(wh, http.MethodGet, "/trace")
	if rec.Body.String() != `"trace-1"` {
		t.Errorf("body = %s", rec.Body)
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" || rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("default header missing")
	}
}

type createInput struct {
	Title string `json:"title"`
}

func (c createInput) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		body string
		ok   bool
	}{
		{"valid", `{"title":"a"}`, true},
		{"empty", ``, false},
		{"malformed", `{`, false},
		{"invalid", `{"title":""}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var in createInput
			err := web.Decode(r, &in)
			if (err == nil) != tt.ok {
				t.Errorf("err = %v, want ok=%t", err, tt.ok)
			}
		})
	}
}

func TestFormValue(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("title=++padded++"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if got := web.FormValue(r, "title"); got != "padded" {
		t.Errorf("got %q", got)
	}
}

func TestFileServer(t *testing.T) {
	fsys := fstest.MapFS{"assets/app.js": {Data: []byte("console.log(1)")}}

	wh := web.NewWebHandler(web.HandlerOptions{})
	if err := wh.FileServer(fsys, "assets", "/static/"); err != nil {
		t.Fatal(err)
	}

	rec := serve(wh, http.MethodGet, "/static/app.js")
	if rec.Code != http.StatusOK || rec.Body.String() != "console.log(1)" {
		t.Errorf("status = %d body = %q", rec.Code, rec.Body)
	}
	if rec := serve(wh, http.MethodGet, "/static/missing.js"); rec.Code != http.StatusNotFound {
		t.Errorf("missing status = %d", rec.Code)
	}
}

func TestNewWebServer(t *testing.T) {
	cfg := web.ServerConfig{Port: ":9999", ReadTimeout: 5 * time.Second, ApiRoute: "/api/v1"}
	srv := web.NewWebServer(cfg, web.WithHandler(http.NotFoundHandler()))
	if srv.Addr != ":9999" || srv.ReadTimeout != 5*time.Second || srv.Handler == nil {
		t.Errorf("server = %+v", srv.Config)
	}
}
