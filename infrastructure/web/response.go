package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// NoResponse tells the Respond function to not respond to the request. In these
// cases the app layer code has already done so.
type NoResponse struct{}

// NewNoResponse constructs a no reponse value.
func NewNoResponse() NoResponse {
	return NoResponse{}
}

// Encode implements the Encoder interface.
func (NoResponse) Encode() ([]byte, string, error) {
	return nil, "", nil
}

// StatusResponse answers with a status code and no body.
type StatusResponse struct {
	Status int
}

func NewStatusResponse(status int) StatusResponse {
	return StatusResponse{Status: status}
}

func (StatusResponse) Encode() ([]byte, string, error) {
	return nil, "", nil
}

func (s StatusResponse) HTTPStatus() int {
	return s.Status
}

// JSONResponse represents a JSON response with generic data type
type JSONResponse[T any] struct {
	Data   T
	Status int
}

func (j *JSONResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(j.Data)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json; charset=utf-8", nil
}

func (j *JSONResponse[T]) HTTPStatus() int {
	if j.Status == 0 {
		return http.StatusOK
	}
	return j.Status
}

func NewJSONResponse[T any](data T) *JSONResponse[T] {
	return &JSONResponse[T]{Data: data}
}

func NewJSONResponseWithStatus[T any](data T, status int) *JSONResponse[T] {
	return &JSONResponse[T]{Data: data, Status: status}
}

// HTMLResponse carries an already rendered html document or fragment.
type HTMLResponse struct {
	Body   []byte
	Status int
}

func NewHTMLResponse(body []byte, status int) HTMLResponse {
	return HTMLResponse{Body: body, Status: status}
}

func (h HTMLResponse) Encode() ([]byte, string, error) {
	return h.Body, "text/html; charset=utf-8", nil
}

func (h HTMLResponse) HTTPStatus() int {
	if h.Status == 0 {
		return http.StatusOK
	}
	return h.Status
}

// RedirectResponse sends the client to another location. Status defaults to
// 303 so a POST is followed by a GET.
type RedirectResponse struct {
	Location string
	Status   int
}

func NewRedirect(location string) RedirectResponse {
	return RedirectResponse{Location: location, Status: http.StatusSeeOther}
}

func (RedirectResponse) Encode() ([]byte, string, error) {
	return nil, "", nil
}

func (rr RedirectResponse) HTTPStatus() int {
	if rr.Status == 0 {
		return http.StatusSeeOther
	}
	return rr.Status
}

func (rr RedirectResponse) SetHeaders(h http.Header) {
	h.Set("Location", rr.Location)
}

// =============================================================================

type httpStatus interface {
	HTTPStatus() int
}

type headerSetter interface {
	SetHeaders(h http.Header)
}

// Respond sends a response to the client.
func Respond(ctx context.Context, w http.ResponseWriter, resp Encoder) error {
	if _, ok := resp.(NoResponse); ok {
		return nil
	}

	// If the context has been canceled, it means the client is no longer
	// waiting for a response.
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("client disconnected, do not send response")
		}
	}

	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	statusCode := http.StatusOK

	switch v := resp.(type) {
	case httpStatus:
		statusCode = v.HTTPStatus()

	case error:
		statusCode = http.StatusInternalServerError
	}

	if hs, ok := resp.(headerSetter); ok {
		hs.SetHeaders(w.Header())
	}

	data, contentType, err := resp.Encode()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("respond: encode: %w", err)
	}

	if statusCode == http.StatusNoContent || len(data) == 0 {
		w.WriteHeader(statusCode)
		return nil
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("respond: write: %w", err)
	}

	return nil
}
