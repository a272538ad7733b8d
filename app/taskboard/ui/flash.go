package ui

import (
	"encoding/base64"
	"net/http"

	"github.com/jrazmi/taskboard/infrastructure/web"
)

const flashCookie = "taskboard_flash"

// readFlash returns the pending notice, if any.
func readFlash(r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	b, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return ""
	}
	return string(b)
}

// flashRedirect sends the browser back to the board with a one-shot notice.
type flashRedirect struct {
	web.RedirectResponse
	notice string
}

func redirectWithNotice(location, notice string) flashRedirect {
	return flashRedirect{RedirectResponse: web.NewRedirect(location), notice: notice}
}

func (f flashRedirect) SetHeaders(h http.Header) {
	f.RedirectResponse.SetHeaders(h)
	c := http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(f.notice)),
		Path:     "/",
		MaxAge:   30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	h.Add("Set-Cookie", c.String())
}

// page is a rendered board. A notice shown on it is consumed.
type page struct {
	web.HTMLResponse
	consumed bool
}

func (p page) SetHeaders(h http.Header) {
	if !p.consumed {
		return
	}
	c := http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	h.Add("Set-Cookie", c.String())
}
