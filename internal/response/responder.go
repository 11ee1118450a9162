package response

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"runtime"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Renderer is satisfied by *template.Template
type Renderer interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

type Responder struct {
	DebugMode bool
}

var errorPage = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Status}} {{.StatusText}}</title><link rel="stylesheet" href="/static/app.css"></head>
<body>
<main class="container error-page">
<h1>{{.Status}} {{.StatusText}}</h1>
<p class="alert alert-error">{{.Message}}</p>
<a class="btn" href="/">Back to Dashboard</a>
</main>
</body>
</html>
`))

// RespondAndLogError will respond with generic error code (500) and log with slog.LevelError level
func (rr *Responder) RespondAndLogError(w http.ResponseWriter, ctx context.Context, err error) {
	errId := uuid.NewString()
	log(ctx, slog.LevelError, err.Error(), slog.String("err_id", errId))
	rr.renderError(w, ctx, http.StatusInternalServerError, err.Error(), errId)
}

func (rr *Responder) RespondAndLogCustom(w http.ResponseWriter, ctx context.Context, err error, lvl slog.Level, status int) {
	errId := uuid.NewString()
	log(ctx, lvl, err.Error(), slog.String("err_id", errId))
	rr.renderError(w, ctx, status, err.Error(), errId)
}

func (rr *Responder) SendJson(w http.ResponseWriter, ctx context.Context, data any) {
	bs, err := json.Marshal(data)
	if err != nil {
		rr.RespondAndLogError(w, ctx, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = io.Copy(w, bytes.NewReader(bs))
}

// SendHTML executes template name into a buffer first so a failing template
// ends up as an error page instead of half a document
func (rr *Responder) SendHTML(w http.ResponseWriter, ctx context.Context, status int, t Renderer, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		rr.RespondAndLogError(w, ctx, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.Copy(w, &buf)
}

func (rr *Responder) renderError(w http.ResponseWriter, ctx context.Context, status int, message, errId string) {
	data := map[string]any{
		"Status":     status,
		"StatusText": http.StatusText(status),
	}

	if rr.DebugMode {
		r, s := utf8.DecodeRuneInString(message)
		data["Message"] = string(unicode.ToUpper(r)) + message[s:]
	} else {
		data["Message"] = "Unknown error occurred while processing your request. Error ID: " + errId
	}

	var buf bytes.Buffer
	if err := errorPage.Execute(&buf, data); err == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	} else {
		log(ctx, slog.LevelError, "cannot render error page: "+err.Error())
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		buf.Reset()
		buf.WriteString("unknown error")
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.Copy(w, &buf)
}

// Needed because it skips one more frame item than the slog.Log
func log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	l := slog.Default()

	if !l.Enabled(ctx, level) {
		return
	}

	var pc uintptr
	var pcs [1]uintptr
	// skip [runtime.Callers, this function, this function's caller]
	runtime.Callers(3, pcs[:])
	pc = pcs[0]

	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
