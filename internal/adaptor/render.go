package adaptor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"room-booking/internal/dto/response"
	"room-booking/pkg/i18n"
	"room-booking/pkg/utils"

	"github.com/go-playground/form/v4"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Page template names.
const (
	tplLogin         = "login_page.html"
	tplTodos         = "main_page.html"
	tplRooms         = "newroom.html"
	tplBooking       = "booking.html"
	tplCancel        = "cancelation.html"
	tplExplorer      = "dbexplorer.html"
	tplGraph         = "db_visualization.html"
	tplRegistration  = "registration.html"
	tplLogout        = "logout.html"
	tplError         = "error.html"
	templatesDirName = "templates/"
)

var pageTemplates = []string{
	tplLogin, tplTodos, tplRooms, tplBooking, tplCancel,
	tplExplorer, tplGraph, tplRegistration, tplLogout, tplError,
}

// view is the data every page template executes against.
type view struct {
	Lang          string
	Authenticated bool
	Code          int
	Page          any
}

// Renderer writes pages as HTML or, for clients asking for JSON, as the
// standard response envelope.
type Renderer struct {
	templates  map[string]*template.Template
	translator *i18n.Translator
	log        *zap.Logger
}

func NewRenderer(files fs.FS, layout string, translator *i18n.Translator, log *zap.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		tpl, err := template.New(name).ParseFS(files, layout, templatesDirName+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = tpl
	}

	return &Renderer{
		templates:  templates,
		translator: translator,
		log:        log.With(zap.String("component", "renderer")),
	}, nil
}

func (rd *Renderer) lang(r *http.Request) language.Tag {
	return rd.translator.Negotiate(r.Header.Get("Accept-Language"))
}

// Text localizes a message key for the request's language.
func (rd *Renderer) Text(r *http.Request, key string, params ...any) string {
	return rd.translator.Text(rd.lang(r), key, params...)
}

// MachineText resolves a key in English for callers that do not negotiate a
// language, such as webhooks.
func (rd *Renderer) MachineText(key string, params ...any) string {
	return rd.translator.Text(language.English, key, params...)
}

func (rd *Renderer) localize(r *http.Request, page response.Localizable) string {
	lang := rd.lang(r)
	return page.Localize(func(s *response.Status) string {
		return rd.translator.Text(lang, s.Kind, s.Params...)
	})
}

// Page renders a page template. JSON clients get the page as data.
func (rd *Renderer) Page(w http.ResponseWriter, r *http.Request, code int, name string, page response.Localizable) {
	message := rd.localize(r, page)

	if utils.WantsJSON(r) {
		if message == "" {
			message = "success"
		}
		utils.ResponseJSON(w, code, code < http.StatusBadRequest, message, page, nil)
		return
	}

	rd.html(w, r, code, name, page)
}

// Error renders a failure. message is already localized.
func (rd *Renderer) Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	if utils.WantsJSON(r) {
		utils.ResponseJSON(w, code, false, message, nil, nil)
		return
	}

	page := &response.SimplePage{}
	page.Message = message
	rd.html(w, r, code, tplError, page)
}

func (rd *Renderer) html(w http.ResponseWriter, r *http.Request, code int, name string, page any) {
	tpl, ok := rd.templates[name]
	if !ok {
		rd.log.Error("Unknown template", zap.String("template", name))
		utils.ResponseText(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	_, authenticated := utils.PrincipalFromContext(r.Context())
	data := view{
		Lang:          rd.lang(r).String(),
		Authenticated: authenticated,
		Code:          code,
		Page:          page,
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		rd.log.Error("Failed to render template", zap.String("template", name), zap.Error(err))
		utils.ResponseText(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	buf.WriteTo(w)
}

// SeeOther finishes a successful POST: browsers follow a redirect, JSON
// clients get data directly.
func (rd *Renderer) SeeOther(w http.ResponseWriter, r *http.Request, url string, code int, message string, data any) {
	if utils.WantsJSON(r) {
		utils.ResponseJSON(w, code, true, message, data, nil)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

var formDecoder = form.NewDecoder()

// decodeRequest fills dst from a JSON body or from posted form values.
func decodeRequest(r *http.Request, dst any) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(dst)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, r.PostForm)
}
