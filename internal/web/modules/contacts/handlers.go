package contacts

import (
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/contactbook/internal/storage"
	"github.com/louisbranch/contactbook/internal/validate"
	apperrors "github.com/louisbranch/contactbook/internal/web/platform/errors"
	"github.com/louisbranch/contactbook/internal/web/platform/flash"
	"github.com/louisbranch/contactbook/internal/web/platform/httpx"
	"github.com/louisbranch/contactbook/internal/web/platform/pagerender"
	"github.com/louisbranch/contactbook/internal/web/routepath"
	webtemplates "github.com/louisbranch/contactbook/internal/web/templates"
)

type handlers struct {
	service contactService
	render  pagerender.Renderer
	flash   flash.Flasher
}

// Register wires the contact routes onto mux.
func Register(mux *http.ServeMux, store storage.ContactStore, render pagerender.Renderer) {
	registerRoutes(mux, handlers{
		service: newService(store),
		render:  render,
		flash:   render.Flash,
	})
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.list(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rows := make([]webtemplates.ContactRow, 0, len(contacts))
	for _, contact := range contacts {
		rows = append(rows, webtemplates.ContactRow{
			Name:  contact.Name,
			Phone: contact.Phone,
			Email: contact.Email,
		})
	}
	pc := h.render.PageContextWithNotice(w, r)
	h.render.Render(w, r, http.StatusOK, webtemplates.ContactListPage(pc, rows))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	contact, err := h.service.get(r.Context(), r.PathValue("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pc := h.render.PageContext(w, r)
	h.render.Render(w, r, http.StatusOK, webtemplates.ContactDetailPage(pc, webtemplates.ContactRow{
		Name:  contact.Name,
		Phone: contact.Phone,
		Email: contact.Email,
	}))
}

func (h handlers) handleAddForm(w http.ResponseWriter, r *http.Request) {
	pc := h.render.PageContext(w, r)
	h.render.Render(w, r, http.StatusOK, webtemplates.ContactAddPage(pc, webtemplates.ContactFormView{}))
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "contact.error.invalid_submission", "parse contact form"))
		return
	}
	payload := formPayload(r)
	result, err := h.service.create(r.Context(), payload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !result.OK() {
		pc := h.render.PageContext(w, r)
		form := formView("", payload, localizeErrors(pc.Loc, result))
		h.render.Render(w, r, http.StatusOK, webtemplates.ContactAddPage(pc, form))
		return
	}
	h.flash.Write(w, r, flash.NoticeSuccess("contact.notice_created"))
	httpx.WriteRedirect(w, r, routepath.Contacts)
}

func (h handlers) handleEditForm(w http.ResponseWriter, r *http.Request) {
	contact, err := h.service.get(r.Context(), r.PathValue("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pc := h.render.PageContext(w, r)
	form := webtemplates.ContactFormView{
		ID:      contact.ID,
		OldName: contact.Name,
		Name:    contact.Name,
		Phone:   contact.Phone,
		Email:   contact.Email,
	}
	h.render.Render(w, r, http.StatusOK, webtemplates.ContactEditPage(pc, form))
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "contact.error.invalid_submission", "parse contact form"))
		return
	}
	recordID := strings.TrimSpace(r.PostForm.Get("id"))
	payload := formPayload(r)
	result, err := h.service.update(r.Context(), recordID, payload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !result.OK() {
		pc := h.render.PageContext(w, r)
		form := formView(recordID, payload, localizeErrors(pc.Loc, result))
		h.render.Render(w, r, http.StatusOK, webtemplates.ContactEditPage(pc, form))
		return
	}
	h.flash.Write(w, r, flash.NoticeSuccess("contact.notice_updated"))
	httpx.WriteRedirect(w, r, routepath.Contacts)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "contact.error.invalid_submission", "parse contact form"))
		return
	}
	if err := h.service.remove(r.Context(), r.PostForm.Get("name")); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.flash.Write(w, r, flash.NoticeSuccess("contact.notice_deleted"))
	httpx.WriteRedirect(w, r, routepath.Contacts)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
		log.Printf("contacts %s %s: %v", r.Method, r.URL.Path, err)
	}
	h.render.RenderError(w, r, err)
}

func formPayload(r *http.Request) validate.Payload {
	return validate.Payload{
		Name:    strings.TrimSpace(r.PostForm.Get("name")),
		Phone:   strings.TrimSpace(r.PostForm.Get("phone")),
		Email:   strings.TrimSpace(r.PostForm.Get("email")),
		OldName: strings.TrimSpace(r.PostForm.Get("oldName")),
	}
}

func formView(recordID string, payload validate.Payload, errors map[string]string) webtemplates.ContactFormView {
	return webtemplates.ContactFormView{
		ID:      recordID,
		OldName: payload.OldName,
		Name:    payload.Name,
		Phone:   payload.Phone,
		Email:   payload.Email,
		Errors:  errors,
	}
}

func localizeErrors(loc webtemplates.Localizer, result validate.Result) map[string]string {
	if len(result.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(result.Errors))
	for _, fieldErr := range result.Errors {
		if _, exists := out[fieldErr.Field]; exists {
			continue
		}
		out[fieldErr.Field] = webtemplates.T(loc, fieldErr.Key)
	}
	return out
}
