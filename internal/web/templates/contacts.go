package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/contactbook/internal/web/platform/httpx"
	"github.com/louisbranch/contactbook/internal/web/routepath"
)

// ContactRow represents a single row in the contact table.
type ContactRow struct {
	Name  string
	Phone string
	Email string
}

// ContactFormView holds the data for re-rendering a contact form, including
// submitted values and per-field localized error messages.
type ContactFormView struct {
	ID      string
	OldName string
	Name    string
	Phone   string
	Email   string
	Errors  map[string]string
}

// ContactListPage renders the contact table.
func ContactListPage(pc PageContext, rows []ContactRow) templ.Component {
	title := T(pc.Loc, "page.contacts.title")
	return pageLayout(pc, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<h1>")
		hw.text(title)
		hw.raw("</h1>\n<p><a href=\"")
		hw.text(routepath.ContactAdd)
		hw.raw("\">")
		hw.text(T(pc.Loc, "action.add_contact"))
		hw.raw("</a></p>\n")

		if len(rows) == 0 {
			hw.raw("<p>")
			hw.text(T(pc.Loc, "contact.empty"))
			hw.raw("</p>\n")
			return hw.err
		}

		hw.raw("<table>\n<thead>\n<tr><th>")
		hw.text(T(pc.Loc, "label.name"))
		hw.raw("</th><th>")
		hw.text(T(pc.Loc, "label.phone"))
		hw.raw("</th><th></th></tr>\n</thead>\n<tbody>\n")
		for _, row := range rows {
			writeContactRow(hw, pc, row)
		}
		hw.raw("</tbody>\n</table>\n")
		return hw.err
	}))
}

func writeContactRow(hw *htmlWriter, pc PageContext, row ContactRow) {
	hw.raw("<tr><td>")
	hw.text(row.Name)
	hw.raw("</td><td>")
	hw.text(row.Phone)
	hw.raw(`</td><td><a href="`)
	hw.text(routepath.ContactDetail(row.Name))
	hw.raw(`">`)
	hw.text(T(pc.Loc, "action.detail"))
	hw.raw("</a></td></tr>\n")
}

// ContactDetailPage renders one contact with its edit and delete actions.
func ContactDetailPage(pc PageContext, contact ContactRow) templ.Component {
	title := T(pc.Loc, "page.contact_detail.title")
	return pageLayout(pc, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<h1>")
		hw.text(title)
		hw.raw("</h1>\n<dl>\n<dt>")
		hw.text(T(pc.Loc, "label.name"))
		hw.raw("</dt><dd>")
		hw.text(contact.Name)
		hw.raw("</dd>\n<dt>")
		hw.text(T(pc.Loc, "label.phone"))
		hw.raw("</dt><dd>")
		hw.text(contact.Phone)
		hw.raw("</dd>\n<dt>")
		hw.text(T(pc.Loc, "label.email"))
		hw.raw("</dt><dd>")
		hw.text(contact.Email)
		hw.raw("</dd>\n</dl>\n")

		hw.raw(`<p><a href="`)
		hw.text(routepath.ContactEdit(contact.Name))
		hw.raw(`">`)
		hw.text(T(pc.Loc, "action.edit"))
		hw.raw("</a></p>\n")
		writeDeleteForm(hw, pc, contact.Name)

		hw.raw(`<p><a href="`)
		hw.text(routepath.Contacts)
		hw.raw(`">`)
		hw.text(T(pc.Loc, "action.back"))
		hw.raw("</a></p>\n")
		return hw.err
	}))
}

// writeDeleteForm emits the method-override delete form for one contact.
func writeDeleteForm(hw *htmlWriter, pc PageContext, name string) {
	hw.raw(`<form method="post" action="`)
	hw.text(routepath.Contacts)
	hw.raw(`">` + "\n" + `<input type="hidden" name="` + httpx.MethodOverrideField + `" value="delete">` + "\n" +
		`<input type="hidden" name="name" value="`)
	hw.text(name)
	hw.raw(`">` + "\n<button type=\"submit\">")
	hw.text(T(pc.Loc, "action.delete"))
	hw.raw("</button>\n</form>\n")
}

// ContactAddPage renders the add form, optionally with submitted values and
// field errors.
func ContactAddPage(pc PageContext, form ContactFormView) templ.Component {
	title := T(pc.Loc, "page.contact_add.title")
	return pageLayout(pc, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<h1>")
		hw.text(title)
		hw.raw("</h1>\n")
		hw.raw(`<form method="post" action="`)
		hw.text(routepath.Contacts)
		hw.raw("\">\n")
		writeContactFields(hw, pc, form)
		hw.raw(`<button type="submit">`)
		hw.text(T(pc.Loc, "action.save"))
		hw.raw("</button>\n</form>\n")
		return hw.err
	}))
}

// ContactEditPage renders the edit form carrying the record ID and the
// pre-edit name for the uniqueness check.
func ContactEditPage(pc PageContext, form ContactFormView) templ.Component {
	title := T(pc.Loc, "page.contact_edit.title")
	return pageLayout(pc, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<h1>")
		hw.text(title)
		hw.raw("</h1>\n")
		hw.raw(`<form method="post" action="`)
		hw.text(routepath.Contacts)
		hw.raw(`">` + "\n" + `<input type="hidden" name="` + httpx.MethodOverrideField + `" value="put">` + "\n" +
			`<input type="hidden" name="id" value="`)
		hw.text(form.ID)
		hw.raw(`">` + "\n" + `<input type="hidden" name="oldName" value="`)
		hw.text(form.OldName)
		hw.raw("\">\n")
		writeContactFields(hw, pc, form)
		hw.raw(`<button type="submit">`)
		hw.text(T(pc.Loc, "action.save"))
		hw.raw("</button>\n</form>\n")
		return hw.err
	}))
}

func writeContactFields(hw *htmlWriter, pc PageContext, form ContactFormView) {
	writeField(hw, "name", "text", T(pc.Loc, "label.name"), form.Name, form.Errors)
	writeField(hw, "phone", "tel", T(pc.Loc, "label.phone"), form.Phone, form.Errors)
	writeField(hw, "email", "email", T(pc.Loc, "label.email"), form.Email, form.Errors)
}

func writeField(hw *htmlWriter, name string, inputType string, label string, value string, errors map[string]string) {
	hw.raw(`<label for="` + name + `">`)
	hw.text(label)
	hw.raw("</label>\n")
	hw.raw(`<input type="` + inputType + `" id="` + name + `" name="` + name + `" value="`)
	hw.text(value)
	hw.raw("\">\n")
	if msg, ok := errors[name]; ok {
		hw.raw(`<p class="field-error">`)
		hw.text(msg)
		hw.raw("</p>\n")
	}
}
