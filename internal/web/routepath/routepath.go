// Package routepath centralizes the HTTP route constants for the contact book.
package routepath

import "net/url"

const (
	// Home is the landing page.
	Home = "/"
	// About is the static about page.
	About = "/about"
	// Contacts is the contact list page and the target of mutating submissions.
	Contacts = "/contact"
	// ContactAdd is the add-contact form page.
	ContactAdd = "/contact/add"
	// ContactDetailPattern matches contact detail pages by name.
	ContactDetailPattern = "/contact/{name}"
	// ContactEditPattern matches edit-contact form pages by name.
	ContactEditPattern = "/contact/edit/{name}"
)

// ContactDetail returns the detail page path for a contact name.
func ContactDetail(name string) string {
	return Contacts + "/" + url.PathEscape(name)
}

// ContactEdit returns the edit form path for a contact name.
func ContactEdit(name string) string {
	return Contacts + "/edit/" + url.PathEscape(name)
}
