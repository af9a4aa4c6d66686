package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("en-US")

	message.SetString(lang, "page.home.title", "Home")
	message.SetString(lang, "page.about.title", "About")
	message.SetString(lang, "page.contacts.title", "Contacts")
	message.SetString(lang, "page.contact_add.title", "Add Contact")
	message.SetString(lang, "page.contact_edit.title", "Edit Contact")
	message.SetString(lang, "page.contact_detail.title", "Contact Detail")
	message.SetString(lang, "page.not_found.title", "Not Found")
	message.SetString(lang, "page.error.title", "Error")

	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.about", "About")
	message.SetString(lang, "nav.contacts", "Contacts")
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_id", "Bahasa Indonesia")

	message.SetString(lang, "label.name", "Name")
	message.SetString(lang, "label.phone", "Phone")
	message.SetString(lang, "label.email", "Email")

	message.SetString(lang, "action.add_contact", "Add contact")
	message.SetString(lang, "action.save", "Save")
	message.SetString(lang, "action.detail", "Detail")
	message.SetString(lang, "action.edit", "Edit")
	message.SetString(lang, "action.delete", "Delete")
	message.SetString(lang, "action.back", "Back to contacts")

	message.SetString(lang, "contact.empty", "No contacts yet.")
	message.SetString(lang, "contact.notice_created", "Contact added.")
	message.SetString(lang, "contact.notice_updated", "Contact updated.")
	message.SetString(lang, "contact.notice_deleted", "Contact deleted.")

	message.SetString(lang, "contact.error.name_taken", "Contact name is already in use.")
	message.SetString(lang, "contact.error.name_required", "Name is required.")
	message.SetString(lang, "contact.error.email_invalid", "Email is not valid.")
	message.SetString(lang, "contact.error.phone_invalid", "Phone number is not valid.")
	message.SetString(lang, "contact.error.invalid_submission", "Submission could not be processed.")

	message.SetString(lang, "error.not_found", "The page you are looking for does not exist.")
	message.SetString(lang, "error.internal", "Something went wrong. Please try again.")
}
