package contacts

import (
	"net/http"

	"github.com/louisbranch/contactbook/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Contacts, h.handleList)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contacts, h.handleCreate)
	mux.HandleFunc(http.MethodPut+" "+routepath.Contacts, h.handleUpdate)
	mux.HandleFunc(http.MethodDelete+" "+routepath.Contacts, h.handleDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactAdd, h.handleAddForm)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactEditPattern, h.handleEditForm)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactDetailPattern, h.handleDetail)
}
