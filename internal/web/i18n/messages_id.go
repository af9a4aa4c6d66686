package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("id-ID")

	message.SetString(lang, "page.home.title", "Halaman Home")
	message.SetString(lang, "page.about.title", "Halaman About")
	message.SetString(lang, "page.contacts.title", "Halaman Contact")
	message.SetString(lang, "page.contact_add.title", "Form Tambah Contact")
	message.SetString(lang, "page.contact_edit.title", "Form Ubah Contact")
	message.SetString(lang, "page.contact_detail.title", "Halaman Detail Contact")
	message.SetString(lang, "page.not_found.title", "Tidak Ditemukan")
	message.SetString(lang, "page.error.title", "Terjadi Kesalahan")

	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.about", "About")
	message.SetString(lang, "nav.contacts", "Contact")
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_id", "Bahasa Indonesia")

	message.SetString(lang, "label.name", "Nama")
	message.SetString(lang, "label.phone", "No HP")
	message.SetString(lang, "label.email", "Email")

	message.SetString(lang, "action.add_contact", "Tambah Data Contact")
	message.SetString(lang, "action.save", "Simpan")
	message.SetString(lang, "action.detail", "Detail")
	message.SetString(lang, "action.edit", "Ubah")
	message.SetString(lang, "action.delete", "Hapus")
	message.SetString(lang, "action.back", "Kembali ke Halaman Contact")

	message.SetString(lang, "contact.empty", "Belum ada data contact.")
	message.SetString(lang, "contact.notice_created", "Data Contact Berhasil Ditambahkan!")
	message.SetString(lang, "contact.notice_updated", "Data Contact Berhasil DiUbah!")
	message.SetString(lang, "contact.notice_deleted", "Data Contact Berhasil Dihapus!")

	message.SetString(lang, "contact.error.name_taken", "Nama Contact Sudah digunakan!")
	message.SetString(lang, "contact.error.name_required", "Nama wajib diisi!")
	message.SetString(lang, "contact.error.email_invalid", "Email Tidak Valid!")
	message.SetString(lang, "contact.error.phone_invalid", "Nomor Handphone Tidak Valid!")
	message.SetString(lang, "contact.error.invalid_submission", "Data tidak dapat diproses!")

	message.SetString(lang, "error.not_found", "Halaman yang kamu cari tidak ditemukan.")
	message.SetString(lang, "error.internal", "Terjadi kesalahan. Silakan coba lagi.")
}
