package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/louisbranch/contactbook/internal/web/platform/flash"
)

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		appName string
		want    string
	}{
		{name: "both", title: "Halaman Contact", appName: "Contact Book", want: "Halaman Contact | Contact Book"},
		{name: "no app name", title: "Halaman Contact", appName: "", want: "Halaman Contact"},
		{name: "no title", title: "", appName: "Contact Book", want: "Contact Book"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ComposePageTitle(tt.title, tt.appName); got != tt.want {
				t.Fatalf("ComposePageTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHomePageMarksCurrentNavLink(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := HomePage(PageContext{Lang: "en-US", CurrentPath: "/", AppName: "Contact Book"}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	got := b.String()

	if !strings.Contains(got, `<html lang="en-US">`) {
		t.Fatalf("missing lang attribute in %q", got)
	}
	if !strings.Contains(got, `<a href="/" aria-current="page">`) {
		t.Fatalf("home link not marked current in %q", got)
	}
	if !strings.Contains(got, `<a href="/contact">`) {
		t.Fatalf("missing contacts link in %q", got)
	}
}

func TestLayoutRendersFlashNotice(t *testing.T) {
	t.Parallel()

	notice := flash.NoticeSuccess("contact.notice_created")
	var b strings.Builder
	err := AboutPage(PageContext{Lang: "en-US", Notice: &notice}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	got := b.String()

	if !strings.Contains(got, `<p class="flash flash-success" role="status">`) {
		t.Fatalf("missing flash notice in %q", got)
	}
}

func TestLayoutOmitsFlashWithoutNotice(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := AboutPage(PageContext{Lang: "en-US"}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if strings.Contains(b.String(), `class="flash`) {
		t.Fatal("flash notice rendered without one pending")
	}
}

func TestLayoutRendersLanguageSwitcher(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := AboutPage(PageContext{Lang: "en-US"}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	got := b.String()

	if !strings.Contains(got, `<a href="?lang=en-US">`) || !strings.Contains(got, `<a href="?lang=id-ID">`) {
		t.Fatalf("missing language switcher links in %q", got)
	}
}
