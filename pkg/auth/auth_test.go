package auth

import (
	"context"
	"net/url"
	"testing"
)

func TestChainFirstWins(t *testing.T) {
	chain := NewChain(
		NewStaticSource(nil),
		NewStaticSource(map[string]string{"li_at": "first"}),
		NewStaticSource(map[string]string{"li_at": "second"}),
	)
	cookies, err := chain.Cookies(context.Background())
	if err != nil {
		t.Fatalf("Cookies: %v", err)
	}
	if cookies["li_at"] != "first" {
		t.Errorf("li_at = %q, want %q", cookies["li_at"], "first")
	}
}

func TestChainAllEmpty(t *testing.T) {
	chain := NewChain(NewStaticSource(nil), NewStaticSource(map[string]string{}))
	cookies, err := chain.Cookies(context.Background())
	if err != nil {
		t.Fatalf("Cookies: %v", err)
	}
	if len(cookies) != 0 {
		t.Errorf("cookies = %v, want none", cookies)
	}
}

func TestEnvSource(t *testing.T) {
	t.Setenv("LINKEDIN_LI_AT", "tok")
	t.Setenv("LINKEDIN_JSESSIONID", `"ajax:123"`)
	t.Setenv("LINKEDIN_LIDC", "")

	cookies, err := NewEnvSource(nil).Cookies(context.Background())
	if err != nil {
		t.Fatalf("Cookies: %v", err)
	}
	if cookies["li_at"] != "tok" {
		t.Errorf("li_at = %q, want %q", cookies["li_at"], "tok")
	}
	if cookies["JSESSIONID"] != `"ajax:123"` {
		t.Errorf("JSESSIONID = %q", cookies["JSESSIONID"])
	}
	if _, ok := cookies["lidc"]; ok {
		t.Error("empty variable produced a cookie")
	}
}

func TestNewCookieJar(t *testing.T) {
	jar, err := NewCookieJar(map[string]string{"li_at": "tok", "lidc": "b=1"})
	if err != nil {
		t.Fatalf("NewCookieJar: %v", err)
	}
	u, _ := url.Parse("https://www.linkedin.com/in/someone")
	got := jar.Cookies(u)
	if len(got) != 2 {
		t.Fatalf("jar.Cookies = %v, want 2 cookies", got)
	}
	names := map[string]bool{}
	for _, c := range got {
		names[c.Name] = true
	}
	if !names["li_at"] || !names["lidc"] {
		t.Errorf("jar missing cookies: %v", names)
	}
}
