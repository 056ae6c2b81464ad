package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }
func i64ptr(i int64) *int64   { return &i }

func makeRepo(id int64, ownerLogin, ownerType string) Repo {
	return Repo{
		ID:              i64ptr(id),
		Name:            strptr(fmt.Sprintf("repo-%d", id)),
		FullName:        strptr(ownerLogin + fmt.Sprintf("/repo-%d", id)),
		StargazersCount: intptr(100),
		ForksCount:      intptr(10),
		Owner: Owner{
			Login:     strptr(ownerLogin),
			AvatarURL: strptr("https://github.com/" + ownerLogin + ".png"),
			Type:      ownerType,
		},
	}
}

func searchServer(t *testing.T, items []Repo, checkReq func(*http.Request)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if checkReq != nil {
			checkReq(r)
		}
		json.NewEncoder(w).Encode(searchResponse{Items: items})
	}))
}

func TestSearch_QueryConstruction(t *testing.T) {
	var gotQuery, gotAuth string
	srv := searchServer(t, nil, func(r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotAuth = r.Header.Get("Authorization")
	})
	defer srv.Close()

	c := NewClient(srv.URL, "tok123", DefaultDenylist())
	_, err := c.Search(context.Background(), []string{"python", "react"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != "python OR react good-first-issues:>0" {
		t.Errorf("query = %q, want OR-joined skills with good-first-issues filter", gotQuery)
	}
	if gotAuth != "token tok123" {
		t.Errorf("Authorization = %q, want token auth", gotAuth)
	}
}

func TestSearch_CapsSkillsAtFive(t *testing.T) {
	var gotQuery string
	srv := searchServer(t, nil, func(r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
	})
	defer srv.Close()

	c := NewClient(srv.URL, "", DefaultDenylist())
	skills := []string{"python", "react", "go", "rust", "java", "kotlin", "swift"}
	if _, err := c.Search(context.Background(), skills); err != nil {
		t.Fatalf("Search: %v", err)
	}

	if strings.Contains(gotQuery, "kotlin") || strings.Contains(gotQuery, "swift") {
		t.Errorf("query = %q, want at most 5 skills", gotQuery)
	}
}

func TestSearch_EmptySkills(t *testing.T) {
	srv := searchServer(t, nil, func(r *http.Request) {
		t.Error("no request expected for empty skill list")
	})
	defer srv.Close()

	c := NewClient(srv.URL, "", DefaultDenylist())
	repos, err := c.Search(context.Background(), []string{"", ""})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if repos != nil {
		t.Errorf("got %d repos, want nil", len(repos))
	}
}

func TestSearch_FiltersDenylistedOwners(t *testing.T) {
	items := make([]Repo, 0, 15)
	items = append(items, makeRepo(1, "google", "Organization"))
	items = append(items, makeRepo(2, "microsoft", "Organization"))
	for i := int64(3); i < 15; i++ {
		items = append(items, makeRepo(i, fmt.Sprintf("dev%d", i), "User"))
	}

	srv := searchServer(t, items, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "", DefaultDenylist())
	repos, err := c.Search(context.Background(), []string{"go"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	// 12 individual repos survive, above the backfill floor, so no
	// denylisted owner may appear.
	for _, r := range repos {
		if c.denylist.Contains(*r.Owner.Login) {
			t.Errorf("denylisted owner %q in results", *r.Owner.Login)
		}
	}
	if len(repos) != 12 {
		t.Errorf("got %d repos, want 12", len(repos))
	}
}

func TestSearch_BackfillsToTen(t *testing.T) {
	// 3 individual repos + 9 denylisted: the filter must backfill excluded
	// entries, in original order, until 10 results.
	var items []Repo
	items = append(items, makeRepo(1, "dev1", "User"))
	items = append(items, makeRepo(2, "google", "Organization"))
	items = append(items, makeRepo(3, "dev3", "User"))
	for i := int64(4); i < 12; i++ {
		items = append(items, makeRepo(i, "microsoft", "Organization"))
	}
	items = append(items, makeRepo(12, "dev12", "User"))

	srv := searchServer(t, items, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "", DefaultDenylist())
	repos, err := c.Search(context.Background(), []string{"go"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(repos) != 10 {
		t.Fatalf("got %d repos, want 10 after backfill", len(repos))
	}
	// Individual owners come first, then backfill preserves ranking order.
	if *repos[0].Owner.Login != "dev1" || *repos[1].Owner.Login != "dev3" || *repos[2].Owner.Login != "dev12" {
		t.Errorf("individual repos not first: %v %v %v",
			*repos[0].Owner.Login, *repos[1].Owner.Login, *repos[2].Owner.Login)
	}
	if *repos[3].ID != 2 {
		t.Errorf("first backfill ID = %d, want 2 (original order)", *repos[3].ID)
	}
}

func TestSearch_RejectsExoticOwnerTypes(t *testing.T) {
	items := []Repo{makeRepo(1, "some-bot", "Bot")}
	for i := int64(2); i <= 12; i++ {
		items = append(items, makeRepo(i, fmt.Sprintf("dev%d", i), "User"))
	}

	srv := searchServer(t, items, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "", DefaultDenylist())
	repos, err := c.Search(context.Background(), []string{"go"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, r := range repos {
		if r.Owner.Type == "Bot" {
			t.Error("Bot-owned repo in results without backfill need")
		}
	}
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"rate limit exceeded"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", DefaultDenylist())
	_, err := c.Search(context.Background(), []string{"go"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("error %q should carry the status code", err)
	}
}

func TestDenylist_CaseInsensitive(t *testing.T) {
	dl := DefaultDenylist()
	if !dl.Contains("Google") {
		t.Error("Contains(Google) = false, want case-insensitive match")
	}
	if dl.Contains("some-indie-dev") {
		t.Error("Contains(some-indie-dev) = true, want false")
	}
}

func TestLoadDenylist_File(t *testing.T) {
	path := t.TempDir() + "/deny.json"
	if err := os.WriteFile(path, []byte(`["bigcorp", "MegaOrg"]`), 0o600); err != nil {
		t.Fatal(err)
	}
	dl, err := LoadDenylist(path)
	if err != nil {
		t.Fatalf("LoadDenylist: %v", err)
	}
	if !dl.Contains("bigcorp") || !dl.Contains("megaorg") {
		t.Errorf("loaded denylist missing entries: %v", dl)
	}
}

func TestLoadDenylist_Invalid(t *testing.T) {
	path := t.TempDir() + "/deny.json"
	if err := os.WriteFile(path, []byte(`{"not":"an array"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDenylist(path); err == nil {
		t.Fatal("expected error for non-array denylist")
	}
}
